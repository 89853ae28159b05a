package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"tubetrans/models"
)

// Custom theme color names
const (
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNameTextSecondary  fyne.ThemeColorName = "textSecondary"

	// Request status colors
	ColorNameStatusIdle    fyne.ThemeColorName = "statusIdle"
	ColorNameStatusLoading fyne.ThemeColorName = "statusLoading"
	ColorNameStatusSuccess fyne.ThemeColorName = "statusSuccess"
	ColorNameStatusError   fyne.ThemeColorName = "statusError"
)

// Custom size names
const (
	SizeNameCardRadius    fyne.ThemeSizeName = "cardRadius"
	SizeNameTranscriptMin fyne.ThemeSizeName = "transcriptMinHeight"
)

// StatusColorName maps a request status to its theme color.
func StatusColorName(s models.Status) fyne.ThemeColorName {
	switch s {
	case models.StatusLoading:
		return ColorNameStatusLoading
	case models.StatusSuccess:
		return ColorNameStatusSuccess
	case models.StatusError:
		return ColorNameStatusError
	default:
		return ColorNameStatusIdle
	}
}

// TubeTransTheme is the dark theme of the viewer window.
type TubeTransTheme struct{}

var _ fyne.Theme = (*TubeTransTheme)(nil)

func (t *TubeTransTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorTextPrimary
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return ColorPrimary

	case theme.ColorNameInputBackground:
		return ColorInputBg
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorDivider
	case theme.ColorNamePlaceHolder:
		return ColorTextHint
	case theme.ColorNameFocus:
		return ColorFocusBorder

	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed

	case theme.ColorNameDisabled:
		return ColorTextDisabled
	case theme.ColorNameDisabledButton:
		return ColorDisabledBg
	case theme.ColorNameScrollBar:
		return ColorScrollbar

	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameHyperlink:
		return ColorSecondary

	case theme.ColorNameShadow:
		return color.NRGBA{A: 100}
	case theme.ColorNameOverlayBackground:
		return ColorOverlay
	case theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return ColorSurface

	case ColorNameSurface:
		return ColorSurface
	case ColorNameSurfaceVariant:
		return ColorSurfaceVariant
	case ColorNameTextSecondary:
		return ColorTextSecondary
	case ColorNameStatusIdle:
		return ColorIdle
	case ColorNameStatusLoading:
		return ColorLoading
	case ColorNameStatusSuccess:
		return ColorSuccess
	case ColorNameStatusError:
		return ColorError

	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *TubeTransTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *TubeTransTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *TubeTransTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4

	case SizeNameCardRadius:
		return 12
	case SizeNameTranscriptMin:
		return 360

	default:
		return theme.DefaultTheme().Size(name)
	}
}
