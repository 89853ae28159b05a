package theme

import "image/color"

// Dark palette with a YouTube-red accent
var (
	// Background layers (darkest to lightest)
	ColorBackground     = color.NRGBA{R: 15, G: 15, B: 17, A: 255} // #0F0F11
	ColorSurface        = color.NRGBA{R: 28, G: 28, B: 32, A: 255} // #1C1C20
	ColorSurfaceVariant = color.NRGBA{R: 39, G: 39, B: 44, A: 255} // #27272C
	ColorOverlay        = color.NRGBA{R: 48, G: 48, B: 54, A: 255} // #303036

	// Accent
	ColorPrimary   = color.NRGBA{R: 220, G: 38, B: 38, A: 255}  // #DC2626
	ColorSecondary = color.NRGBA{R: 129, G: 140, B: 248, A: 255} // #818CF8, links and translation accents

	// Text
	ColorTextPrimary   = color.NRGBA{R: 244, G: 244, B: 245, A: 255} // #F4F4F5
	ColorTextSecondary = color.NRGBA{R: 161, G: 161, B: 170, A: 255} // #A1A1AA
	ColorTextDisabled  = color.NRGBA{R: 82, G: 82, B: 91, A: 255}    // #52525B
	ColorTextHint      = color.NRGBA{R: 113, G: 113, B: 122, A: 255} // #71717A

	// Request status
	ColorIdle    = color.NRGBA{R: 113, G: 113, B: 122, A: 255} // #71717A
	ColorLoading = color.NRGBA{R: 59, G: 130, B: 246, A: 255}  // #3B82F6
	ColorSuccess = color.NRGBA{R: 34, G: 197, B: 94, A: 255}   // #22C55E
	ColorWarning = color.NRGBA{R: 234, G: 179, B: 8, A: 255}   // #EAB308
	ColorError   = color.NRGBA{R: 239, G: 68, B: 68, A: 255}   // #EF4444

	// UI elements
	ColorDivider     = color.NRGBA{R: 52, G: 52, B: 58, A: 255}
	ColorInputBg     = color.NRGBA{R: 24, G: 24, B: 27, A: 255}
	ColorHover       = color.NRGBA{R: 255, G: 255, B: 255, A: 18}
	ColorPressed     = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	ColorFocusBorder = color.NRGBA{R: 220, G: 38, B: 38, A: 170}
	ColorDisabledBg  = color.NRGBA{R: 36, G: 36, B: 40, A: 255}
	ColorScrollbar   = color.NRGBA{R: 82, G: 82, B: 91, A: 255}
)

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}
