package cmd

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"tubetrans/internal/config"
	"tubetrans/ui"
	appTheme "tubetrans/ui/theme"
)

func runGUI(cmd *cobra.Command, args []string) error {
	a := app.NewWithID(config.AppID)
	a.Settings().SetTheme(&appTheme.TubeTransTheme{})

	w := a.NewWindow(config.AppTitle)
	w.Resize(fyne.NewSize(960, 720))

	mainUI := ui.NewMainUI(w, appConfig, newSession)
	w.SetContent(mainUI.Build())

	w.ShowAndRun()
	return nil
}
