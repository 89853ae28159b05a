package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tubetrans/internal/config"
	"tubetrans/internal/logger"
	"tubetrans/models"
)

var (
	cfgFile string
	verbose bool

	// appConfig is loaded once per invocation by setup.
	appConfig *models.Config
)

var RootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "AI transcripts and translations for YouTube videos",
	Long: `TubeTrans asks Gemini to reconstruct the transcript of a YouTube video from its link
and can translate the result into Bangla or another supported language.

Run without a subcommand to open the desktop viewer. Use "fetch" for a headless run.
The API key is read from API_KEY (or GEMINI_API_KEY); a .env file in the working
directory is loaded first.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGUI,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default "+models.DefaultConfigPath()+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if err := models.LoadDotEnv(""); err != nil {
		logger.Warn("%v", err)
	}

	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logger.LevelDebug
	}
	logger.SetLevel(level)
	logger.Debug("config %s model=%s target=%s", cfg.ConfigPath(), cfg.Model, cfg.TargetLang)

	if cfg.APIKey == "" {
		logger.Warn("No API key found in %s or %s; requests will fail", config.APIKeyEnv, config.APIKeyEnvFallback)
	}

	appConfig = cfg
	return nil
}
