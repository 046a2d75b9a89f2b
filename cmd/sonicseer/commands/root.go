package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sonicseer/internal/config"
	"sonicseer/internal/forecast"
	"sonicseer/internal/logging"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "sonicseer",
	Short: "SonicSeer forecasts the viral trajectory of synthetic music trends",
	Long: `A music trend forecast toolkit: simulates engagement history and forecasts for a set of
creative parameters, derives virality metrics, and predicts platform and demographic audiences.
Runs as an HTTP dashboard, an MCP server, or a one-shot CLI.

Without a subcommand it starts the MCP stdio server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("command", cmd.Name()).
			Msg("SonicSeer starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCP(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// newForecaster builds the pipeline service from the loaded configuration.
func newForecaster(recorder forecast.Recorder) *forecast.Service {
	return forecast.NewService(forecast.Options{
		CelebrityBoost: cfg.CelebrityBoost,
		Seed:           cfg.Seed,
		Charts:         cfg.EnableMermaidCharts,
	}, recorder)
}
