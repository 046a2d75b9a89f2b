package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sonicseer/internal/dashboard"
	"sonicseer/internal/metrics"
)

var (
	serveAddr string
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive forecast dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := cfg.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		open := cfg.OpenBrowser || serveOpen

		m := metrics.New()
		server, err := dashboard.New(newForecaster(m), m, dashboard.Options{
			Version:       Version,
			CORSOrigins:   cfg.CORSOrigins,
			DaysBack:      cfg.DaysBack,
			Charts:        cfg.EnableMermaidCharts,
			ForecastRate:  cfg.ForecastRate,
			ForecastBurst: cfg.ForecastBurst,
		})
		if err != nil {
			return err
		}

		return server.Serve(ctx, addr, func(url string) {
			if !open {
				return
			}
			if err := browser.OpenURL(url); err != nil {
				log.Warn().Err(err).Str("url", url).Msg("Failed to open browser")
			}
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from SONICSEER_ADDR or 127.0.0.1:8501)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the dashboard in the default browser")
	rootCmd.AddCommand(serveCmd)
}
