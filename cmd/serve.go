package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/sells-group/dart-analysis/internal/financial"
	"github.com/sells-group/dart-analysis/internal/narrative"
	"github.com/sells-group/dart-analysis/internal/server"
	anthropicpkg "github.com/sells-group/dart-analysis/pkg/anthropic"
	"github.com/sells-group/dart-analysis/pkg/opendart"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := ensureCorporations(ctx, st); err != nil {
			return err
		}

		dart := opendart.NewClient(cfg.OpenDART.Key,
			opendart.WithBaseURL(cfg.OpenDART.BaseURL),
			opendart.WithLimiter(rate.NewLimiter(rate.Limit(cfg.OpenDART.RPS), cfg.OpenDART.Burst)),
		)

		composer := narrative.NewComposer(&narrative.Generator{
			Client:    anthropicpkg.NewClient(cfg.Anthropic.Key),
			Model:     cfg.Anthropic.Model,
			MaxTokens: cfg.Anthropic.MaxTokens,
		})

		svc := financial.NewService(dart, st, composer)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := server.New(server.Config{
			Addr:            fmt.Sprintf(":%d", port),
			ShutdownTimeout: time.Duration(cfg.Server.ShutdownSecs) * time.Second,
			AllowedOrigins:  cfg.Server.AllowedOrigins,
		}, st, svc)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
