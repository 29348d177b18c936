package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/daymade/medscribe/internal/app"
	"github.com/daymade/medscribe/internal/config"
)

var host string
var port string
var environment string

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "interface to bind (overrides "+config.EnvHost+")")
	Cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides "+config.EnvPort+")")
	Cmd.Flags().StringVar(&environment, "env", "", "environment name (overrides "+config.EnvEnvironment+")")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API",
	Long: `Start the HTTP server.

The server hosts the single-page upload UI at /, the JSON API under
/api/v1, Swagger documentation at /swagger, and Prometheus metrics at
/metrics. Provider credentials come from GEMINI_API_KEY and
OPENAI_API_KEY; at least one must be set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags win over environment; the rest of the graph reads env only.
		if host != "" {
			os.Setenv(config.EnvHost, host)
		}
		if port != "" {
			os.Setenv(config.EnvPort, port)
		}
		if environment != "" {
			os.Setenv(config.EnvEnvironment, environment)
		}

		srv, err := app.InitializeServer()
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		if err := srv.Start(); err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
