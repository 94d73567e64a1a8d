// Package main provides the kalkman-web server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/config"
	"github.com/photinia-ana/kalkman-web/internal/handler"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
	"github.com/photinia-ana/kalkman-web/internal/router"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the kalkman-web CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "kalkman-web",
		Short:   "User profile and video recommendation dashboard",
		Long:    "Kalkman Web serves a dashboard over precomputed user-profile and video-recommendation data from the analysis backend.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("kalkman-web version {{.Version}}\n")
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Development convenience; a missing .env is not an error.
			_ = godotenv.Load()

			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}

			middleware.InitLogger(cfg.LogLevel, "kalkman-web")
			handler.InitMetrics()

			api := backend.NewClient(cfg.BackendURL,
				backend.WithObserver(handler.ObserveBackendRequest))

			engine := html.New("./web/templates", ".html")

			app := fiber.New(fiber.Config{
				AppName:      "Kalkman Web",
				ServerHeader: "Kalkman",
				Views:        engine,
			})

			router.Setup(app, &router.Handlers{
				Pages:  handler.NewPages(api),
				Health: handler.NewHealthHandler(api),
			}, cfg.CORSOrigins)

			middleware.Logger.Info().
				Str("port", cfg.Port).
				Str("backend", cfg.BackendURL).
				Str("env", cfg.Environment).
				Msg("dashboard starting")

			if err := app.Listen(":" + cfg.Port); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
