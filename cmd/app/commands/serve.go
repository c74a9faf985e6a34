package commands

import (
	"blogapi/internal/config"
	"blogapi/pkg/log"
	"blogapi/pkg/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Serve flags
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server on APP_PORT (default 3000).

Examples:
  blogapi serve                    # Migrate then serve
  blogapi serve --migrate=false    # Serve against an existing schema`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), serveMigrate)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply the database schema before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, migrate bool) error {
	logger := log.NewLogger()

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(migrate),
		config.WithMiddleware(),
		config.WithUtils(utils.New()),
	)
	if err != nil {
		return err
	}

	if err := server.RegisterHandler(); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	logger.Info("Server started successfully")

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
