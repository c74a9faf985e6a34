package commands

import (
	"blogapi/pkg/log"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	envFile string
)

// rootCmd serves the API when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "blogapi",
	Short: "Blog API - users, blogs and likes over REST",
	Long: `Blog API serves users and blog posts with a like relation, backed by PostgreSQL.

Configuration is read from the environment, optionally seeded from a .env file:
  APP_PORT, APP_ENV, DATABASE_URL or DB_HOST/DB_PORT/DB_USER/DB_PASS/DB_NAME/DB_SSLMODE,
  LOG_LEVEL, LOG_DIR`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(envFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), serveMigrate)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before starting")
	rootCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply the database schema before serving")
}

// loadEnv loads path into the environment. A missing file is not an error, the
// variables may come from the process environment instead.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.NewLogger().Warnf("No env file at %s, using process environment", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}
