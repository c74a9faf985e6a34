package commands

import (
	"blogapi/database/postgres"
	"blogapi/pkg/log"
	"context"
	"time"

	"github.com/spf13/cobra"
)

// migrateCmd applies the embedded schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Create the users, blogs and blog_likes tables if they do not exist.
The schema is idempotent, running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context) error {
	logger := log.NewLogger()

	db, err := postgres.New()
	if err != nil {
		return err
	}
	defer db.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	logger.Info("Database schema applied")
	return nil
}
