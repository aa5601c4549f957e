package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"redress/internal/infrastructure/config"
	"redress/internal/infrastructure/database"
	"redress/internal/infrastructure/persistence/migrations"
	"redress/internal/infrastructure/persistence/models"
	"redress/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newStatusCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending schema changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, cleanup, err := openDatabase()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := migrations.Migrate(gormDB); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, cleanup, err := openDatabase()
			if err != nil {
				return err
			}
			defer cleanup()

			tables := []interface{}{
				&models.UserModel{},
				&models.ComplaintModel{},
				&models.CommentModel{},
			}
			migrator := gormDB.Migrator()
			for _, table := range tables {
				state := "missing"
				if migrator.HasTable(table) {
					state = "present"
				}
				fmt.Printf("%-20s %s\n", tableName(gormDB, table), state)
			}
			return nil
		},
	}
}

func openDatabase() (db *gorm.DB, cleanup func(), err error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	gormDB, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cleanup = func() {
		if err := database.Close(gormDB); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	return gormDB, cleanup, nil
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Table
}
