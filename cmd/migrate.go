package cmd

import (
	"context"

	"github.com/kasuboski/flixboard/config"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type migrationVersioner interface {
	GetMigrationVersion() (uint, bool, error)
}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply database migrations",
	Long:  `apply the embedded schema migrations to the configured sqlite database`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}
		defer store.Close()

		err = store.RunMigrations(context.TODO())
		if err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}

		if v, ok := store.(migrationVersioner); ok {
			version, dirty, err := v.GetMigrationVersion()
			if err != nil {
				log.Fatal("failed to read migration version", zap.Error(err))
			}
			log.Info("database migrated", zap.String("path", cfg.Storage.FilePath), zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
