package cmd

import (
	"context"

	"github.com/kasuboski/flixboard/config"
	"github.com/kasuboski/flixboard/pkg/dashboard"
	"github.com/kasuboski/flixboard/pkg/loader"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite"
	"github.com/kasuboski/flixboard/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the dashboard server",
	Long:  `start the dashboard server`,
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

		l := loader.New(store, loader.Options{Memoize: cfg.Loader.Memoize})
		d := dashboard.New(l, newDashboardOptions(cfg))

		server := server.New(log, d)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func newDashboardOptions(cfg config.Config) dashboard.Options {
	return dashboard.Options{
		TopN:           cfg.Dashboard.TopN,
		DurationBins:   cfg.Dashboard.DurationBins,
		DefaultLowYear: cfg.Dashboard.DefaultLowYear,
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
