package cmd

import (
	"context"
	"os"

	"github.com/kasuboski/flixboard/config"
	"github.com/kasuboski/flixboard/pkg/importer"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importFile string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "load a netflix_titles.csv export into the database",
	Long:  `load a netflix_titles.csv export into the database, replacing every stored title`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		f, err := os.Open(importFile)
		if err != nil {
			log.Fatal("failed to open csv", zap.Error(err))
		}
		defer f.Close()

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}
		defer store.Close()

		ctx := context.TODO()
		err = store.RunMigrations(ctx)
		if err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}

		stats, err := importer.Import(ctx, store, f)
		if err != nil {
			log.Fatal("failed to import catalog", zap.Error(err))
		}

		log.Infow("import complete",
			"file", importFile,
			"movies", stats.Movies,
			"tvshows", stats.TVShows,
			"genres", stats.Genres,
			"countries", stats.Countries,
			"skipped", stats.Skipped)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importFile, "file", "f", "netflix_titles.csv", "csv export to import")
}
