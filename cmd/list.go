package cmd

import (
	"context"

	"github.com/kasuboski/flixboard/config"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd groups the label popularity listings
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list label popularity from the stored catalog",
	Long: `list how many titles carry each genre or country label.

Counts come from the full catalog, most used label first, for movies and
tv shows separately.`,
}

var listGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "list genre popularity for movies and tv shows",
	Run: func(cmd *cobra.Command, args []string) {
		listLinks(storage.LinkMovieGenres, storage.LinkTVShowGenres)
	},
}

var listCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "list country popularity for movies and tv shows",
	Run: func(cmd *cobra.Command, args []string) {
		listLinks(storage.LinkMovieCountries, storage.LinkTVShowCountries)
	},
}

func listLinks(links ...storage.Link) {
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

	for _, link := range links {
		counts, err := store.CountLabels(context.TODO(), link)
		if err != nil {
			log.Fatal("failed to count labels", zap.String("link", string(link)), zap.Error(err))
		}
		printLabels(string(link), counts)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listGenresCmd)
	listCmd.AddCommand(listCountriesCmd)
}
