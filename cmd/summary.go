package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/flixboard/config"
	"github.com/kasuboski/flixboard/pkg/analysis"
	"github.com/kasuboski/flixboard/pkg/dashboard"
	"github.com/kasuboski/flixboard/pkg/loader"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "print catalog totals and the most popular genres",
	Long:  `print catalog totals over every cleaned release year and the most popular genres`,
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

		ctx := context.TODO()
		d := dashboard.New(loader.New(store, loader.Options{Memoize: true}), newDashboardOptions(cfg))

		opts, err := d.Options(ctx)
		if err != nil {
			log.Fatal("failed to read catalog", zap.Error(err))
		}

		view, err := d.Build(ctx, analysis.FilterSpec{
			Years:       &analysis.YearRange{Low: opts.MinYear, High: opts.MaxYear},
			ContentType: analysis.ContentBoth,
		})
		if err != nil {
			log.Fatal("failed to build summary", zap.Error(err))
		}

		size := "unknown size"
		if fi, err := os.Stat(cfg.Storage.FilePath); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}

		fmt.Printf("Catalog %s (%s), releases %d-%d\n", cfg.Storage.FilePath, size, opts.MinYear, opts.MaxYear)
		fmt.Printf("  Movies:   %s\n", humanize.Comma(int64(view.KPIs.Movies)))
		fmt.Printf("  TV Shows: %s\n", humanize.Comma(int64(view.KPIs.TVShows)))
		fmt.Printf("  Total:    %s\n", humanize.Comma(int64(view.KPIs.Total)))

		printLabels("Top movie genres", view.TopMovieGenres)
		printLabels("Top tv genres", view.TopTVGenres)
	},
}

func printLabels(title string, counts []storage.LabelCount) {
	fmt.Printf("\n%s\n", title)
	for i, c := range counts {
		fmt.Printf("  %s %-40s %s\n", humanize.Ordinal(i+1), c.Label, humanize.Comma(int64(c.Count)))
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
