package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flixboard",
	Short: "flixboard cli",
	Long:  `flixboard serves an analytics dashboard over a Netflix catalog stored in sqlite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("FLIXBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "netflix.db")

	viper.SetDefault("loader.memoize", true)

	viper.SetDefault("dashboard.topN", 10)
	viper.SetDefault("dashboard.durationBins", 20)
	viper.SetDefault("dashboard.defaultLowYear", 2010)
}
