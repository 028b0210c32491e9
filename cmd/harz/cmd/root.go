// Package cmd implements the harz CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/happy-arz/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "harz",
		Short: "CLI client for Happy Arz",
		Long: "harz is a command-line client for the Happy Arz API.\n" +
			"It lets you browse ranked venues, manage bookmarks, upload verified\n" +
			"venue spreadsheets and inspect the upload history from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.harz.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("device", "", "device ID that owns bookmarks")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("device", rootCmd.PersistentFlags().Lookup("device")))

	rootCmd.AddCommand(discoverCmd())
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(savedCmd())
	rootCmd.AddCommand(bookmarksCmd())
	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(uploadsCmd())
	rootCmd.AddCommand(verifiedCmd())
	rootCmd.AddCommand(locationsCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".harz")
	}

	viper.SetEnvPrefix("HAPPYARZ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if device := viper.GetString("device"); device != "" {
		opts = append(opts, apiclient.WithDeviceID(device))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
