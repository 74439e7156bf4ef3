package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lexscan",
	Short: "Lexical analyzer for the CC toy language",
	Long:  "Lexscan tokenizes CC source files into classified token streams with an identifier registry, a recoverable-error report, and scan statistics.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().IntP("max-parallel", "j", 4, "Maximum files scanned concurrently")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("max_parallel", rootCmd.PersistentFlags().Lookup("max-parallel"))
}

func initConfig() {
	viper.SetEnvPrefix("LEXSCAN")
	viper.AutomaticEnv()
}
