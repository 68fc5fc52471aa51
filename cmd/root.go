package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

var rootCmd = &cobra.Command{
	Use:   "seedcraft",
	Short: "Synthetic dataset generator and bulk loader for the ERP schema",
	Long: `
Seedcraft carries the full multi-tenant ERP schema (companies, accounting,
inventory, sales and purchase orders, payroll, subscriptions) and generates
referentially consistent synthetic CSV datasets for it: parent tables are
generated first and child foreign keys are drawn from the keys actually
produced, so the output loads cleanly.

Commands:
  generate   write one CSV per table in dependency order
  load       bulk-load the CSVs into a live database
  tables     print the resolved table order`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedcraft version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedcraft.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seedcraft.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
