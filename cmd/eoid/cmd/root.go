// Package cmd implements the eoid console utility.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	format  string
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "eoid",
	Short: "Decode earth observation product identifiers",
	Long: `eoid decodes the fixed-format identifiers used by earth observation
data products (satellite scene and product names) into structured records.

Supported grammars:
  sentinel2-product - Sentinel-2 compact naming convention products
  sentinel3-product - Sentinel-3 products
  landsat-product   - Landsat collection products
  landsat-scene     - Landsat scene identifiers`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
		}
		return loadConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
