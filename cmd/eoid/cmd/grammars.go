package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List enabled grammars in dispatch order",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
}
