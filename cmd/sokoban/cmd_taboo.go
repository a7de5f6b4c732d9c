package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sokoban/internal/taboo"
	"sokoban/internal/ux"
	"sokoban/internal/warehouse"
)

var tabooPretty bool

var tabooCmd = &cobra.Command{
	Use:   "taboo <warehouse-file>",
	Short: "Print the taboo-cell analysis of a warehouse",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := warehouse.LoadFile(args[0])
		if err != nil {
			return err
		}
		grid := taboo.Render(w, taboo.Compute(w))
		if tabooPretty {
			grid = ux.ColorizeGrid(grid)
		}
		fmt.Println(grid)
		return nil
	},
}

func init() {
	tabooCmd.Flags().BoolVar(&tabooPretty, "pretty", false, "colorize grid output")
	rootCmd.AddCommand(tabooCmd)
}
