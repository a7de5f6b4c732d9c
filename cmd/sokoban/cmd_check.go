package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sokoban/internal/puzzle"
	"sokoban/internal/validate"
	"sokoban/internal/warehouse"
)

var checkCmd = &cobra.Command{
	Use:   "check <warehouse-file> <action>...",
	Short: "Replay an action sequence and print the resulting grid, or Impossible",
	Long: `Replay an action sequence (Left, Right, Up, Down) against a warehouse.
A legal sequence prints the final grid; an illegal one prints Impossible.
Pushing a box onto a taboo cell is legal here.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := warehouse.LoadFile(args[0])
		if err != nil {
			return err
		}
		actions, err := puzzle.ParseSequence(args[1:])
		if err != nil {
			return err
		}

		rendered, err := validate.ApplySequence(w, actions)
		if errors.Is(err, validate.ErrImpossible) {
			fmt.Println(validate.Impossible)
			return nil
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
