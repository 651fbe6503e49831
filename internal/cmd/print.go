package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Draw the tree, larger values on top",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(cmd, opts)
			if err != nil {
				return err
			}
			if tree.Size() == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
				return err
			}
			return tree.PrettyPrint(cmd.OutOrStdout())
		},
	}
}

func newHeightCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Print the height of the tree, -1 when empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(cmd, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.TreeHeight())
			return err
		},
	}
}

func newBalancedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balanced",
		Short: "Print whether the subtrees of the root differ in height by at most one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(cmd, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.IsBalanced())
			return err
		},
	}
}
