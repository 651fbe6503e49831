package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Osama3511/Binary-Search-Tree/Trees"
)

var walkOrders = []string{"level", "in", "pre", "post"}

// walk collects the values of tree in the given order.
func walk(tree *Trees.BSTree[int], order string) ([]int, error) {
	var values []int
	visit := func(v int) {
		values = append(values, v)
	}

	var err error
	switch order {
	case "level":
		err = tree.LevelOrder(func(n *Trees.Node[int]) {
			visit(n.Value())
		})
	case "in":
		err = tree.InOrder(visit)
	case "pre":
		err = tree.PreOrder(visit)
	case "post":
		err = tree.PostOrder(visit)
	default:
		return nil, errors.Errorf("unknown order %q, expected one of %v", order, walkOrders)
	}
	return values, err
}

func newWalkCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "walk [level|in|pre|post]",
		Short:     "Print the values of the tree in traversal order",
		Long:      `Print the values of the tree in level, in, pre or post order. The default is in order.`,
		Example:   `bst --values 1,2,3 walk level`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: walkOrders,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := "in"
			if len(args) > 0 {
				order = args[0]
			}
			tree, err := loadTree(cmd, opts)
			if err != nil {
				return err
			}
			values, err := walk(tree, order)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValues(values))
			return err
		},
	}
}

func newFindCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find <value>",
		Short: "Report whether a value is in the tree and at which depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid value %q", args[0])
			}
			tree, err := loadTree(cmd, opts)
			if err != nil {
				return err
			}
			n := tree.Find(v)
			if n == nil {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d not found\n", v)
				return err
			}
			d, _ := tree.Depth(n)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "found %d at depth %d, height %d\n", v, d, tree.Height(n))
			return err
		},
	}
}
