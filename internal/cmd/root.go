package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Osama3511/Binary-Search-Tree/Trees"
)

// valuesEnv holds the comma separated values used when --values isn't given.
const valuesEnv = "BST_VALUES"

type options struct {
	values  []int
	inserts []int
	deletes []int
	envFile string
	debug   bool
}

// NewRootCommand returns the bst command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bst",
		Short: "Build and inspect a self-balancing binary search tree",
		Long: `Build a binary search tree from a list of integers, apply insertions
and deletions to it, then print, walk or query it.`,
		Example: `bst --values 1,7,4,23,8,9,4,3,5,7,9,67,6345,324 --insert 350 print`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				pterm.EnableDebugMessages()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().IntSliceVarP(&opts.values, "values", "v", nil, "values to build the tree from, defaults to $"+valuesEnv)
	rootCmd.PersistentFlags().IntSliceVarP(&opts.inserts, "insert", "i", nil, "values inserted after building, in order")
	rootCmd.PersistentFlags().IntSliceVarP(&opts.deletes, "delete", "d", nil, "values deleted after the insertions, in order")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file to read $"+valuesEnv+" from")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "print debug messages")

	rootCmd.AddCommand(
		newPrintCommand(opts),
		newWalkCommand(opts),
		newFindCommand(opts),
		newHeightCommand(opts),
		newBalancedCommand(opts),
	)

	return rootCmd
}

// Execute runs the bst command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// parseValues parses a comma separated list of integers. Blank entries are skipped.
func parseValues(s string) ([]int, error) {
	fields := lo.Filter(strings.Split(s, ","), func(f string, _ int) bool {
		return strings.TrimSpace(f) != ""
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// loadTree builds the tree described by the flags of cmd.
func loadTree(cmd *cobra.Command, opts *options) (*Trees.BSTree[int], error) {
	values := opts.values
	if !cmd.Flags().Changed("values") {
		if opts.envFile != "" {
			if err := godotenv.Load(opts.envFile); err != nil {
				return nil, errors.Wrapf(err, "could not load env file %s", opts.envFile)
			}
		}
		var err error
		if values, err = parseValues(os.Getenv(valuesEnv)); err != nil {
			return nil, errors.Wrap(err, valuesEnv)
		}
	}

	tree := Trees.Build(values)
	pterm.Debug.Printfln("built tree of %d values from %d inputs", tree.Size(), len(values))

	for _, v := range opts.inserts {
		root := tree.Root()
		if !tree.Insert(v) {
			pterm.Debug.Printfln("insert %d: already present", v)
		} else if root != nil && root != tree.Root() {
			pterm.Debug.Printfln("insert %d: tree rebalanced", v)
		} else {
			pterm.Debug.Printfln("insert %d", v)
		}
	}
	for _, v := range opts.deletes {
		if !tree.Delete(v) {
			pterm.Debug.Printfln("delete %d: not present", v)
		} else {
			pterm.Debug.Printfln("delete %d", v)
		}
	}
	return tree, nil
}

func formatValues(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), " ")
}
