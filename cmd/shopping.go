package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/output"
	"github.com/gaurav-prasanna/recipegrab/core/shopping"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagListFile string
	flagSource   string
	flagClearAll bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the shopping list",
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <note>",
	Short: "Add the checked ingredients of a recipe note to the shopping list",
	Long: `Add collects every checked ingredient under the note's Ingredients heading,
unchecks it in the note and merges it into the shopping list. Amounts of the
same ingredient are added up, converting between units where possible.

Examples:
  recipegrab shopping add "Tomato Soup.md"
  recipegrab shopping add soup.md --source "Tomato Soup" --list groceries.md`,
	Args: cobra.ExactArgs(1),
	RunE: runShoppingAdd,
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove checked items from the shopping list",
	Args:  cobra.NoArgs,
	RunE:  runShoppingClear,
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingAddCmd, shoppingClearCmd)

	shoppingCmd.PersistentFlags().StringVar(&flagListFile, "list", "", "Shopping list file (default: shopping_list_file in the configured folder)")
	shoppingAddCmd.Flags().StringVar(&flagSource, "source", "", "Recipe name recorded next to each item (default: the note's file name)")
	shoppingClearCmd.Flags().BoolVar(&flagClearAll, "all", false, "Remove every item, checked or not")
}

func listPath() string {
	if flagListFile != "" {
		return flagListFile
	}
	return cfg.ShoppingListPath()
}

func runShoppingAdd(_ *cobra.Command, args []string) error {
	notePath := args[0]
	source := flagSource
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath))
	}
	list := listPath()

	summary, err := shopping.AddFromNote(output.NewFileStore(), notePath, list, source)
	if errors.Is(err, core.ErrNothingChecked) {
		return fmt.Errorf("%s: %w", notePath, err)
	}
	if err != nil {
		return err
	}

	log.Debug("shopping list consolidated",
		zap.String("note", notePath),
		zap.String("list", list),
		zap.Int("merged", summary.Merged),
		zap.Int("added", summary.Added),
	)
	fmt.Fprintf(os.Stdout, "Shopping list updated (%d merged, %d new) → %s\n", summary.Merged, summary.Added, list)
	return nil
}

func runShoppingClear(_ *cobra.Command, _ []string) error {
	list := listPath()
	removed, err := shopping.ClearList(output.NewFileStore(), list, flagClearAll)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed %d items from %s\n", removed, list)
	return nil
}
