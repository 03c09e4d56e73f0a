package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gaurav-prasanna/recipegrab/core/frontmatter"
	"github.com/gaurav-prasanna/recipegrab/core/output"
	"github.com/spf13/cobra"
)

var madeCmd = &cobra.Command{
	Use:   "made <note>",
	Short: "Mark a recipe note as made today",
	Long: `Made increments times_made and sets last_made in the note's frontmatter,
adding a frontmatter block when the note has none.`,
	Args: cobra.ExactArgs(1),
	RunE: runMade,
}

func init() {
	rootCmd.AddCommand(madeCmd)
}

func runMade(_ *cobra.Command, args []string) error {
	notePath := args[0]
	store := output.NewFileStore()

	note, exists, err := store.Read(notePath)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("recipe note %s does not exist", notePath)
	}

	updated, count, err := frontmatter.MarkMade(note, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", notePath, err)
	}
	if err := store.Write(notePath, updated); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Marked as made! (%d times)\n", count)
	return nil
}
