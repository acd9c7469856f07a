package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinstarman/mersge/internal/conflict"
	"github.com/martinstarman/mersge/internal/mergefile"
	"github.com/martinstarman/mersge/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "mersge <filename>",
	Short: "Resolve merge conflicts in a three pane terminal view",
	Long: "Shows the local, result and incoming version of a conflicted file as three\n" +
		"aligned columns and resolves each conflict line by accepting one side.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Wrong arity prints usage to stdout and exits 0.
		if len(args) != 1 {
			fmt.Println("Usage: mersge <filename>")
			return nil
		}
		return run(args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func run(path string) error {
	file, err := mergefile.Open(path)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	doc := conflict.Parse(file.Content())

	if doc.ConflictCount() == 0 {
		open, err := ui.ConfirmResolve(path)
		if err != nil {
			return err
		}
		if !open {
			fmt.Println("Nothing to resolve.")
			return nil
		}
	}

	return ui.StartResolver(file, doc)
}
