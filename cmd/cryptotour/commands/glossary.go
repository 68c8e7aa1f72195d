package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cryptotour/internal/glossary"
)

func glossaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glossary [term]",
		Short: "List cryptography terms, or define one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				t, ok := glossary.Lookup(args[0])
				if !ok {
					return fmt.Errorf("no glossary entry for %q", args[0])
				}
				fmt.Fprintf(out, "%s - %s\n", t.Name, t.Definition)
				return nil
			}
			for _, t := range glossary.Terms() {
				fmt.Fprintf(out, "%s\n    %s\n", t.Name, strings.TrimSpace(t.Definition))
			}
			return nil
		},
	}
}
