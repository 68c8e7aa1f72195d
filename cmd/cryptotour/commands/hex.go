package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptotour/internal/hexfmt"
)

func hexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex [text...]",
		Short: "Hex-encode text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := inputBytes(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexfmt.String(b, appCtx.Options.Case))
			return nil
		},
	}
}
