package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptotour/internal/crypto"
)

func hashCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the digest of text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := appCtx.Options.Hash
			if cmd.Flags().Changed("algorithm") {
				a, err := crypto.ParseHashAlgorithm(algorithm)
				if err != nil {
					return err
				}
				alg = a
			}
			b, err := inputBytes(cmd, args)
			if err != nil {
				return err
			}
			d, err := crypto.Hash(alg, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Hex(appCtx.Options.Case), alg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "sha256 or blake3")
	return cmd
}
