package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptotour/internal/hexfmt"
	"cryptotour/internal/random"
)

func saltCmd() *cobra.Command {
	var (
		size  string
		count int
	)
	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Print cryptographically secure random salts as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saltSize := appCtx.Options.SaltSize
			if cmd.Flags().Changed("size") {
				s, err := random.ParseSaltSize(size)
				if err != nil {
					return err
				}
				saltSize = s
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			for i := 0; i < count; i++ {
				salt, err := random.Salt(saltSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hexfmt.String(salt, appCtx.Options.Case))
			}
			appCtx.Log.Debug().Stringer("size", saltSize).Int("count", count).Msg("salts generated")
			return nil
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", "256", "salt strength in bits (256, 384, 512)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of salts")
	return cmd
}
