package commands

import (
	"github.com/spf13/cobra"

	"cryptotour/internal/tour"
)

func tourCmd() *cobra.Command {
	var (
		sections   []string
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Walk through hashing, encryption, signing, salting and key agreement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			only := make([]tour.Section, 0, len(sections))
			for _, name := range sections {
				s, err := tour.ParseSection(name)
				if err != nil {
					return err
				}
				only = append(only, s)
			}
			if passphrase != "" {
				appCtx.Options.Passphrase = passphrase
			}
			_, err := appCtx.Tour().Run(cmd.Context(), only...)
			return err
		},
	}
	cmd.Flags().StringSliceVar(&sections, "section", nil, "run only these sections (hashing, encryption, signing, salting, key-agreement)")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for the salting section")
	return cmd
}
