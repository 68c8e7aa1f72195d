package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cryptotour/internal/app"
)

var (
	configPath string
	logLevel   string
	upper      bool

	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptotour",
		Short:         "A guided tour of hashing, encryption, signing and key agreement",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if upper {
				cfg.HexCase = "upper"
			}
			appCtx, err = app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx.Log.Debug().Str("config", configPath).Msg("configuration loaded")
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&upper, "upper", "U", false, "print hex in upper case")

	root.AddCommand(saltCmd(), hexCmd(), hashCmd(), tourCmd(), glossaryCmd())
	return root
}
