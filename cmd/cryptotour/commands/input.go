package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// inputBytes joins args with spaces, or reads stdin when there are none.
func inputBytes(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	return io.ReadAll(cmd.InOrStdin())
}
