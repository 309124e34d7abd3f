package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autocomplete/internal/config"
)

var forceInit bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := configService()
		if _, err := os.Stat(svc.Path()); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		}
		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
}
