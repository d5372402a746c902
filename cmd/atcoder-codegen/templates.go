package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/workspace"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Install the bundled templates into ~/.atcoder-tools/templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		written, err := codegen.InstallDefaultTemplates(&workspace.RealFileSystem{}, overwrite)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().Bool("overwrite", false, "Replace templates that already exist")
}
