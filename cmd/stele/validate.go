package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stele-cms/stele/pkg/manifest"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest...]",
		Short: "Validate element manifests",
		Long: `Validate one or more element manifests without rendering.

Checks that element names are unique, ingredient roles are unique
per element, and every ingredient type is known.

Examples:
  stele validate
  stele validate content/*.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"elements.yml"}
			}
			for _, path := range args {
				m, err := manifest.Load(path)
				if err != nil {
					return err
				}
				fmt.Printf("%s: ok (%d elements)\n", path, len(m.Elements))
			}
			return nil
		},
	}

	return cmd
}
