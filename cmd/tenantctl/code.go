package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

func newCodeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Work with tenant codes (subdomains)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <code>",
		Short: "Check whether a subdomain is free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if msg := tenant.CodeProblem(code); msg != "" {
				return fmt.Errorf("invalid code %q: %s", code, msg)
			}
			a, err := e.directory.ValidateTenantCode(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("checking %s: %w", code, err)
			}
			return e.printer.CodeAvailability(a, e.cfg.Wizard.BaseDomain)
		},
	})
	return cmd
}
