package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/tenant-console/internal/app"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

func newTenantsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant", "t"},
		Short:   "Inspect and manage tenants in the directory",
	}
	cmd.AddCommand(
		newTenantsListCmd(e),
		newTenantsGetCmd(e),
		newTenantsDeleteCmd(e),
		newTenantsSetStatusCmd(e),
	)
	return cmd
}

func (e *env) tenants() ports.TenantService {
	return app.NewTenantService(e.directory, e.logger)
}

func newTenantsListCmd(e *env) *cobra.Command {
	var (
		q        tenant.Query
		statuses []string
		packages []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Example: `  tenantctl tenants list --status active --status trial
  tenantctl tenants list --search acme --sort-by createdAt --desc -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range statuses {
				q.Statuses = append(q.Statuses, tenant.Status(s))
			}
			for _, p := range packages {
				q.Packages = append(q.Packages, catalog.PackageID(p))
			}
			page, err := e.tenants().ListTenants(cmd.Context(), q)
			if err != nil {
				return err
			}
			return e.printer.Tenants(page, q)
		},
	}

	f := cmd.Flags()
	f.IntVar(&q.Page, "page", 1, "page number")
	f.IntVar(&q.PageSize, "page-size", tenant.DefaultPageSize, "tenants per page")
	f.StringVarP(&q.Search, "search", "s", "", "match name or code")
	f.StringArrayVar(&statuses, "status", nil, "filter by status (repeatable)")
	f.StringArrayVar(&packages, "package", nil, "filter by package (repeatable)")
	f.StringVar(&q.SortBy, "sort-by", "", "sort field: name, createdAt or status")
	f.BoolVar(&q.SortDesc, "desc", false, "sort descending")
	return cmd
}

func newTenantsGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tn, err := e.tenants().GetTenant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return e.printer.Tenant(tn)
		},
	}
}

func newTenantsDeleteCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes {
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete tenant %s? [y/N] ", id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
					return nil
				}
			}
			if err := e.tenants().DeleteTenant(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %s deleted.\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newTenantsSetStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "set-status <status> <id>...",
		Short:   "Set the status of one or more tenants",
		Example: "  tenantctl tenants set-status suspended t-1 t-2",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.tenants().BulkUpdateStatus(cmd.Context(), args[1:], tenant.Status(args[0]))
			if err != nil {
				return err
			}
			if err := e.printer.BulkStatus(result); err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d of %d updates failed", len(result.Errors), len(args)-1)
			}
			return nil
		},
	}
}
