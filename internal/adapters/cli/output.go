// Package cli renders tenant directory data for tenantctl. Structured
// formats reuse the HTTP DTOs, so scripts see the same field names as API
// clients.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// Printer writes command results in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Tenants prints one page of a listing produced by q.
func (p *Printer) Tenants(page *tenant.Page, q tenant.Query) error {
	q.Normalize()
	if p.format != FormatTable {
		return p.structured(dto.ToTenantListResponse(page, q))
	}

	if len(page.Data) == 0 {
		_, err := fmt.Fprintln(p.w, text.FgYellow.Sprint("No tenants found"))
		return err
	}

	t := p.table()
	t.AppendHeader(table.Row{"ID", "NAME", "CODE", "STATUS", "PACKAGE", "USERS", "STORAGE", "CREATED"})
	for _, tn := range page.Data {
		t.AppendRow(table.Row{
			tn.ID,
			tn.Name,
			tn.Code,
			statusCell(tn.Status),
			tn.PackageID,
			limitCell(tn.Limits.MaxUsers),
			wizard.StorageLabel(tn.Limits.MaxStorageGB),
			humanize.Time(tn.CreatedAt),
		})
	}
	t.Render()

	pages := max(1, (page.Total+q.PageSize-1)/q.PageSize)
	_, err := fmt.Fprintf(p.w, "\n%s %s tenants, page %d of %d\n",
		text.FgHiBlue.Sprint("Total:"), humanize.Comma(int64(page.Total)), q.Page, pages)
	if err != nil {
		return err
	}
	if page.Stale {
		_, err = fmt.Fprintln(p.w, text.FgYellow.Sprint("Directory unreachable; showing the last page fetched."))
	}
	return err
}

// Tenant prints a single tenant as key/value rows.
func (p *Printer) Tenant(tn *tenant.Tenant) error {
	if p.format != FormatTable {
		return p.structured(dto.ToTenantResponse(tn))
	}

	customDomain := tn.CustomDomain
	if customDomain == "" {
		customDomain = "-"
	}
	t := p.table()
	t.AppendRows([]table.Row{
		{"ID", tn.ID},
		{"Name", tn.Name},
		{"Code", tn.Code},
		{"Status", statusCell(tn.Status)},
		{"Package", tn.PackageID},
		{"Billing", tn.BillingCycle},
		{"Users", limitCell(tn.Limits.MaxUsers)},
		{"Storage", wizard.StorageLabel(tn.Limits.MaxStorageGB)},
		{"Custom domain", customDomain},
		{"Region", tn.DatabaseRegion},
		{"Owner", fmt.Sprintf("%s <%s>", tn.Owner.FullName(), tn.Owner.Email)},
		{"Company", tn.Company.Name},
		{"Created", humanize.Time(tn.CreatedAt)},
	})
	t.Render()
	return nil
}

// codeAvailability is the structured form of a code check.
type codeAvailability struct {
	Code      string `json:"code"`
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// CodeAvailability prints the outcome of a subdomain availability check.
func (p *Printer) CodeAvailability(a *tenant.CodeAvailability, baseDomain string) error {
	if p.format != FormatTable {
		return p.structured(codeAvailability{Code: a.Code, Available: a.IsAvailable, Message: a.Message})
	}

	var line string
	if a.IsAvailable {
		line = text.FgGreen.Sprint(fmt.Sprintf("✔ %s.%s is available", a.Code, baseDomain))
	} else {
		msg := "✘ " + a.Code + " is taken"
		if a.Message != "" {
			msg += ": " + a.Message
		}
		line = text.FgRed.Sprint(msg)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// BulkStatus prints the per-tenant outcome of a bulk status change.
func (p *Printer) BulkStatus(result *ports.BulkStatusResult) error {
	if p.format != FormatTable {
		return p.structured(dto.ToBulkStatusResponse(result))
	}

	t := p.table()
	t.AppendHeader(table.Row{"TENANT", "RESULT"})
	for _, tn := range result.Updated {
		t.AppendRow(table.Row{tn.ID, statusCell(tn.Status)})
	}
	for _, e := range result.Errors {
		t.AppendRow(table.Row{e.TenantID, text.FgRed.Sprint(e.Err.Error())})
	}
	t.Render()

	_, err := fmt.Fprintf(p.w, "\n%d updated, %d failed\n", len(result.Updated), len(result.Errors))
	return err
}

func (p *Printer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	return t
}

// structured writes v as indented JSON or as YAML with the same keys.
func (p *Printer) structured(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	if p.format == FormatJSON {
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("re-decoding output: %w", err)
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func statusCell(s tenant.Status) string {
	switch s {
	case tenant.StatusActive:
		return text.FgGreen.Sprint(s)
	case tenant.StatusTrial:
		return text.FgCyan.Sprint(s)
	case tenant.StatusSuspended:
		return text.FgRed.Sprint(s)
	default:
		return text.FgHiBlack.Sprint(s)
	}
}

func limitCell(n int) string {
	if n == catalog.Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(n)
}
