// Package observability provides formatted output for the jobz CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/schemas"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps the entries of overview lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items as bullets, then a count of the rest.
// A limit of zero writes everything.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := len(items)
	if limit > 0 {
		count = min(count, limit)
	}
	for _, item := range items[:count] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if count < len(items) {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-count)
	}
}

// PrintWorkAreas outputs every work area with the size of its lists.
func (p *Printer) PrintWorkAreas(areas []taxonomy.WorkArea) {
	if len(areas) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d work areas\n\n", len(areas))
	for _, a := range areas {
		specs := len(taxonomy.SpecializationsFor(a))
		titles := len(taxonomy.TitlesForArea(a))
		switch {
		case a == taxonomy.AreaOther:
			fmt.Fprintf(&sb, "%s (free text)\n", a)
		case specs > 0:
			fmt.Fprintf(&sb, "%s (%d specializations)\n", a, specs)
		default:
			fmt.Fprintf(&sb, "%s (%d titles)\n", a, titles)
		}
	}

	p.printBox("WORK AREAS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWorkArea outputs the specializations of one area and its direct titles.
func (p *Printer) PrintWorkArea(area taxonomy.WorkArea) {
	var sb strings.Builder

	specs := taxonomy.SpecializationsFor(area)
	if len(specs) > 0 {
		sb.WriteString("Specializations:\n")
		for _, s := range specs {
			n := len(taxonomy.TitlesFor(s))
			if n == 0 {
				fmt.Fprintf(&sb, "  • %s (no titles yet)\n", s)
				continue
			}
			fmt.Fprintf(&sb, "  • %s (%d)\n", s, n)
		}
	}

	if len(specs) == 0 {
		titles := taxonomy.TitlesForArea(area)
		if len(titles) > 0 {
			sb.WriteString("Job titles:\n")
			writeList(&sb, titles, maxItemsToShow)
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("Free-text role only")
	}
	p.printBox(strings.ToUpper(string(area)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTitles outputs the whole title list of a specialization.
func (p *Printer) PrintTitles(spec taxonomy.Specialization, titles []string) {
	var sb strings.Builder
	if len(titles) == 0 {
		sb.WriteString("No job titles listed")
	} else {
		fmt.Fprintf(&sb, "%d job titles:\n", len(titles))
		writeList(&sb, titles, 0)
	}
	p.printBox(strings.ToUpper(string(spec)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the specializations that have no title list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(gaps []taxonomy.Gap) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ EVERY SPECIALIZATION HAS TITLES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d specializations without titles:\n\n", len(gaps))
	var area taxonomy.WorkArea
	for _, g := range gaps {
		if g.Area != area {
			area = g.Area
			fmt.Fprintf(&sb, "%s\n", area)
		}
		fmt.Fprintf(&sb, "  ⚠ %s\n", g.Specialization)
	}

	p.printBox("TAXONOMY GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs how far a draft has been filled in, block by block,
// followed by its warnings.
func (p *Printer) PrintProfile(d *profile.Draft) {
	if d == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Track: %s\n\n", d.Track())
	for _, b := range d.Template().Blocks {
		filled := 0
		for _, f := range b.Fields {
			v, _ := d.Get(b.Key + "." + f.Key)
			if !isEmpty(v) {
				filled++
			}
		}
		fmt.Fprintf(&sb, "%-36s %d/%d\n", b.Title, filled, len(b.Fields))
	}

	if warnings := d.Warnings(); len(warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&sb, "  ⚠ %s\n", w.Message)
		}
	}

	p.printBox("PROFILE "+strings.ToUpper(string(d.Track())), strings.TrimSuffix(sb.String(), "\n"))
}

func isEmpty(v any) bool {
	switch v := v.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []profile.Entry:
		return len(v) == 0
	case bool:
		return !v
	case interface{ IsZero() bool }:
		return v.IsZero()
	default:
		return v == nil
	}
}

// PrintSchemaErrors outputs the failures of a schema check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSchemaErrors(errs []schemas.FieldError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT MATCHES THE SCHEMA")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d problems:\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "⚠ %s\n", e.Field)
		fmt.Fprintf(&sb, "  %s\n", e.Message)
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
