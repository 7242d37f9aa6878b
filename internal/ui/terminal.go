package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
	"github.com/ale-ignas/linkboard/internal/utils"
)

// Terminal renders presenter pages for a terminal
type Terminal struct {
	Table      bool
	Hyperlinks bool
	Now        func() time.Time
}

// Render implements presenter.View
func (t *Terminal) Render(w io.Writer, page presenter.Page) error {
	if len(page.Cards) == 0 {
		_, err := fmt.Fprintln(w, pterm.Yellow(page.Labels.NoEntries))
		return err
	}
	if t.Table {
		return t.renderTable(w, page)
	}
	return t.renderCards(w, page)
}

func (t *Terminal) renderTable(w io.Writer, page presenter.Page) error {
	data := pterm.TableData{{"", "Title", "Category", "Resource", "Date"}}
	for _, c := range page.Cards {
		data = append(data, []string{
			ColorizeStatus(c.Status),
			FormatURL(c.Href, utils.TruncateString(c.Title, 48), t.Hyperlinks && c.Entry.URL != ""),
			c.Entry.Category,
			c.Entry.Resource,
			t.formatDate(c.Entry.Date),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nShowing %d entries\n", len(page.Cards))
	return err
}

func (t *Terminal) renderCards(w io.Writer, page presenter.Page) error {
	var b strings.Builder
	for _, c := range page.Cards {
		fmt.Fprintf(&b, "%s %s\n", ColorizeStatus(c.Status), pterm.Bold.Sprint(FormatURL(c.Href, c.Title, t.Hyperlinks && c.Entry.URL != "")))
		if c.Entry.URL != "" {
			fmt.Fprintf(&b, "  URL: %s\n", c.Entry.URL)
		}
		if c.Entry.Description != "" {
			fmt.Fprintf(&b, "  %s\n", c.Entry.Description)
		}
		if c.Entry.Category != "" {
			fmt.Fprintf(&b, "  Category: %s\n", pterm.Magenta(c.Entry.Category))
		}
		if c.Entry.Resource != "" {
			fmt.Fprintf(&b, "  Resource: %s\n", pterm.Cyan(c.Entry.Resource))
		}
		if c.Entry.Date != "" {
			fmt.Fprintf(&b, "  Date: %s\n", t.formatDate(c.Entry.Date))
		}
		b.WriteString(strings.Repeat("-", 50))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total entries: %d\n", len(page.Cards))

	_, err := io.WriteString(w, b.String())
	return err
}

// formatDate shows the raw date with a relative hint when it parses
func (t *Terminal) formatDate(raw string) string {
	parsed, ok := utils.ParseDate(raw)
	if !ok {
		return raw
	}
	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}
	return fmt.Sprintf("%s (%s)", raw, humanize.RelTime(parsed, now, "ago", "from now"))
}

// ColorizeStatus returns a colored glyph for a status
func ColorizeStatus(s models.Status) string {
	switch s {
	case models.StatusDone:
		return pterm.Green("✔")
	case models.StatusInProgress:
		return pterm.Yellow("●")
	default:
		return pterm.Red("✘")
	}
}

// FormatURL formats text as a clickable terminal hyperlink using the OSC 8 escape sequence
func FormatURL(url, text string, useHyperlink bool) string {
	if !useHyperlink {
		return text
	}
	// \a (BEL) terminator for wider compatibility
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, text)
}

// PrintDomains writes the filter options of a dataset
func PrintDomains(w io.Writer, d presenter.Domains, labels presenter.Labels) {
	fmt.Fprintf(w, "%s:\n", labels.CategoryLabel)
	fmt.Fprintf(w, "  %s (%s)\n", presenter.All, labels.AllCategories)
	for _, c := range d.Categories {
		fmt.Fprintf(w, "  %s\n", c)
	}
	fmt.Fprintf(w, "%s:\n", labels.ResourceLabel)
	fmt.Fprintf(w, "  %s (%s)\n", presenter.All, labels.AllResources)
	for _, r := range d.Resources {
		fmt.Fprintf(w, "  %s\n", r)
	}
}
