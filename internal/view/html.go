// Package view renders presenter pages as HTML. The card markup is shared;
// the filter controls are either dropdowns or tag buttons.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var base = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl", "templates/cards.html.tmpl"))

// HTML renders a full page with one style of filter controls
type HTML struct {
	tmpl    *template.Template
	variant presenter.Variant
}

func newHTML(controls string, variant presenter.Variant) *HTML {
	tmpl := template.Must(template.Must(base.Clone()).ParseFS(templateFS, controls))
	return &HTML{tmpl: tmpl, variant: variant}
}

// SelectControls renders the dropdown variant: sort, category and resource selects
func SelectControls() *HTML {
	return newHTML("templates/controls_select.html.tmpl", presenter.VariantSelect)
}

// TagControls renders the tag-button variant with a sort toggle
func TagControls() *HTML {
	return newHTML("templates/controls_tags.html.tmpl", presenter.VariantTags)
}

// ForVariant returns the HTML view for v, defaulting to dropdowns
func ForVariant(v presenter.Variant) *HTML {
	if v == presenter.VariantTags {
		return TagControls()
	}
	return SelectControls()
}

// Render implements presenter.View
func (h *HTML) Render(w io.Writer, page presenter.Page) error {
	if err := h.tmpl.ExecuteTemplate(w, "page", h.data(page)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// RenderCards writes only the card list, without page chrome or controls
func (h *HTML) RenderCards(w io.Writer, page presenter.Page) error {
	if err := h.tmpl.ExecuteTemplate(w, "cards", h.data(page)); err != nil {
		return fmt.Errorf("failed to render cards: %w", err)
	}
	return nil
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type link struct {
	Label  string
	Href   string
	Active bool
}

type pageData struct {
	presenter.Page
	SortOptions     []option
	CategoryOptions []option
	ResourceOptions []option
	Tags            []link
	Toggle          link
}

func (h *HTML) data(page presenter.Page) pageData {
	labels := page.Labels
	state := page.State

	d := pageData{
		Page: page,
		SortOptions: []option{
			{Value: string(models.SortDesc), Label: labels.SortNewest, Selected: state.Direction == models.SortDesc},
			{Value: string(models.SortAsc), Label: labels.SortOldest, Selected: state.Direction == models.SortAsc},
		},
		CategoryOptions: options(page.Domains.Categories, state.Category, labels.AllCategories),
		ResourceOptions: options(page.Domains.Resources, state.Resource, labels.AllResources),
	}

	d.Tags = append(d.Tags, link{
		Label:  labels.AllCategories,
		Href:   h.query(page, presenter.All, state.Direction),
		Active: state.Category == presenter.All,
	})
	for _, c := range page.Domains.Categories {
		d.Tags = append(d.Tags, link{
			Label:  c,
			Href:   h.query(page, c, state.Direction),
			Active: state.Category == c,
		})
	}

	toggleLabel := labels.SortNewest
	if state.Direction == models.SortAsc {
		toggleLabel = labels.SortOldest
	}
	d.Toggle = link{
		Label: toggleLabel,
		Href:  h.query(page, state.Category, state.Direction.Opposite()),
	}

	return d
}

func options(values []string, selected, allLabel string) []option {
	out := make([]option, 0, len(values)+1)
	out = append(out, option{Value: presenter.All, Label: allLabel, Selected: selected == presenter.All})
	for _, v := range values {
		out = append(out, option{Value: v, Label: v, Selected: selected == v})
	}
	return out
}

// query builds the link for a category and direction, keeping the resource selection
func (h *HTML) query(page presenter.Page, category string, direction models.SortDirection) string {
	q := url.Values{}
	q.Set("variant", string(h.variant))
	q.Set("sort", string(direction))
	if category != presenter.All {
		q.Set("category", category)
	}
	if page.ResourceFilter && page.State.Resource != presenter.All {
		q.Set("resource", page.State.Resource)
	}
	return "?" + q.Encode()
}
