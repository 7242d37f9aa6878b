// Package presenter turns a loaded dataset into the visible, filtered and
// sorted list of cards, and hands it to a View for drawing.
package presenter

import (
	"io"
	"sort"

	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/utils"
)

// All is the filter value that matches every entry
const All = "all"

// Variant names the filter control style of the page
type Variant string

const (
	VariantSelect Variant = "select"
	VariantTags   Variant = "tags"
)

// ParseVariant returns the variant for raw and false if it is unknown
func ParseVariant(raw string) (Variant, bool) {
	switch Variant(raw) {
	case VariantSelect, VariantTags:
		return Variant(raw), true
	}
	return "", false
}

// Options configures a presenter
type Options struct {
	Variant          Variant
	ResourceFilter   bool
	DefaultDirection models.SortDirection
	Labels           Labels
}

// Labels holds the user-visible texts of the page
type Labels struct {
	Title         string
	NoEntries     string
	AllCategories string
	AllResources  string
	SortNewest    string
	SortOldest    string
	Apply         string
	UntitledEntry string
	SortHeading   string
	CategoryLabel string
	ResourceLabel string
}

// DefaultLabels returns the Lithuanian page texts
func DefaultLabels() Labels {
	return Labels{
		Title:         "Nuorodos",
		NoEntries:     "Nerasta įrašų pagal pasirinktus filtrus.",
		AllCategories: "Visos",
		AllResources:  "Visi",
		SortNewest:    "Naujausi viršuje",
		SortOldest:    "Seniausi viršuje",
		Apply:         "Rodyti",
		UntitledEntry: "—",
		SortHeading:   "Rikiavimas",
		CategoryLabel: "Kategorija",
		ResourceLabel: "Šaltinis",
	}
}

// DefaultOptions returns the options of the dropdown variant
func DefaultOptions() Options {
	return Options{
		Variant:          VariantSelect,
		ResourceFilter:   true,
		DefaultDirection: models.SortDesc,
		Labels:           DefaultLabels(),
	}
}

// State is the current filter and sort selection
type State struct {
	Category  string               `json:"category"`
	Resource  string               `json:"resource"`
	Direction models.SortDirection `json:"sort"`
}

// ParseState converts raw control values to a State. Missing or unknown
// values are left empty so the presenter falls back to its defaults.
func ParseState(category, resource, sort string) State {
	direction, _ := models.ParseSortDirection(sort)
	return State{
		Category:  category,
		Resource:  resource,
		Direction: direction,
	}
}

// Domains are the selectable filter values derived from the dataset
type Domains struct {
	Categories []string `json:"categories"`
	Resources  []string `json:"resources"`
}

// Card is one rendered entry
type Card struct {
	Entry  models.Entry
	Status models.Status
	Title  string
	Href   string
}

// Page is the snapshot handed to a View
type Page struct {
	Variant        Variant
	State          State
	Domains        Domains
	Cards          []Card
	ResourceFilter bool
	Labels         Labels
}

// View draws a page
type View interface {
	Render(w io.Writer, page Page) error
}

// Presenter holds a dataset and the filter state of one page instance
type Presenter struct {
	entries []models.Entry
	domains Domains
	opts    Options
	state   State
	view    View
}

// New creates a presenter over entries. The entries are never modified.
func New(entries []models.Entry, opts Options, view View) *Presenter {
	if _, ok := models.ParseSortDirection(string(opts.DefaultDirection)); !ok {
		opts.DefaultDirection = models.SortDesc
	}
	if opts.Variant == "" {
		opts.Variant = VariantSelect
	}
	if opts.Labels == (Labels{}) {
		opts.Labels = DefaultLabels()
	}

	return &Presenter{
		entries: entries,
		domains: DeriveDomains(entries),
		opts:    opts,
		state: State{
			Category:  All,
			Resource:  All,
			Direction: opts.DefaultDirection,
		},
		view: view,
	}
}

// DeriveDomains returns the sorted distinct non-empty categories and resources
func DeriveDomains(entries []models.Entry) Domains {
	categories := make([]string, 0, len(entries))
	resources := make([]string, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, e.Category)
		resources = append(resources, e.Resource)
	}
	return Domains{
		Categories: utils.DistinctSorted(categories),
		Resources:  utils.DistinctSorted(resources),
	}
}

// Domains returns the filter domains of the loaded dataset
func (p *Presenter) Domains() Domains {
	return p.domains
}

// Options returns the presenter configuration
func (p *Presenter) Options() Options {
	return p.opts
}

// State returns the current selection
func (p *Presenter) State() State {
	return p.state
}

// SetCategory selects a category; empty selects all
func (p *Presenter) SetCategory(category string) {
	if category == "" {
		category = All
	}
	p.state.Category = category
}

// SetResource selects a resource; empty selects all. It is a no-op
// when the resource filter is disabled.
func (p *Presenter) SetResource(resource string) {
	if resource == "" || !p.opts.ResourceFilter {
		resource = All
	}
	p.state.Resource = resource
}

// SetDirection sets the sort direction; unknown values select the default
func (p *Presenter) SetDirection(direction models.SortDirection) {
	if _, ok := models.ParseSortDirection(string(direction)); !ok {
		direction = p.opts.DefaultDirection
	}
	p.state.Direction = direction
}

// ToggleDirection flips the sort direction
func (p *Presenter) ToggleDirection() {
	p.state.Direction = p.state.Direction.Opposite()
}

// Apply replaces the whole selection
func (p *Presenter) Apply(s State) {
	p.SetCategory(s.Category)
	p.SetResource(s.Resource)
	p.SetDirection(s.Direction)
}

// Visible returns the filtered and sorted entries for the current state
func (p *Presenter) Visible() []models.Entry {
	return Sort(Filter(p.entries, p.state), p.state.Direction)
}

// Filter returns the entries matching the category and resource of s.
// The input slice is not modified.
func Filter(entries []models.Entry, s State) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if s.Category != "" && s.Category != All && e.Category != s.Category {
			continue
		}
		if s.Resource != "" && s.Resource != All && e.Resource != s.Resource {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Sort returns a copy of entries ordered by date. Missing or unparseable
// dates count as the epoch; equal dates keep their input order.
func Sort(entries []models.Entry, direction models.SortDirection) []models.Entry {
	type keyed struct {
		entry models.Entry
		key   int64
	}
	items := make([]keyed, len(entries))
	for i, e := range entries {
		items[i] = keyed{entry: e, key: utils.DateValue(e.Date)}
	}

	sort.SliceStable(items, func(a, b int) bool {
		if direction == models.SortAsc {
			return items[a].key < items[b].key
		}
		return items[a].key > items[b].key
	})

	out := make([]models.Entry, len(items))
	for i, it := range items {
		out[i] = it.entry
	}
	return out
}

// Page builds the snapshot for the current state
func (p *Presenter) Page() Page {
	visible := p.Visible()
	cards := make([]Card, 0, len(visible))
	for _, e := range visible {
		cards = append(cards, NewCard(e, p.opts.Labels.UntitledEntry))
	}

	return Page{
		Variant:        p.opts.Variant,
		State:          p.state,
		Domains:        p.domains,
		Cards:          cards,
		ResourceFilter: p.opts.ResourceFilter,
		Labels:         p.opts.Labels,
	}
}

// NewCard derives the display fields of an entry
func NewCard(e models.Entry, untitled string) Card {
	title := e.Title
	if title == "" {
		title = untitled
	}
	href := e.URL
	if href == "" {
		href = "#"
	}
	return Card{
		Entry:  e,
		Status: e.EntryStatus(),
		Title:  title,
		Href:   href,
	}
}

// Render recomputes the visible list and draws it with the view
func (p *Presenter) Render(w io.Writer) error {
	return p.view.Render(w, p.Page())
}
