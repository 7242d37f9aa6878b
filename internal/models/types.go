package models

import "strings"

// Entry represents one link record from the content dataset
type Entry struct {
	ID          string `json:"id"`
	Date        string `json:"date,omitempty"`
	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Status      string `json:"status,omitempty"`
	Resource    string `json:"resource,omitempty"`
}

// Status is the tri-state completion indicator shown on each card
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in-progress"
	StatusNotStarted Status = "not-started"
)

// ParseStatus maps a free-text status value to a Status.
// Unknown and empty values are not-started.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "done", "ready", "paruosta":
		return StatusDone
	case "inprogress", "started", "pradeta":
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Icon returns the icon classes used for the status indicator
func (s Status) Icon() string {
	switch s {
	case StatusDone:
		return "fa-solid fa-circle-check"
	case StatusInProgress:
		return "fa-solid fa-circle-exclamation"
	default:
		return "fa-solid fa-circle-xmark"
	}
}

// Class returns the CSS state class for the status indicator
func (s Status) Class() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusInProgress:
		return "inprogress"
	default:
		return "notstarted"
	}
}

// EntryStatus returns the mapped status of an entry
func (e Entry) EntryStatus() Status {
	return ParseStatus(e.Status)
}

// SortDirection is the date ordering of the visible list
type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
)

// ParseSortDirection returns the direction for "asc" or "desc" and false for anything else
func ParseSortDirection(raw string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "desc":
		return SortDesc, true
	case "asc":
		return SortAsc, true
	}
	return "", false
}

// Opposite returns the other direction
func (d SortDirection) Opposite() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// PlaceholderEntry is shown when the dataset cannot be loaded
func PlaceholderEntry() Entry {
	return Entry{
		ID:          "0",
		Date:        "2025-09-01",
		Title:       "Įvyko klaida",
		Category:    "klaida",
		Description: "Atsiprašome už nepatogumus.",
		URL:         "https://github.com/ale-ignas",
		Status:      "notstarted",
		Resource:    "pranešimas",
	}
}
