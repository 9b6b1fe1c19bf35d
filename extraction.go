package quemequem

import (
	"context"
	"time"
)

// Extraction is the outcome of one extraction run for a role.
type Extraction struct {
	ID         string     `json:"id"`
	RoleID     string     `json:"roleId"`
	Record     Record     `json:"record"`
	Provenance Provenance `json:"provenance"`

	// Strategy is empty when no window was found.
	Strategy Strategy `json:"strategy"`

	// PageHash is the xxhash of the page markup, hex encoded.
	PageHash string `json:"pageHash"`

	// NameSimilarity is the Jaro-Winkler similarity between the name found
	// on the page and the default name. Zero when either is missing.
	NameSimilarity float64 `json:"nameSimilarity"`

	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.RoleID == "" {
		return Errorf(EINVALID, "extraction role ID required")
	}
	if e.Record.Source == "" {
		return Errorf(EINVALID, "extraction source required")
	}
	return nil
}

// ExtractionService represents a service for managing extraction history.
type ExtractionService interface {
	// CreateExtraction stores a new extraction, assigning its ID.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// most recent first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtractionsByRole removes all extractions for a role.
	DeleteExtractionsByRole(ctx context.Context, roleID string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID       *string `json:"id"`
	RoleID   *string `json:"roleId"`
	PageHash *string `json:"pageHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
