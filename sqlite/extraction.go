package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/claricenunes/quemequem"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ quemequem.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements quemequem.ExtractionService using SQLite.
// Phones, emails and provenance are stored as JSON columns.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

const extractionColumns = `id, role_id, name, title, phones, emails, source, provenance,
	strategy, page_hash, name_similarity, extracted_at`

// CreateExtraction stores a new extraction. ExtractedAt is set to now when
// zero and kept at second precision.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *quemequem.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	phones, err := encodeList(e.Record.Phones)
	if err != nil {
		return err
	}
	emails, err := encodeList(e.Record.Emails)
	if err != nil {
		return err
	}
	provenance, err := json.Marshal(e.Provenance)
	if err != nil {
		return fmt.Errorf("failed to encode provenance: %w", err)
	}

	if e.ExtractedAt.IsZero() {
		e.ExtractedAt = time.Now()
	}
	e.ExtractedAt = e.ExtractedAt.UTC().Truncate(time.Second)
	e.ID = uuid.New().String()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.RoleID, e.Record.Name, e.Record.Title, phones, emails, e.Record.Source,
		string(provenance), string(e.Strategy), e.PageHash, e.NameSimilarity,
		e.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*quemequem.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+extractionColumns+` FROM extractions WHERE id = ?`, id)
	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quemequem.Errorf(quemequem.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, most recent
// first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter quemequem.ExtractionFilter) ([]*quemequem.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + extractionColumns + ` FROM extractions WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RoleID != nil {
		query.WriteString(" AND role_id = ?")
		args = append(args, *filter.RoleID)
	}
	if filter.PageHash != nil {
		query.WriteString(" AND page_hash = ?")
		args = append(args, *filter.PageHash)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*quemequem.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtractionsByRole removes all extractions for a role.
func (s *ExtractionService) DeleteExtractionsByRole(ctx context.Context, roleID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE role_id = ?", roleID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*quemequem.Extraction, error) {
	var e quemequem.Extraction
	var phones, emails, provenance, strategy, extractedAt string

	if err := row.Scan(&e.ID, &e.RoleID, &e.Record.Name, &e.Record.Title, &phones, &emails,
		&e.Record.Source, &provenance, &strategy, &e.PageHash, &e.NameSimilarity, &extractedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(phones), &e.Record.Phones); err != nil {
		return nil, fmt.Errorf("failed to decode phones: %w", err)
	}
	if err := json.Unmarshal([]byte(emails), &e.Record.Emails); err != nil {
		return nil, fmt.Errorf("failed to decode emails: %w", err)
	}
	if err := json.Unmarshal([]byte(provenance), &e.Provenance); err != nil {
		return nil, fmt.Errorf("failed to decode provenance: %w", err)
	}
	e.Strategy = quemequem.Strategy(strategy)

	var err error
	e.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// encodeList encodes a string list as a JSON array, never null.
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}
