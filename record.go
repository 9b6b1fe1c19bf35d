package quemequem

import (
	"context"
	"slices"
)

// Record is the contact record of a role holder.
// Phones and Emails never hold duplicates and keep first-discovered order.
type Record struct {
	Name   string   `json:"name" yaml:"name"`
	Title  string   `json:"title" yaml:"title"`
	Phones []string `json:"phones" yaml:"phones"`
	Emails []string `json:"emails" yaml:"emails"`
	Source string   `json:"source" yaml:"source"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return &Record{}
	}
	return &Record{
		Name:   r.Name,
		Title:  r.Title,
		Phones: slices.Clone(r.Phones),
		Emails: slices.Clone(r.Emails),
		Source: r.Source,
	}
}

// Origin tells where a resolved field value came from.
type Origin string

// Origin constants.
const (
	OriginPage    Origin = "page"
	OriginDefault Origin = "default"
)

// Provenance records the origin of every field of a resolved record.
type Provenance struct {
	Name   Origin `json:"name"`
	Title  Origin `json:"title"`
	Phones Origin `json:"phones"`
	Emails Origin `json:"emails"`
}

// DefaultProvenance is the provenance of a record taken entirely from defaults.
func DefaultProvenance() Provenance {
	return Provenance{
		Name:   OriginDefault,
		Title:  OriginDefault,
		Phones: OriginDefault,
		Emails: OriginDefault,
	}
}

// Defaulted reports whether no field came from the page.
func (p Provenance) Defaulted() bool {
	return p.Name != OriginPage && p.Title != OriginPage &&
		p.Phones != OriginPage && p.Emails != OriginPage
}

// RecordWriter writes a role's record to a destination.
type RecordWriter interface {
	WriteRecord(ctx context.Context, roleID string, rec *Record) error
}

// RecordStore is a RecordWriter whose writes become visible only after Commit.
type RecordStore interface {
	RecordWriter

	// Commit publishes all records written so far.
	Commit() error

	// Abort discards all records written so far.
	Abort() error
}
