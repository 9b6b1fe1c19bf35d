// Package fs writes contact records to JSON and CSV files.
package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/claricenunes/quemequem"
)

// ListSeparator joins list fields in CSV output.
const ListSeparator = "; "

// CSVHeader is the header row of CSV output.
var CSVHeader = []string{"name", "title", "phones", "emails", "source"}

// FormatJSON encodes rec as indented JSON without escaping HTML characters.
// Nil lists are written as empty arrays.
func FormatJSON(rec *quemequem.Record) ([]byte, error) {
	out := *rec
	if out.Phones == nil {
		out.Phones = []string{}
	}
	if out.Emails == nil {
		out.Emails = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatCSV encodes rec as a header row followed by one record row.
func FormatCSV(rec *quemequem.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	if err := w.Write([]string{
		rec.Name,
		rec.Title,
		strings.Join(rec.Phones, ListSeparator),
		strings.Join(rec.Emails, ListSeparator),
		rec.Source,
	}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// validRoleID rejects ids that would escape the output directory.
func validRoleID(roleID string) error {
	if roleID == "" || roleID == "." || roleID == ".." ||
		strings.ContainsAny(roleID, `/\`) || filepath.Base(roleID) != roleID {
		return quemequem.Errorf(quemequem.EINVALID, "invalid role id %q", roleID)
	}
	return nil
}

// recordFiles returns the file contents for a role keyed by file name.
func recordFiles(roleID string, rec *quemequem.Record) (map[string][]byte, error) {
	if err := validRoleID(roleID); err != nil {
		return nil, err
	}
	j, err := FormatJSON(rec)
	if err != nil {
		return nil, err
	}
	c, err := FormatCSV(rec)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		roleID + ".json": j,
		roleID + ".csv":  c,
	}, nil
}
