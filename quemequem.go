// Package quemequem extracts structured contact records for role holders
// (ministers, secretaries) from Brazilian government "quem é quem" pages.
// A single configurable pipeline locates the block of text describing the
// role holder, extracts name, title, phones and emails from it, and falls
// back to known data for any field it cannot find.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package quemequem
