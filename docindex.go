// Package docindex extracts indexable text records from rendered HTML
// documentation pages. Each page yields one whole-page record plus one
// record per identified section, each carrying a priority for the search
// index that consumes them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, yaml/, slog/).
package docindex
