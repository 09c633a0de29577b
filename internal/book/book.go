// Package book turns raw OpenLibrary payloads into stable book records.
//
// Everything here is pure: the same payload always yields the same record,
// and no record shares memory with the payload it came from. Missing or
// oddly shaped optional fields degrade to documented defaults instead of
// failing.
package book

// Defaults substituted for missing upstream fields.
const (
	UntitledTitle      = "Untitled"
	UnknownPublished   = "Unknown"
	SubjectPlaceholder = "Subject"

	// MaxSubjects caps the subjects kept on a BookDetail.
	MaxSubjects = 5
)

// SearchResultItem is one row of a search result list.
type SearchResultItem struct {
	// ID is the work key without its "/works/" prefix, e.g. "OL1W".
	ID string `json:"id" yaml:"id"`

	Title string `json:"title" yaml:"title"`

	// AuthorNames is empty, never nil, when the upstream lists no authors.
	AuthorNames []string `json:"authorNames" yaml:"authorNames"`

	// FirstPublishYear is nil when unknown.
	FirstPublishYear *int `json:"firstPublishYear" yaml:"firstPublishYear"`

	// CoverImageID is nil when the work has no cover.
	CoverImageID *int `json:"coverImageId" yaml:"coverImageId"`
}

// BookDetail is the full record for a single work.
type BookDetail struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	AuthorNames []string `json:"authorNames" yaml:"authorNames"`

	// FirstPublished is free text as the catalog stores it ("1965", "June 1965").
	FirstPublished string `json:"firstPublished" yaml:"firstPublished"`

	CoverImageID *int     `json:"coverImageId" yaml:"coverImageId"`
	Subjects     []string `json:"subjects" yaml:"subjects"`
}

// HasCover reports whether the item carries a cover id.
func (i SearchResultItem) HasCover() bool {
	return i.CoverImageID != nil
}

// HasCover reports whether the detail carries a cover id.
func (d BookDetail) HasCover() bool {
	return d.CoverImageID != nil
}
