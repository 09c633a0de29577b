package openlibrary

// RawSearchResponse is the body of /search.json.
type RawSearchResponse struct {
	NumFound int              `json:"numFound"`
	Docs     []RawSearchEntry `json:"docs"`
}

// RawSearchEntry is one document in a search response, limited to the
// fields requested by Search.
type RawSearchEntry struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverI           *int     `json:"cover_i"`
}

// RawWork is the body of /works/<id>.json.
//
// Description is either a plain string or an object of the form
// {"type": "/type/text", "value": "..."}. Subjects entries are either
// strings or objects carrying a "name". Both are left undecoded here and
// resolved by the book package.
type RawWork struct {
	Key              string         `json:"key"`
	Title            string         `json:"title"`
	Description      any            `json:"description"`
	Authors          []RawAuthorRef `json:"authors"`
	FirstPublishDate string         `json:"first_publish_date"`
	Covers           []int          `json:"covers"`
	Subjects         []any          `json:"subjects"`
}

// RawAuthorRef is an entry of a work's author list. Works usually carry
// only a reference ({"author": {"key": "/authors/OL1A"}}), some carry a name.
type RawAuthorRef struct {
	Name   string  `json:"name"`
	Author *RawKey `json:"author"`
}

// RawKey is an OpenLibrary key reference.
type RawKey struct {
	Key string `json:"key"`
}

// RawEditions is the body of /works/<id>/editions.json.
type RawEditions struct {
	Size    int          `json:"size"`
	Entries []RawEdition `json:"entries"`
}

// RawEdition is one edition of a work; only the cover list is used.
type RawEdition struct {
	Key    string `json:"key"`
	Covers []int  `json:"covers"`
}
