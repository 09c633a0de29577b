package book

import (
	"github.com/lepinkainen/bookexplorer/internal/openlibrary"
)

// NormalizeSearchEntry converts one raw search document.
func NormalizeSearchEntry(raw openlibrary.RawSearchEntry) SearchResultItem {
	return SearchResultItem{
		ID:               openlibrary.WorkID(raw.Key),
		Title:            raw.Title,
		AuthorNames:      copyStrings(raw.AuthorName),
		FirstPublishYear: copyInt(raw.FirstPublishYear),
		CoverImageID:     copyInt(raw.CoverI),
	}
}

// NormalizeSearchResponse converts raw search documents, keeping their order.
func NormalizeSearchResponse(entries []openlibrary.RawSearchEntry) []SearchResultItem {
	items := make([]SearchResultItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, NormalizeSearchEntry(entry))
	}
	return items
}

// NormalizeWorkDetail assembles a BookDetail from the work payload and the
// single-edition payload fetched alongside it. Either payload may be nil.
func NormalizeWorkDetail(id string, work *openlibrary.RawWork, editions *openlibrary.RawEditions) BookDetail {
	if work == nil {
		work = &openlibrary.RawWork{}
	}

	title := work.Title
	if title == "" {
		title = UntitledTitle
	}

	firstPublished := work.FirstPublishDate
	if firstPublished == "" {
		firstPublished = UnknownPublished
	}

	return BookDetail{
		ID:             id,
		Title:          title,
		Description:    extractDescription(work.Description),
		AuthorNames:    extractAuthorNames(work.Authors),
		FirstPublished: firstPublished,
		CoverImageID:   resolveCover(work, editions),
		Subjects:       extractSubjects(work.Subjects),
	}
}

// extractDescription handles the various forms description can take.
func extractDescription(desc any) string {
	switch v := desc.(type) {
	case string:
		return v
	case map[string]any:
		if val, ok := v["value"].(string); ok {
			return val
		}
	}
	return ""
}

// extractAuthorNames prefers an inline name and falls back to the id part
// of the author reference. Entries carrying neither are dropped.
func extractAuthorNames(authors []openlibrary.RawAuthorRef) []string {
	names := make([]string, 0, len(authors))
	for _, author := range authors {
		switch {
		case author.Name != "":
			names = append(names, author.Name)
		case author.Author != nil && author.Author.Key != "":
			names = append(names, openlibrary.AuthorID(author.Author.Key))
		}
	}
	return names
}

// extractSubjects keeps the first MaxSubjects entries and flattens each to a string.
func extractSubjects(subjects []any) []string {
	if len(subjects) > MaxSubjects {
		subjects = subjects[:MaxSubjects]
	}
	result := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		result = append(result, subjectName(subject))
	}
	return result
}

func subjectName(subject any) string {
	switch v := subject.(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok && name != "" {
			return name
		}
	}
	return SubjectPlaceholder
}

// resolveCover picks the first usable cover: the first edition's first
// cover, then the work's own first cover. Ids <= 0 are OpenLibrary's
// "no image" markers and are skipped.
func resolveCover(work *openlibrary.RawWork, editions *openlibrary.RawEditions) *int {
	if editions != nil && len(editions.Entries) > 0 {
		if covers := editions.Entries[0].Covers; len(covers) > 0 && covers[0] > 0 {
			id := covers[0]
			return &id
		}
	}
	if len(work.Covers) > 0 && work.Covers[0] > 0 {
		id := work.Covers[0]
		return &id
	}
	return nil
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyInt(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
