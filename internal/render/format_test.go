package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookexplorer/internal/book"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"JSON": FormatJSON,
		"yaml": FormatYAML,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode_JSON(t *testing.T) {
	item := book.SearchResultItem{ID: "OL1W", Title: "Dune", AuthorNames: []string{}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, item))
	assert.JSONEq(t, `{
		"id": "OL1W",
		"title": "Dune",
		"authorNames": [],
		"firstPublishYear": null,
		"coverImageId": null
	}`, buf.String())
}

func TestEncode_YAML(t *testing.T) {
	detail := book.BookDetail{
		ID:             "OL1W",
		Title:          "Dune",
		AuthorNames:    []string{"Frank Herbert"},
		FirstPublished: "1965",
		Subjects:       []string{"Fiction"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, detail))
	out := buf.String()
	assert.Contains(t, out, "id: OL1W\n")
	assert.Contains(t, out, "title: Dune\n")
	assert.Contains(t, out, "firstPublished: \"1965\"\n")
	assert.Contains(t, out, "- Frank Herbert\n")
}

func TestEncode_TextIsRejected(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, FormatText, struct{}{}))
}
