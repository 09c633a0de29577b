package openlibrary

import "strings"

const (
	workKeyPrefix   = "/works/"
	authorKeyPrefix = "/authors/"
)

// WorkID strips the "/works/" prefix from an upstream work key.
func WorkID(key string) string {
	return strings.TrimPrefix(key, workKeyPrefix)
}

// WorkKey re-prepends the "/works/" prefix to an internal id.
func WorkKey(id string) string {
	return workKeyPrefix + id
}

// AuthorID strips the "/authors/" prefix from an upstream author key.
func AuthorID(key string) string {
	return strings.TrimPrefix(key, authorKeyPrefix)
}
