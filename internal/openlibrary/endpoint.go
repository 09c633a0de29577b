package openlibrary

import (
	"net/http"
	"strings"
)

// EndpointLabel classifies a request to the catalog by the operation it
// performs, for metrics. The catalog may sit below a path prefix, e.g. a
// proxy at https://proxy/ol. Unknown paths are reported as "other".
func EndpointLabel(req *http.Request) string {
	if req == nil || req.URL == nil {
		return "other"
	}
	path := req.URL.Path
	switch {
	case strings.HasSuffix(path, "/search.json"):
		return OpSearch
	case strings.Contains(path, workKeyPrefix) && strings.HasSuffix(path, "/editions.json"):
		return OpEditions
	case strings.Contains(path, workKeyPrefix) && strings.HasSuffix(path, ".json"):
		return OpWork
	}
	return "other"
}
