package xhttp

import "strings"

const ContentType = "Content-Type"

const (
	ApplicationJSON = "application/json"
	TextCSV         = "text/csv"
)

// IsJSONContentType reports whether a Content-Type header value declares a
// JSON body, ignoring parameters such as charset.
func IsJSONContentType(v string) bool {
	if mt, _, found := strings.Cut(v, ";"); found {
		v = mt
	}
	return strings.ToLower(strings.TrimSpace(v)) == ApplicationJSON
}
