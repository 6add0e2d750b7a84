// Package messages holds the localized message catalog behind the response
// envelope. Every API response carries one of these keys; the translator
// resolves the key to a stable id, localized text and HTTP status.
package messages

import (
	"fmt"
	"strings"
)

// Catalog is the merged message table. Keys are unique across the source
// maps; Validate reports collisions.
var Catalog = mergeCatalog()

func mergeCatalog() map[string]Template {
	merged := make(map[string]Template, len(SharedMessages)+len(MovieMessages)+len(UserMessages))
	for _, src := range []map[string]Template{SharedMessages, MovieMessages, UserMessages} {
		for k, v := range src {
			merged[k] = v
		}
	}
	return merged
}

// Validate returns the keys defined in more than one source map.
func Validate() []string {
	var dups []string
	seen := map[string]bool{}
	for _, src := range []map[string]Template{SharedMessages, MovieMessages, UserMessages} {
		for k := range src {
			if seen[k] {
				dups = append(dups, k)
			}
			seen[k] = true
		}
	}
	return dups
}

// Detail is the resolved form of a message key.
type Detail struct {
	ID         string
	Message    string
	StatusCode int
}

// GetDetail resolves key for lang. An unknown language falls back to English;
// an unknown key resolves to a generic unknown-error detail with status 500.
// Context values are substituted into "{name}" placeholders; missing
// placeholders are left untouched rather than failing.
func GetDetail(key, lang string, context map[string]interface{}) Detail {
	tmpl, ok := Catalog[key]
	if !ok {
		return Detail{
			ID:         "UNKNOWN_ERROR",
			Message:    "Unknown error occurred",
			StatusCode: 500,
		}
	}

	msg, ok := tmpl.Messages[lang]
	if !ok || msg == "" {
		msg = tmpl.Messages["en"]
	}

	for name, value := range context {
		msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprint(value))
	}

	return Detail{
		ID:         tmpl.ID,
		Message:    msg,
		StatusCode: tmpl.StatusCode,
	}
}
