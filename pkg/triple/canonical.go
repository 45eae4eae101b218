package triple

import (
	"regexp"
	"strings"
)

var (
	reNonSlugChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	reWhitespace   = regexp.MustCompile(`\s+`)
)

// Slugify reduces a raw name to an identifier-safe local part: characters
// outside [A-Za-z0-9\s] are dropped, runs of whitespace become single
// underscores, and the result is lowercased.
func Slugify(name string) string {
	s := reNonSlugChars.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = reWhitespace.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// EntityURI returns the canonical identifier for an entity name. Curated
// aliases win; anything else is slugified under the default namespace.
// The mapping is pure and deterministic, which is what makes the same
// entity converge to one node across independently parsed payloads.
func EntityURI(name string) string {
	if uri, ok := entityAliases[name]; ok {
		return uri
	}
	return DefaultNamespace + Slugify(name)
}

// FacilityURI mints an identifier for a facility name found in a labeled
// block. Unlike EntityURI it never consults the alias table, so the same
// real-world facility can legitimately end up under two identifiers
// depending on which extractor saw it.
func FacilityURI(name string) string {
	return DefaultNamespace + Slugify(name)
}

// CleanURI normalizes an identifier that may carry surrounding quotes or a
// full namespace URI. Quotes are stripped, known namespaces are rewritten
// to their compact prefix, and anything else passes through unchanged.
func CleanURI(uri string) string {
	uri = strings.TrimSpace(uri)

	if strings.HasPrefix(uri, `"`) && strings.HasSuffix(uri, `"`) && len(uri) >= 2 {
		uri = uri[1 : len(uri)-1]
	}

	for _, ns := range namespacePrefixes {
		if strings.HasPrefix(uri, ns.URI) {
			return ns.Prefix + uri[len(ns.URI):]
		}
	}

	return uri
}
