package triple

import (
	"regexp"
	"strings"
)

var (
	reFacilityMarker = regexp.MustCompile(`📍\s*\*\*([^*]+)\*\*`)
	reBracketArrow   = regexp.MustCompile(`\[([^\]]+)\]\s*----([^-]+)-+>\s*\[([^\]]+)\]`)
	reBracketProp    = regexp.MustCompile(`\[\s*----([^-]+)-+>\s*\[([^\]]+)\]\s*`)
)

// ExtractStatements runs every pattern extractor over the text block and
// concatenates their results. The extractors are independent: a block that
// happens to match several conventions contributes statements from each.
// Malformed pieces of text never fail the block; they just yield nothing.
func ExtractStatements(text string) []Statement {
	statements := extractTable(text)
	statements = append(statements, extractFacilityBlocks(text)...)
	statements = append(statements, extractArrows(text)...)
	statements = append(statements, extractBracketArrows(text)...)
	statements = append(statements, extractEntityMentions(text)...)
	return statements
}

// extractTable parses query-result tables with | column separators. Rows
// only produce statements once a header row naming exactly subject,
// predicate and object has been seen; tables with other headers are
// deliberately ignored rather than guessed at.
func extractTable(text string) []Statement {
	var statements []Statement
	var headers []string

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") || strings.HasPrefix(strings.TrimSpace(line), "-") {
			continue
		}

		var parts []string
		for _, p := range strings.Split(line, "|") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}

		if headers == nil {
			if containsAny(parts, expectedTableHeaders) {
				headers = parts
			}
			continue
		}

		if len(parts) < 3 {
			continue
		}
		subjIdx := indexOf(headers, "subject")
		predIdx := indexOf(headers, "predicate")
		objIdx := indexOf(headers, "object")
		if subjIdx < 0 || predIdx < 0 || objIdx < 0 {
			continue
		}
		if subjIdx >= len(parts) || predIdx >= len(parts) || objIdx >= len(parts) {
			continue
		}

		subject, predicate, object := parts[subjIdx], parts[predIdx], parts[objIdx]
		if subject == "" || predicate == "" || object == "" {
			continue
		}

		statements = append(statements, Statement{
			Subject:   CleanURI(subject),
			Predicate: CleanURI(predicate),
			Object:    CleanURI(object),
		})
	}

	return statements
}

// extractFacilityBlocks parses the facility listing format:
//
//	📍 **Facility Name**
//	   Type: Military Base
//	   Location: City, State
//	   Coordinates: lat, lon
func extractFacilityBlocks(text string) []Statement {
	markers := reFacilityMarker.FindAllStringSubmatchIndex(text, -1)
	if markers == nil {
		return nil
	}

	var statements []Statement
	for i, m := range markers {
		name := strings.TrimSpace(text[m[2]:m[3]])
		bodyEnd := len(text)
		if i+1 < len(markers) {
			bodyEnd = markers[i+1][0]
		}
		body := text[m[1]:bodyEnd]

		uri := FacilityURI(name)
		statements = append(statements,
			Statement{Subject: uri, Predicate: "rdf:type", Object: "geoint:Facility"},
			Statement{Subject: uri, Predicate: "rdfs:label", Object: `"` + name + `"`},
		)

		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Type:"):
				facilityType := strings.TrimSpace(strings.TrimPrefix(line, "Type:"))
				statements = append(statements, Statement{
					Subject:   uri,
					Predicate: "geoint:facilityType",
					Object:    `"` + facilityType + `"`,
				})

			case strings.HasPrefix(line, "Location:"):
				location := strings.TrimSpace(strings.TrimPrefix(line, "Location:"))
				city, state, ok := strings.Cut(location, ",")
				if !ok {
					continue
				}
				statements = append(statements,
					Statement{Subject: uri, Predicate: "geoint:city", Object: `"` + strings.TrimSpace(city) + `"`},
					Statement{Subject: uri, Predicate: "geoint:state", Object: `"` + strings.TrimSpace(state) + `"`},
				)

			case strings.HasPrefix(line, "Coordinates:"):
				coords := strings.TrimSpace(strings.TrimPrefix(line, "Coordinates:"))
				lat, lon, ok := strings.Cut(coords, ",")
				if !ok {
					continue
				}
				statements = append(statements,
					Statement{Subject: uri, Predicate: "geo:lat", Object: strings.TrimSpace(lat)},
					Statement{Subject: uri, Predicate: "geo:long", Object: strings.TrimSpace(lon)},
				)
			}
		}
	}

	return statements
}

// extractArrows parses the direct triple notation "subject → predicate →
// object". Lines that do not split into exactly three segments are
// discarded without partial recovery.
func extractArrows(text string) []Statement {
	var statements []Statement

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "→") {
			continue
		}
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "•"))

		parts := strings.Split(line, "→")
		if len(parts) != 3 {
			continue
		}

		statements = append(statements, Statement{
			Subject:   CleanURI(strings.TrimSpace(parts[0])),
			Predicate: CleanURI(strings.TrimSpace(parts[1])),
			Object:    CleanURI(strings.TrimSpace(parts[2])),
		})
	}

	return statements
}

// extractBracketArrows parses the agent relationship notation
// "[Entity] ----predicate----> [Entity]". A second line-oriented pass
// tracks the left-hand entity of the most recent full match so that
// continuation lines of the form "[----property----> [value]" attach as
// properties of that entity. The tracked entity only changes on the next
// full match, so continuation lines between two facilities bind to the
// earlier one.
func extractBracketArrows(text string) []Statement {
	var statements []Statement

	for _, m := range reBracketArrow.FindAllStringSubmatch(text, -1) {
		subject := strings.TrimSpace(m[1])
		predicate := strings.TrimSpace(m[2])
		object := strings.TrimSpace(m[3])
		if subject == "" || predicate == "" || object == "" {
			continue
		}
		statements = append(statements, Statement{
			Subject:   EntityURI(subject),
			Predicate: DefaultNamespace + predicate,
			Object:    EntityURI(object),
		})
	}

	currentEntity := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := reBracketArrow.FindStringSubmatch(line); m != nil {
			currentEntity = strings.TrimSpace(m[1])
			continue
		}

		if currentEntity == "" {
			continue
		}
		if m := reBracketProp.FindStringSubmatch(line); m != nil {
			statements = append(statements, Statement{
				Subject:   EntityURI(currentEntity),
				Predicate: DefaultNamespace + strings.TrimSpace(m[1]),
				Object:    `"` + strings.TrimSpace(m[2]) + `"`,
			})
		}
	}

	return statements
}

// extractEntityMentions spots known facility and location names anywhere in
// the text, case-insensitively, and registers type and label statements for
// each one found. Pure keyword matching; context is not considered.
func extractEntityMentions(text string) []Statement {
	var statements []Statement
	lower := strings.ToLower(text)

	for _, f := range knownFacilities {
		if !strings.Contains(lower, strings.ToLower(f.Name)) {
			continue
		}
		statements = append(statements,
			Statement{Subject: f.URI, Predicate: "rdf:type", Object: "geoint:Facility"},
			Statement{Subject: f.URI, Predicate: "rdfs:label", Object: `"` + f.Name + `"`},
		)
	}

	for _, l := range knownLocations {
		if !strings.Contains(lower, strings.ToLower(l.Name)) {
			continue
		}
		statements = append(statements,
			Statement{Subject: l.URI, Predicate: "rdf:type", Object: "geoint:Location"},
			Statement{Subject: l.URI, Predicate: "rdfs:label", Object: `"` + l.Name + `"`},
		)
	}

	return statements
}

func containsAny(parts []string, candidates []string) bool {
	for _, c := range candidates {
		for _, p := range parts {
			if p == c {
				return true
			}
		}
	}
	return false
}

func indexOf(parts []string, want string) int {
	for i, p := range parts {
		if p == want {
			return i
		}
	}
	return -1
}
