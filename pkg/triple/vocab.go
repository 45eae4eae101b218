package triple

// DefaultNamespace is the compact prefix minted identifiers live under.
const DefaultNamespace = "geoint:"

// namespacePrefixes maps well-known full namespace URIs to their compact
// prefixes. Order is fixed so canonicalization is deterministic.
var namespacePrefixes = []struct {
	URI    string
	Prefix string
}{
	{"http://example.org/geoint/", "geoint:"},
	{"http://www.w3.org/2003/01/geo/wgs84_pos#", "geo:"},
	{"http://www.w3.org/2000/01/rdf-schema#", "rdfs:"},
	{"http://www.w3.org/1999/02/22-rdf-syntax-ns#", "rdf:"},
	{"http://www.w3.org/2002/07/owl#", "owl:"},
}

// entityAliases maps curated entity names to their canonical identifiers.
// Names not listed here fall back to slugification.
var entityAliases = map[string]string{
	"Pentagon":            "geoint:pentagon",
	"Andrews AFB":         "geoint:andrews_afb",
	"Norfolk NB":          "geoint:norfolk_nb",
	"White House":         "geoint:white_house",
	"Government Building": "geoint:government_building",
	"Military Base":       "geoint:military_base",
	"USA":                 "geoint:usa",
	"Virginia":            "geoint:virginia",
	"Maryland":            "geoint:maryland",
	"Arlington":           "geoint:arlington",
	"Camp Springs":        "geoint:camp_springs",
	"Norfolk":             "geoint:norfolk",
	"Fort Meade":          "geoint:fort_meade_city",
}

// knownEntity pairs a display name with its pre-assigned identifier for
// keyword spotting. Kept as ordered slices so mention extraction emits
// statements in a reproducible order.
type knownEntity struct {
	Name string
	URI  string
}

// knownFacilities are facility names spotted by the mention extractor.
var knownFacilities = []knownEntity{
	{"Pentagon", "geoint:pentagon"},
	{"White House", "geoint:white_house"},
	{"Joint Base Andrews", "geoint:andrews_afb"},
	{"Quantico", "geoint:quantico"},
	{"DCA Airport", "geoint:dca_airport"},
	{"Dulles", "geoint:iad_airport"},
	{"BWI", "geoint:bwi_airport"},
	{"Norfolk", "geoint:norfolk_nb"},
	{"Fort Belvoir", "geoint:fort_belvoir"},
	{"Capitol", "geoint:capitol_building"},
}

// knownLocations are place names spotted by the mention extractor.
var knownLocations = []knownEntity{
	{"Washington DC", "geoint:washington_dc"},
	{"Virginia", "geoint:virginia"},
	{"Maryland", "geoint:maryland"},
	{"Arlington", "geoint:arlington"},
}

// expectedTableHeaders is the vocabulary that identifies a header row in
// tabular tool output.
var expectedTableHeaders = []string{"subject", "predicate", "object", "facility", "name", "type"}
