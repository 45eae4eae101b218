package store

import "strconv"

// Facility is one seeded GEOINT facility record.
type Facility struct {
	ID    string
	Name  string
	Type  string
	Lat   float64
	Lon   float64
	State string
	City  string
}

var seedFacilities = []Facility{
	{ID: "pentagon", Name: "The Pentagon", Type: "Government Building", Lat: 38.8719, Lon: -77.0563, State: "Virginia", City: "Arlington"},
	{ID: "white_house", Name: "White House", Type: "Government Building", Lat: 38.8977, Lon: -77.0365, State: "Washington DC", City: "Washington"},
	{ID: "andrews_afb", Name: "Joint Base Andrews", Type: "Military Base", Lat: 38.7681, Lon: -76.8690, State: "Maryland", City: "Andrews"},
	{ID: "quantico", Name: "Marine Corps Base Quantico", Type: "Military Base", Lat: 38.5221, Lon: -77.3411, State: "Virginia", City: "Quantico"},
	{ID: "dca_airport", Name: "Ronald Reagan Washington National Airport", Type: "Airport", Lat: 38.8512, Lon: -77.0402, State: "Virginia", City: "Arlington"},
	{ID: "iad_airport", Name: "Washington Dulles International Airport", Type: "Airport", Lat: 38.9531, Lon: -77.4565, State: "Virginia", City: "Dulles"},
	{ID: "bwi_airport", Name: "Baltimore/Washington International Airport", Type: "Airport", Lat: 39.1774, Lon: -76.6684, State: "Maryland", City: "Baltimore"},
	{ID: "norfolk_nb", Name: "Naval Station Norfolk", Type: "Military Base", Lat: 36.9467, Lon: -76.2929, State: "Virginia", City: "Norfolk"},
	{ID: "fort_belvoir", Name: "Fort Belvoir", Type: "Military Base", Lat: 38.7034, Lon: -77.1364, State: "Virginia", City: "Fort Belvoir"},
	{ID: "capitol_building", Name: "United States Capitol", Type: "Government Building", Lat: 38.8899, Lon: -77.0091, State: "Washington DC", City: "Washington"},
}

// LoadSampleData seeds the store with the Washington-area GEOINT
// facility set: eight triples per facility.
func (s *TripleStore) LoadSampleData() int {
	for _, f := range seedFacilities {
		uri := GeointNS + f.ID

		s.Add(uri, RDFType, GeointNS+"Facility")
		s.Add(uri, RDFSLabel, f.Name)
		s.Add(uri, GeointNS+"facilityType", f.Type)
		s.Add(uri, GeointNS+"state", f.State)
		s.Add(uri, GeointNS+"city", f.City)
		s.Add(uri, GeoNS+"lat", formatCoord(f.Lat))
		s.Add(uri, GeoNS+"long", formatCoord(f.Lon))
		s.Add(uri, GeointNS+"facilityId", f.ID)
	}
	return len(seedFacilities)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
