package domain

import (
	"sort"
	"strings"
	"unicode"
)

// LocationKey is the normalized identifier for a reported location. It is the
// cache and lookup key across all source adapters.
type LocationKey string

// NormalizeLocation converts free-text input into a LocationKey by
// uppercasing and removing all whitespace. Two textually-equivalent inputs
// ("sw1a 1aa", " SW1A  1AA ") normalize to the same key.
func NormalizeLocation(raw string) LocationKey {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return LocationKey(b.String())
}

// String returns the key as a plain string.
func (k LocationKey) String() string { return string(k) }

// postcodeAreaCounties maps UK postcode area prefixes to counties. Matching
// is longest-prefix-first so "LS" (West Yorkshire) wins over "L" (Merseyside).
var postcodeAreaCounties = map[string]string{
	"SW": "Greater London",
	"SE": "Greater London",
	"E":  "Greater London",
	"W":  "Greater London",
	"N":  "Greater London",
	"NW": "Greater London",
	"EC": "Greater London",
	"WC": "Greater London",
	"M":  "Greater Manchester",
	"B":  "West Midlands",
	"LS": "West Yorkshire",
	"L":  "Merseyside",
	"S":  "South Yorkshire",
	"NE": "Tyne and Wear",
	"BL": "Lancashire",
	"ME": "Kent",
	"CM": "Essex",
	"SO": "Hampshire",
	"GU": "Surrey",
	"WD": "Hertfordshire",
	"RG": "Berkshire",
	"HP": "Buckinghamshire",
	"OX": "Oxfordshire",
	"GL": "Gloucestershire",
	"SN": "Wiltshire",
	"BA": "Somerset",
	"EX": "Devon",
	"TR": "Cornwall",
	"BH": "Dorset",
	"BN": "East Sussex",
	"PO": "West Sussex",
	"NR": "Norfolk",
	"IP": "Suffolk",
	"CB": "Cambridgeshire",
	"LU": "Bedfordshire",
	"NN": "Northamptonshire",
	"LE": "Leicestershire",
	"NG": "Nottinghamshire",
	"DE": "Derbyshire",
	"ST": "Staffordshire",
	"SY": "Shropshire",
	"HR": "Herefordshire",
	"WR": "Worcestershire",
	"CV": "Warwickshire",
	"CH": "Cheshire",
	"CA": "Cumbria",
	"DH": "Durham",
	"YO": "North Yorkshire",
	"HU": "East Riding of Yorkshire",
	"LN": "Lincolnshire",
}

// DefaultCounty is used when a location matches no known postcode area.
const DefaultCounty = "Greater London"

// countyPrefixes holds the table keys sorted longest-first for prefix matching.
var countyPrefixes = func() []string {
	prefixes := make([]string, 0, len(postcodeAreaCounties))
	for p := range postcodeAreaCounties {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}()

// CountyFor resolves the county for a location key via its postcode area
// prefix, falling back to DefaultCounty.
func CountyFor(key LocationKey) string {
	s := key.String()
	for _, prefix := range countyPrefixes {
		if strings.HasPrefix(s, prefix) {
			return postcodeAreaCounties[prefix]
		}
	}
	return DefaultCounty
}

// CouncilSlug turns a council or county name into the hostname slug used for
// .gov.uk fallback URLs, e.g. "Greater London" -> "greaterlondon".
func CouncilSlug(name string) string {
	s := strings.ToLower(name)
	s = strings.TrimSuffix(s, " council")
	return strings.ReplaceAll(s, " ", "")
}
