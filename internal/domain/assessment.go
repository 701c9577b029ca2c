package domain

import "strings"

// Scale is the classifier-assigned severity of a dumping incident, 1-3.
type Scale int

const (
	ScaleSmall  Scale = 1
	ScaleMedium Scale = 2
	ScaleLarge  Scale = 3
)

// Valid reports whether the scale is within the classifier's range.
func (s Scale) Valid() bool { return s >= ScaleSmall && s <= ScaleLarge }

// WasteType categorizes the dominant waste visible in a report image.
type WasteType string

const (
	WasteHousehold    WasteType = "household"
	WasteConstruction WasteType = "construction"
	WasteHazardous    WasteType = "hazardous"
	WasteGarden       WasteType = "garden"
	WasteElectrical   WasteType = "electrical"
	WasteFurniture    WasteType = "furniture"
	WasteUnknown      WasteType = "unknown"
)

var knownWasteTypes = []WasteType{
	WasteHousehold, WasteConstruction, WasteHazardous,
	WasteGarden, WasteElectrical, WasteFurniture,
}

// ParseWasteType maps free text onto a known waste type, defaulting to
// WasteUnknown. Classifier responses occasionally include surrounding text,
// so a substring match is accepted.
func ParseWasteType(s string) WasteType {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, wt := range knownWasteTypes {
		if s == string(wt) {
			return wt
		}
	}
	for _, wt := range knownWasteTypes {
		if strings.Contains(s, string(wt)) {
			return wt
		}
	}
	return WasteUnknown
}

// DumpingAssessment is the classifier's verdict for a report. Scale is
// required; WasteType defaults to unknown. Immutable once received.
type DumpingAssessment struct {
	Scale     Scale
	WasteType WasteType
}

// NewAssessment builds an assessment, normalizing an empty waste type.
func NewAssessment(scale Scale, wasteType WasteType) DumpingAssessment {
	if wasteType == "" {
		wasteType = WasteUnknown
	}
	return DumpingAssessment{Scale: scale, WasteType: wasteType}
}
