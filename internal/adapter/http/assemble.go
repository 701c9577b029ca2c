package http

import (
	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

// Wire shapes for the public API. Field names are part of the contract
// consumed by the frontend; change them only with a coordinated release.

type submitResponse struct {
	ReportID   string `json:"reportId"`
	Scale      int    `json:"scale"`
	WasteType  string `json:"wasteType"`
	Status     string `json:"status"`
	ImpactPath string `json:"impactPath"`
}

type impactResponse struct {
	CrimeChange         float64             `json:"crimeChange"`
	DeprivationIndex    float64             `json:"deprivationIndex"`
	HousePriceImpact    float64             `json:"housePriceImpact"`
	EnvironmentalImpact environmentalImpact `json:"environmentalImpact"`
	CouncilInfo         councilInfo         `json:"councilInfo"`
	ImpactStatement     string              `json:"impactStatement"`
	Remediation         remediation         `json:"remediation"`
}

type environmentalImpact struct {
	CO2Emissions  float64 `json:"co2Emissions"`
	WasteVolume   float64 `json:"wasteVolume"`
	RecyclingRate float64 `json:"recyclingRate"`
}

type councilInfo struct {
	Name            string   `json:"name"`
	ReportingURL    string   `json:"reportingUrl"`
	ContactNumber   string   `json:"contactNumber"`
	Recommendations []string `json:"recommendations"`
}

type remediation struct {
	Steps             []string `json:"steps"`
	DisposalLocations []string `json:"disposalLocations"`
	ReportingLink     string   `json:"reportingLink"`
}

func assembleImpact(rec domain.ImpactRecord, narrative domain.ImpactNarrative) impactResponse {
	return impactResponse{
		CrimeChange:      rec.CrimeChange,
		DeprivationIndex: rec.DeprivationIndex,
		HousePriceImpact: rec.HousePriceImpact,
		EnvironmentalImpact: environmentalImpact{
			CO2Emissions:  rec.EnvironmentalImpact.CO2Emissions,
			WasteVolume:   rec.EnvironmentalImpact.WasteVolume,
			RecyclingRate: rec.EnvironmentalImpact.RecyclingRate,
		},
		CouncilInfo: councilInfo{
			Name:            rec.CouncilInfo.Name,
			ReportingURL:    rec.CouncilInfo.ReportingURL,
			ContactNumber:   rec.CouncilInfo.ContactNumber,
			Recommendations: rec.CouncilInfo.Recommendations,
		},
		ImpactStatement: narrative.Statement,
		Remediation: remediation{
			Steps:             narrative.RemediationSteps,
			DisposalLocations: narrative.DisposalLocations,
			ReportingLink:     narrative.ReportingLink,
		},
	}
}
