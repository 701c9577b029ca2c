package domain

import (
	"fmt"
	"strings"
)

// scaleLabels give the prompt a human description of each severity level.
var scaleLabels = map[Scale]string{
	ScaleSmall:  "a single bag of waste",
	ScaleMedium: "a medium pile of waste, roughly a wheelie bin's worth",
	ScaleLarge:  "a large pile of waste, around a van load",
}

// BuildNarrativePrompt constructs the generation prompt for an impact
// statement. It deterministically embeds every numeric field of the record
// plus the dumping scale and waste type, so the narrative is traceable to the
// record regardless of what the generator produces.
func BuildNarrativePrompt(rec ImpactRecord, assessment DumpingAssessment) string {
	var b strings.Builder
	b.WriteString("You are a community impact analyst helping residents understand how fly-tipping affects them personally.\n\n")
	b.WriteString("Generate a compelling, personalized one-paragraph summary (4-6 sentences) that tells a story about how this fly-tipping incident impacts the individual resident.\n\n")
	b.WriteString("INCIDENT DETAILS:\n")
	fmt.Fprintf(&b, "- Council area: %s\n", rec.CouncilInfo.Name)
	fmt.Fprintf(&b, "- Dumping scale: %d of 3 (%s)\n", assessment.Scale, scaleLabels[assessment.Scale])
	fmt.Fprintf(&b, "- Waste type: %s\n", assessment.WasteType)
	fmt.Fprintf(&b, "- Crime change in area: %.1f%%\n", rec.CrimeChange)
	fmt.Fprintf(&b, "- Deprivation index: %.1f out of 10\n", rec.DeprivationIndex)
	fmt.Fprintf(&b, "- House price impact: %.1f%%\n", rec.HousePriceImpact)
	fmt.Fprintf(&b, "- CO2 emissions: %.1f kg\n", rec.EnvironmentalImpact.CO2Emissions)
	fmt.Fprintf(&b, "- Waste volume: %.2f tonnes\n", rec.EnvironmentalImpact.WasteVolume)
	fmt.Fprintf(&b, "- Local recycling rate: %.1f%%\n", rec.EnvironmentalImpact.RecyclingRate)
	b.WriteString("\nWRITING GUIDELINES:\n")
	b.WriteString("1. Start with immediate personal impact (their property value, their safety, their environment)\n")
	b.WriteString("2. Make it feel personal and direct - use \"your\" and focus on tangible effects\n")
	b.WriteString("3. Connect the dots between this incident and their daily life\n")
	b.WriteString("4. Include a forward-looking element about community action\n")
	b.WriteString("5. Keep it conversational but impactful - avoid jargon\n")
	b.WriteString("6. DO NOT use bullet points or lists - write flowing prose\n")
	b.WriteString("7. End on a note that empowers action\n\n")
	b.WriteString("TONE: Concerned but constructive, factual but engaging, personal but not preachy\n\n")
	b.WriteString("Your one-paragraph summary:")
	return b.String()
}

// TemplatedStatement is the deterministic non-AI fallback used when the
// generation collaborator fails after its retry. Built from the same fields
// as the prompt so the response contract is still satisfied.
func TemplatedStatement(rec ImpactRecord, assessment DumpingAssessment) string {
	return fmt.Sprintf(
		"This %s fly-tipping incident in the %s area directly impacts your quality of life. "+
			"It contributes to a %.1f%% reduction in local property values, releases %.1f kg of CO2 into your air, "+
			"and is associated with a %.1f%% change in local crime rates in an area with a deprivation index of %.1f out of 10. "+
			"Every unreported incident makes your neighbourhood less safe and less valuable. "+
			"By reporting this, you're taking the first step toward breaking the cycle and reclaiming your community's future.",
		assessment.WasteType,
		rec.CouncilInfo.Name,
		absFloat(rec.HousePriceImpact),
		rec.EnvironmentalImpact.CO2Emissions,
		rec.CrimeChange,
		rec.DeprivationIndex,
	)
}

// BuildNarrative assembles the full narrative package around a statement.
// The remediation guidance is derived from the council entry so it stays
// consistent with the record it accompanies.
func BuildNarrative(statement string, rec ImpactRecord) ImpactNarrative {
	area := strings.TrimSuffix(rec.CouncilInfo.Name, " Council")
	return ImpactNarrative{
		Statement:        statement,
		RemediationSteps: append([]string(nil), rec.CouncilInfo.Recommendations...),
		DisposalLocations: []string{
			area + " household waste recycling centre",
			area + " bulky waste collection service",
		},
		ReportingLink: rec.CouncilInfo.ReportingURL,
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
