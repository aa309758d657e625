package model

const (
	athleticScoreFactor = 1.5
	athleteMinActivity  = 2.0
	athleteMinBMI       = 25.0
)

// BMI returns weight (kg) over height (m) squared, or 0 without a height.
func BMI(weight, height float64) float64 {
	if height <= 0 {
		return 0
	}
	return weight / (height * height)
}

// Derive returns a copy of the record with IMC, Score_Atletico and
// Possivel_Atleta computed. The service owns these columns, so values sent
// by the caller for the two athlete fields are overwritten.
func Derive(record FeatureRecord) FeatureRecord {
	out := make(FeatureRecord, len(record)+3)
	for k, v := range record {
		out[k] = v
	}

	bmi := record[FeatureBMI]
	if bmi <= 0 {
		bmi = BMI(record[FeatureWeight], record[FeatureHeight])
	}
	out[FeatureBMI] = bmi

	activity := record[FeatureActivity]
	out[FeatureAthleticScore] = activity * athleticScoreFactor
	out[FeatureLikelyAthlete] = 0
	if activity >= athleteMinActivity && bmi >= athleteMinBMI {
		out[FeatureLikelyAthlete] = 1
	}
	return out
}
