package client

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Brownie44l1/obesity-api/internal/model"
)

// Form mirrors the individual diagnosis form.
type Form struct {
	Gender            string
	Age               float64
	FamilyHistory     bool
	Height            float64
	Weight            float64
	HighCalorieDiet   bool
	Vegetables        float64
	Meals             float64
	Snacking          string
	Water             float64
	Alcohol           string
	CalorieMonitoring bool
	Smoker            bool
	Transport         string
	Activity          float64
	ScreenTime        float64
}

// frequencies maps folded option labels to the ordinal scale used in training.
var frequencies = map[string]float64{
	"nao":        0,
	"nao bebo":   0,
	"no":         0,
	"as vezes":   1,
	"sometimes":  1,
	"freq.":      2,
	"frequente":  2,
	"frequently": 2,
	"sempre":     3,
	"always":     3,
}

var transports = map[string]string{
	"transp. publico":       model.FeatureTransportPublic,
	"transporte publico":    model.FeatureTransportPublic,
	"public_transportation": model.FeatureTransportPublic,
	"caminhada":             model.FeatureTransportWalking,
	"walking":               model.FeatureTransportWalking,
	"bicicleta":             model.FeatureTransportBike,
	"bike":                  model.FeatureTransportBike,
	"moto":                  model.FeatureTransportMoto,
	"motorbike":             model.FeatureTransportMoto,
}

// fold lowercases and strips accents so "Às vezes" and "as vezes" match.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func frequency(option string, fallback float64) float64 {
	if v, ok := frequencies[fold(option)]; ok {
		return v
	}
	return fallback
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Encode builds the feature record sent to the service. Derived columns
// (IMC, Score_Atletico, Possivel_Atleta) are left to the service.
// Unrecognized snacking answers count as "sometimes", unrecognized alcohol
// answers as "never", and any transport outside the one-hot set (car) leaves
// all transport flags at zero.
func (f Form) Encode() model.FeatureRecord {
	record := model.FeatureRecord{
		model.FeatureGender:            flag(isMale(f.Gender)),
		model.FeatureAge:               f.Age,
		model.FeatureHeight:            f.Height,
		model.FeatureWeight:            f.Weight,
		model.FeatureFamilyHistory:     flag(f.FamilyHistory),
		model.FeatureHighCalorie:       flag(f.HighCalorieDiet),
		model.FeatureVegetables:        f.Vegetables,
		model.FeatureMeals:             f.Meals,
		model.FeatureSnacking:          frequency(f.Snacking, 1),
		model.FeatureSmoker:            flag(f.Smoker),
		model.FeatureWater:             f.Water,
		model.FeatureCalorieMonitoring: flag(f.CalorieMonitoring),
		model.FeatureActivity:          f.Activity,
		model.FeatureScreenTime:        f.ScreenTime,
		model.FeatureAlcohol:           frequency(f.Alcohol, 0),
		model.FeatureTransportBike:     0,
		model.FeatureTransportMoto:     0,
		model.FeatureTransportPublic:   0,
		model.FeatureTransportWalking:  0,
	}
	if feature, ok := transports[fold(f.Transport)]; ok {
		record[feature] = 1
	}
	return record
}

func isMale(gender string) bool {
	switch fold(gender) {
	case "masculino", "male", "m":
		return true
	}
	return false
}

// HighAlcohol reports whether the alcohol answer is "frequent" or "always".
func (f Form) HighAlcohol() bool {
	return frequency(f.Alcohol, 0) >= 2
}
