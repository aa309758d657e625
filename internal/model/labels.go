package model

import (
	"fmt"
	"strings"
)

const (
	NumClasses = 7
	// RiskStartIndex is the first class counted as weight-gain risk (Sobrepeso G. I).
	RiskStartIndex = 2
	// ObesityStartIndex is the first obesity grade (Obesidade G. I).
	ObesityStartIndex = 4
)

// Labels holds the display label of each class index, in ordinal order.
var Labels = [NumClasses]string{
	"Abaixo do Peso",
	"Peso Normal",
	"Sobrepeso G. I",
	"Sobrepeso G. II",
	"Obesidade G. I",
	"Obesidade G. II",
	"Obesidade G. III",
}

// rawLabels maps dataset and training spellings to display labels.
// Several spellings share a display label, so the mapping is not invertible.
var rawLabels = map[string]string{
	"Insufficient_Weight":   "Abaixo do Peso",
	"Normal_Weight":         "Peso Normal",
	"Overweight_Level_I":    "Sobrepeso G. I",
	"Overweight_Level_II":   "Sobrepeso G. II",
	"Obesity_Type_I":        "Obesidade G. I",
	"Obesity_Type_II":       "Obesidade G. II",
	"Obesity_Type_III":      "Obesidade G. III",
	"Underweight":           "Abaixo do Peso",
	"Normal":                "Peso Normal",
	"yes":                   "Sim",
	"no":                    "Não",
	"Public_Transportation": "Transp. Público",
	"Walking":               "Caminhada",
	"Automobile":            "Automóvel",
	"Motorbike":             "Moto",
	"Bike":                  "Bicicleta",
	"Male":                  "Masculino",
	"Female":                "Feminino",
}

// LabelFor returns the display label of a class index. Indices outside the
// enumeration get a generic "Classe N" label instead of failing.
func LabelFor(index int) string {
	if index < 0 || index >= NumClasses {
		return fmt.Sprintf("Classe %d", index)
	}
	return Labels[index]
}

// LabelIndex returns the class index of a display label.
func LabelIndex(label string) (int, bool) {
	for i, l := range Labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}

// DisplayLabel translates a raw value into its display form. Unknown values
// are returned trimmed but otherwise unchanged.
func DisplayLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if display, ok := rawLabels[raw]; ok {
		return display
	}
	return raw
}

// IsObesity reports whether a display label is one of the obesity grades.
func IsObesity(label string) bool {
	idx, ok := LabelIndex(label)
	return ok && idx >= ObesityStartIndex
}
