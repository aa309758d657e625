package client

import (
	"fmt"

	"github.com/Brownie44l1/obesity-api/internal/model"
)

// Recommendation is one row of the suggested intervention plan.
type Recommendation struct {
	Factor  string
	Current string
	Action  string
}

// Recommend derives the intervention plan from the submitted habits.
func Recommend(f Form) []Recommendation {
	var recs []Recommendation
	if f.Water < 2.0 {
		recs = append(recs, Recommendation{
			Factor:  "Hidratação",
			Current: fmt.Sprintf("%.1f L/dia", f.Water),
			Action:  "Aumentar a ingestão para 35ml/kg. A água é essencial para otimizar o metabolismo basal.",
		})
	}
	if f.Activity < 2.0 {
		recs = append(recs, Recommendation{
			Factor:  "Atividade Física",
			Current: "Insuficientemente Ativo",
			Action:  "Aumentar a frequência semanal. A meta mínima da OMS é de 150 min de atividade moderada.",
		})
	}
	if f.ScreenTime > 4.0 {
		recs = append(recs, Recommendation{
			Factor:  "Fadiga Digital",
			Current: fmt.Sprintf("%d h/dia", int(f.ScreenTime)),
			Action:  "Reduzir o tempo de tela contínuo para evitar comportamento sedentário e inflamação sistêmica.",
		})
	}
	if f.HighCalorieDiet {
		recs = append(recs, Recommendation{
			Factor:  "Padrão Dietético",
			Current: "Alta caloria",
			Action:  "Priorizar alimentos in natura. O consumo frequente de alta caloria desregula a saciedade.",
		})
	}
	if f.Vegetables < 2.5 {
		recs = append(recs, Recommendation{
			Factor:  "Micronutrientes",
			Current: "Baixo consumo",
			Action:  "Aumentar vegetais nas refeições principais para garantir o aporte necessário de fibras e vitaminas.",
		})
	}
	if f.Smoker {
		recs = append(recs, Recommendation{
			Factor:  "Tabagismo",
			Current: "Fumante",
			Action:  "O hábito tabágico eleva o estresse oxidativo e prejudica a recuperação metabólica.",
		})
	}
	if f.HighAlcohol() {
		recs = append(recs, Recommendation{
			Factor:  "Consumo Alcoólico",
			Current: "Elevado",
			Action:  "O álcool fornece calorias vazias e reduz a oxidação de gorduras pelo fígado.",
		})
	}
	return recs
}

// Subtitle flags a healthy BMI paired with an obesity diagnosis, where the
// habits rather than the biometrics drive the classification.
func Subtitle(d Diagnosis) string {
	if d.BMI < 25 && model.IsObesity(d.Label) {
		return fmt.Sprintf("Seu IMC (%.1f) é saudável, mas seus hábitos sinalizam tendência a ganho de peso.", d.BMI)
	}
	return "Classificação baseada em comportamento e biometria."
}
