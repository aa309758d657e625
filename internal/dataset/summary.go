package dataset

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Brownie44l1/obesity-api/internal/model"
)

type LabelCount struct {
	Label string `json:"diagnostico"`
	Count int    `json:"total"`
}

// HabitMeans are the per-diagnosis averages behind the habits radar.
type HabitMeans struct {
	Vegetables float64 `json:"vegetais"`
	Meals      float64 `json:"refeicoes"`
	Water      float64 `json:"agua"`
	Activity   float64 `json:"exercicio"`
}

type Summary struct {
	Diagnosis     string                    `json:"filtro,omitempty"`
	Total         int                       `json:"total"`
	MeanAge       float64                   `json:"idade_media"`
	MeanBMI       float64                   `json:"imc_medio"`
	ObesityRate   float64                   `json:"taxa_obesidade"`
	Distribution  []LabelCount              `json:"distribuicao"`
	FamilyHistory map[string]map[string]int `json:"historico_familiar"`
	Transport     map[string]map[string]int `json:"transporte"`
	Habits        map[string]HabitMeans     `json:"habitos"`
}

// Summarize aggregates the records whose diagnosis equals filter, or all
// records when filter is empty.
func (d *Dataset) Summarize(filter string) Summary {
	summary := Summary{
		Diagnosis:     filter,
		FamilyHistory: make(map[string]map[string]int),
		Transport:     make(map[string]map[string]int),
		Habits:        make(map[string]HabitMeans),
	}

	counts := make(map[string]int)
	habitSums := make(map[string]HabitMeans)
	var ageSum, bmiSum float64
	var obese int

	for _, rec := range d.records {
		if filter != "" && rec.Diagnosis != filter {
			continue
		}
		summary.Total++
		ageSum += rec.Age
		bmiSum += rec.BMI()
		if model.IsObesity(rec.Diagnosis) {
			obese++
		}
		counts[rec.Diagnosis]++

		if rec.FamilyHistory != "" {
			increment(summary.FamilyHistory, rec.Diagnosis, rec.FamilyHistory)
		}
		if rec.Transport != "" {
			increment(summary.Transport, rec.Transport, rec.Diagnosis)
		}

		h := habitSums[rec.Diagnosis]
		h.Vegetables += rec.Vegetables
		h.Meals += rec.Meals
		h.Water += rec.Water
		h.Activity += rec.Activity
		habitSums[rec.Diagnosis] = h
	}

	if summary.Total == 0 {
		return summary
	}
	n := float64(summary.Total)
	summary.MeanAge = ageSum / n
	summary.MeanBMI = bmiSum / n
	summary.ObesityRate = float64(obese) / n * 100

	summary.Distribution = orderedCounts(counts)
	for label, h := range habitSums {
		c := float64(counts[label])
		summary.Habits[label] = HabitMeans{
			Vegetables: h.Vegetables / c,
			Meals:      h.Meals / c,
			Water:      h.Water / c,
			Activity:   h.Activity / c,
		}
	}
	return summary
}

func increment(table map[string]map[string]int, row, col string) {
	if table[row] == nil {
		table[row] = make(map[string]int)
	}
	table[row][col]++
}

// orderedCounts lists the known classes in ordinal order, followed by any
// unrecognized labels sorted by name.
func orderedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for _, label := range model.Labels {
		if c, ok := counts[label]; ok {
			out = append(out, LabelCount{Label: label, Count: c})
		}
	}
	var extra []string
	for label := range counts {
		if _, known := model.LabelIndex(label); !known {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	for _, label := range extra {
		out = append(out, LabelCount{Label: label, Count: counts[label]})
	}
	return out
}

// UnknownDiagnosisError reports a summary filter that matches no class.
type UnknownDiagnosisError struct {
	Diagnosis string
}

func (e *UnknownDiagnosisError) Error() string {
	return fmt.Sprintf("unknown diagnosis %q", e.Diagnosis)
}

// Summarizer memoizes summaries of an immutable dataset.
type Summarizer struct {
	data  *Dataset
	cache *lru.Cache[string, Summary]
}

func NewSummarizer(data *Dataset, size int) (*Summarizer, error) {
	if size <= 0 {
		size = model.NumClasses + 1
	}
	cache, err := lru.New[string, Summary](size)
	if err != nil {
		return nil, err
	}
	return &Summarizer{data: data, cache: cache}, nil
}

// Summary accepts a display label or a raw dataset spelling as filter.
func (s *Summarizer) Summary(filter string) (Summary, error) {
	if filter != "" {
		filter = model.DisplayLabel(filter)
		if _, ok := model.LabelIndex(filter); !ok {
			return Summary{}, &UnknownDiagnosisError{Diagnosis: filter}
		}
	}
	if cached, ok := s.cache.Get(filter); ok {
		return cached, nil
	}
	summary := s.data.Summarize(filter)
	s.cache.Add(filter, summary)
	return summary, nil
}

func (s *Summarizer) Len() int {
	return s.data.Len()
}
