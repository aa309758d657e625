package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Brownie44l1/obesity-api/internal/model"
)

// Record is one historical row, with categorical values already translated
// to their display form.
type Record struct {
	Gender        string
	Age           float64
	Height        float64
	Weight        float64
	FamilyHistory string
	Vegetables    float64
	Meals         float64
	Water         float64
	Activity      float64
	ScreenTime    float64
	Transport     string
	Diagnosis     string
}

func (r Record) BMI() float64 {
	return model.BMI(r.Weight, r.Height)
}

type Dataset struct {
	records []Record
}

type column int

const (
	colGender column = iota
	colAge
	colHeight
	colWeight
	colFamilyHistory
	colVegetables
	colMeals
	colWater
	colActivity
	colScreenTime
	colTransport
	colDiagnosis
)

// headers accepts both the raw dataset names and their translated names.
var headers = map[string]column{
	"Gender":                         colGender,
	"Genero":                         colGender,
	"Age":                            colAge,
	"Idade":                          colAge,
	"Height":                         colHeight,
	"Altura":                         colHeight,
	"Weight":                         colWeight,
	"Peso":                           colWeight,
	"family_history_with_overweight": colFamilyHistory,
	"Hist_Familiar":                  colFamilyHistory,
	"FCVC":                           colVegetables,
	"Consumo_Vegetais":               colVegetables,
	"NCP":                            colMeals,
	"Refeicoes_Diarias":              colMeals,
	"CH2O":                           colWater,
	"Ingestao_Agua":                  colWater,
	"FAF":                            colActivity,
	"Atividade_Fisica":               colActivity,
	"TUE":                            colScreenTime,
	"Tempo_Telas":                    colScreenTime,
	"MTRANS":                         colTransport,
	"Transporte":                     colTransport,
	"NObeyesdad":                     colDiagnosis,
	"Diagnostico":                    colDiagnosis,
}

var required = []column{colAge, colHeight, colWeight, colDiagnosis}

// Load reads the dataset CSV at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ds, nil
}

func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, err
	}

	positions := make(map[column]int)
	for i, name := range header {
		if col, ok := headers[strings.TrimSpace(name)]; ok {
			positions[col] = i
		}
	}
	for _, col := range required {
		if _, ok := positions[col]; !ok {
			return nil, fmt.Errorf("missing required column for %s", columnName(col))
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}
		rec, err := parseRow(row, positions)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return &Dataset{records: records}, nil
}

func parseRow(row []string, positions map[column]int) (Record, error) {
	text := func(col column) string {
		idx, ok := positions[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return model.DisplayLabel(row[idx])
	}
	number := func(col column) (float64, error) {
		raw := text(col)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", columnName(col), err)
		}
		return v, nil
	}

	var rec Record
	var err error
	for _, target := range []struct {
		col column
		dst *float64
	}{
		{colAge, &rec.Age},
		{colHeight, &rec.Height},
		{colWeight, &rec.Weight},
		{colVegetables, &rec.Vegetables},
		{colMeals, &rec.Meals},
		{colWater, &rec.Water},
		{colActivity, &rec.Activity},
		{colScreenTime, &rec.ScreenTime},
	} {
		if *target.dst, err = number(target.col); err != nil {
			return Record{}, err
		}
	}
	rec.Gender = text(colGender)
	rec.FamilyHistory = text(colFamilyHistory)
	rec.Transport = text(colTransport)
	rec.Diagnosis = text(colDiagnosis)
	if rec.Diagnosis == "" {
		return Record{}, errors.New("empty diagnosis")
	}
	return rec, nil
}

var columnNames = [...]string{
	colGender:        "Gender",
	colAge:           "Age",
	colHeight:        "Height",
	colWeight:        "Weight",
	colFamilyHistory: "family_history_with_overweight",
	colVegetables:    "FCVC",
	colMeals:         "NCP",
	colWater:         "CH2O",
	colActivity:      "FAF",
	colScreenTime:    "TUE",
	colTransport:     "MTRANS",
	colDiagnosis:     "NObeyesdad",
}

func columnName(col column) string {
	return columnNames[col]
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}
