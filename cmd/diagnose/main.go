package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/Brownie44l1/obesity-api/internal/client"
	"github.com/Brownie44l1/obesity-api/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var form client.Form
	flag.StringVar(&form.Gender, "genero", "Feminino", "Feminino or Masculino")
	flag.Float64Var(&form.Age, "idade", 25, "age in years")
	flag.BoolVar(&form.FamilyHistory, "historico", false, "family history of overweight")
	flag.Float64Var(&form.Height, "altura", 1.70, "height in meters")
	flag.Float64Var(&form.Weight, "peso", 70, "weight in kg")
	flag.BoolVar(&form.HighCalorieDiet, "calorico", false, "frequent high-calorie food")
	flag.Float64Var(&form.Vegetables, "vegetais", 2, "vegetable frequency (1-3)")
	flag.Float64Var(&form.Meals, "refeicoes", 3, "main meals per day (1-4)")
	flag.StringVar(&form.Snacking, "lanches", "Às vezes", "eating between meals: Não, Às vezes, Freq., Sempre")
	flag.Float64Var(&form.Water, "agua", 2, "water in liters per day")
	flag.StringVar(&form.Alcohol, "alcool", "Não bebo", "alcohol: Não bebo, Às vezes, Freq., Sempre")
	flag.BoolVar(&form.CalorieMonitoring, "monitora", false, "monitors calories")
	flag.BoolVar(&form.Smoker, "fumante", false, "smoker")
	flag.StringVar(&form.Transport, "transporte", "Transp. Público", "Automóvel, Transp. Público, Caminhada, Moto, Bicicleta")
	flag.Float64Var(&form.Activity, "atividade", 1, "physical activity frequency (0-3)")
	flag.Float64Var(&form.ScreenTime, "telas", 2, "screen hours per day")
	url := flag.String("url", cfg.PredictURL, "prediction service base URL")
	flag.Parse()

	c := client.New(*url, cfg.Timeout)
	d, err := c.Predict(context.Background(), form.Encode())
	if err != nil {
		var unavailable *client.UpstreamUnavailableError
		var svcErr *client.ServiceError
		switch {
		case errors.As(err, &unavailable):
			fmt.Fprintf(os.Stderr, "Falha de conexão com a API em %s. Verifique se o serviço está rodando.\n", unavailable.URL)
		case errors.As(err, &svcErr):
			fmt.Fprintf(os.Stderr, "A API retornou um erro (%d): %s\n", svcErr.StatusCode, svcErr.Message)
		default:
			fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", d.Label)
	fmt.Println(client.Subtitle(*d))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "IMC Calculado\t%.2f\n", d.BMI)
	fmt.Fprintf(w, "Risco Acumulado\t%.1f%%\n", d.CumulativeRisk*100)
	fmt.Fprintf(w, "Confiança da IA\t%.1f%%\n", d.Confidence*100)
	if d.LikelyAthlete {
		fmt.Fprintf(w, "Perfil\tpossível atleta (IMC elevado por massa muscular)\n")
	}
	w.Flush()

	recs := client.Recommend(form)
	if len(recs) == 0 {
		fmt.Println("\nHábitos dentro dos parâmetros recomendados.")
		return
	}

	fmt.Println("\nPlano de Intervenção")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Fator\tAtual\tAção")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Factor, r.Current, r.Action)
	}
	w.Flush()
}
