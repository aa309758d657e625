package model

// Feature names shared by the service and its clients.
const (
	FeatureGender            = "Genero"
	FeatureAge               = "Idade"
	FeatureHeight            = "Altura"
	FeatureWeight            = "Peso"
	FeatureBMI               = "IMC"
	FeatureFamilyHistory     = "Historico_Familiar"
	FeatureHighCalorie       = "Consumo_Calorico"
	FeatureVegetables        = "Freq_Vegetais"
	FeatureMeals             = "Num_refeicoes"
	FeatureSnacking          = "Comes_Entre_Refeicoes"
	FeatureSmoker            = "Fumante"
	FeatureWater             = "Consumo_Agua"
	FeatureCalorieMonitoring = "Monitora_Calorias"
	FeatureActivity          = "Freq_Atividade_Fisica"
	FeatureScreenTime        = "Tempo_uso_dispositivos_eletronicos"
	FeatureAlcohol           = "Consumo_Alcool"
	FeatureTransportBike     = "Transporte_Bicicleta"
	FeatureTransportMoto     = "Transporte_Moto"
	FeatureTransportPublic   = "Transporte_Publico"
	FeatureTransportWalking  = "Transporte_Caminhada"
	FeatureAthleticScore     = "Score_Atletico"
	FeatureLikelyAthlete     = "Possivel_Atleta"
)

// DefaultFeatureNames is the column order of the exported classifier.
// Metadata files may override it.
var DefaultFeatureNames = []string{
	FeatureGender,
	FeatureAge,
	FeatureHeight,
	FeatureWeight,
	FeatureBMI,
	FeatureFamilyHistory,
	FeatureHighCalorie,
	FeatureVegetables,
	FeatureMeals,
	FeatureSnacking,
	FeatureSmoker,
	FeatureWater,
	FeatureCalorieMonitoring,
	FeatureActivity,
	FeatureScreenTime,
	FeatureAlcohol,
	FeatureTransportBike,
	FeatureTransportMoto,
	FeatureTransportPublic,
	FeatureTransportWalking,
	FeatureAthleticScore,
	FeatureLikelyAthlete,
}
