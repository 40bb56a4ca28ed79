package service

const (
	MaxCompareProperties = 10  // máximo de imóveis por comparação
	MaxExtraSpots        = 500 // limite prático de vagas extras por estúdio
	MaxContractTotal     = 1_000_000.0
	MaxInstallments      = 12 // o contrato não pode passar do horizonte de 12 meses
)
