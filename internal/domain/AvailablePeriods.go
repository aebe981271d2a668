package domain

// Period identifica um mês de dados
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// AvailablePeriods representa os períodos mensais disponíveis no banco
type AvailablePeriods struct {
	Periods []Period `json:"periods"` // Ordenados por ano e mês
	Years   []int    `json:"years"`   // Lista de anos únicos disponíveis
	Months  []int    `json:"months"`  // Lista de meses únicos disponíveis
}
