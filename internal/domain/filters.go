package domain

// KPIFilters restringe os registros mensais retornados pelo armazenamento.
// Filtros vazios significam todos os registros. Month só é válido junto com Year.
type KPIFilters struct {
	Years []int
	Year  *int
	Month *int
}

// IsEmpty indica se nenhum filtro foi informado
func (f KPIFilters) IsEmpty() bool {
	return len(f.Years) == 0 && f.Year == nil && f.Month == nil
}
