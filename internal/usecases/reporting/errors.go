package reporting

import "errors"

var (
	ErrInvalidFilters = errors.New("filtros inválidos")
)
