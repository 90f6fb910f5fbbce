package analytics

import "errors"

var (
	ErrMissingDateRange = errors.New("é necessário informar as datas de início e fim")
	ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidLimit     = errors.New("limite inválido")
	ErrInvalidMinSales  = errors.New("valor mínimo de vendas não pode ser negativo")
)
