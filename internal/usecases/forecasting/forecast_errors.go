package forecasting

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable indica falha do provedor de dados
	ErrDataUnavailable = errors.New("dados de vendas indisponíveis")
	// ErrNoHistory indica que o provedor não retornou nenhum mês
	ErrNoHistory = errors.New("nenhum histórico mensal encontrado")
	// ErrSingularFit indica que as equações normais da regressão não têm solução única
	ErrSingularFit = errors.New("ajuste de regressão singular")
	// ErrInvalidTargetField indica um campo alvo desconhecido
	ErrInvalidTargetField = errors.New("campo alvo inválido")
)

// SeriesError carrega o motivo de uma série vazia junto com o erro original do provedor
type SeriesError struct {
	Err   error // Motivo (ErrDataUnavailable ou ErrNoHistory)
	Cause error // Erro retornado pelo provedor, quando houver
}

func (e *SeriesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

// Unwrap retorna o motivo, permitindo errors.Is com os erros sentinela
func (e *SeriesError) Unwrap() error {
	return e.Err
}

// IsDataUnavailable verifica se a série ficou vazia por falha do provedor
func IsDataUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}
