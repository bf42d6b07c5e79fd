package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos do painel
var (
	ErrDataNotLoaded    = errors.New("dados da planilha ainda não carregados")
	ErrInvalidDateRange = errors.New("período inválido")
	ErrFetchFailed      = errors.New("falha ao carregar a planilha")
	ErrExportFailed     = errors.New("falha ao gerar a exportação")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
