package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// MovimentoFiltro restringe a listagem do histórico de movimentos.
// FilialID vazio = todas as filiais.
type MovimentoFiltro struct {
	ProdutoID string
	FilialID  string
	De        *time.Time
	Ate       *time.Time
	Limit     int
	Offset    int
}

// MovimentoTotais agrega o conjunto filtrado, calculado no banco.
type MovimentoTotais struct {
	TotalEntradas decimal.Decimal
	TotalSaidas   decimal.Decimal
	Saldo         decimal.Decimal
}

// MovimentoRepository define o porto do livro de movimentos (append-only:
// só Create e leituras; movimento nunca é alterado nem removido).
type MovimentoRepository interface {
	Create(mov *entity.MovimentoEstoque) error
	GetByID(id string) (*entity.MovimentoEstoque, error)
	// List devolve movimentos do filtro, mais recentes primeiro.
	List(filtro MovimentoFiltro) ([]*entity.MovimentoEstoque, error)
	// Totais agrega entradas/saídas/saldo do filtro via SUM no banco.
	Totais(filtro MovimentoFiltro) (*MovimentoTotais, error)
}
