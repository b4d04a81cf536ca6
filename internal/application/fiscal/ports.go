package fiscal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appestoque "github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// NotaParseada é o resultado da extração do XML da NF-e: cabeçalho e itens,
// independente da serialização de origem.
type NotaParseada struct {
	FornecedorCNPJ string
	FornecedorNome string
	Numero         string
	ValorProdutos  decimal.Decimal
	ValorTotal     decimal.Decimal
	ValorICMS      decimal.Decimal
	Itens          []ItemParseado
}

// ItemParseado é uma linha det/prod da nota.
type ItemParseado struct {
	Codigo        string
	CodigoBarras  string
	Descricao     string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
}

// ParserNota extrai a NotaParseada do XML bruto. Estrutura malformada ou
// campo obrigatório ausente devolve domain.ErrXMLInvalido (nunca zero por
// omissão).
type ParserNota interface {
	Parse(xml []byte) (*NotaParseada, error)
}

// TxRunner abre a transação do processamento da nota: entradas de estoque,
// conta a pagar e a virada de status são duráveis juntas ou nenhuma é.
type TxRunner interface {
	RunFiscal(ctx context.Context, fn func(
		movRepo repository.MovimentoRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		fornecedorRepo repository.FornecedorRepository,
		notaRepo repository.NotaFiscalRepository,
		contaRepo repository.ContaFinanceiraRepository,
	) error) error
}

// LancadorEstoque registra um movimento dentro da transação do chamador.
// Implementado por estoque.UseCase.
type LancadorEstoque interface {
	LancarNaTransacao(
		movRepo repository.MovimentoRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		input appestoque.MovimentoInput,
		agora time.Time,
	) (*entity.MovimentoEstoque, error)
}
