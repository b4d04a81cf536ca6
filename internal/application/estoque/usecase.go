package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	domestoque "github.com/gestorlite/erp-api/internal/domain/estoque"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// UseCase é o livro de estoque: registra movimentos de forma transacional
// (ENTRADA, SAIDA, AJUSTE) com bloqueio de linha (SELECT FOR UPDATE) e expõe
// posição e histórico.
type UseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	filialRepo  repository.FilialRepository
	estoqueRepo repository.EstoqueRepository
	movRepo     repository.MovimentoRepository
	agora       func() time.Time
}

// NewUseCase constrói o caso de uso. Os repositórios aqui são atados ao pool
// (leituras); escrita passa sempre pelo TxRunner.
func NewUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	filialRepo repository.FilialRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentoRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		filialRepo:  filialRepo,
		estoqueRepo: estoqueRepo,
		movRepo:     movRepo,
		agora:       time.Now,
	}
}

// ComRelogio troca a fonte de tempo (testes determinísticos).
func (uc *UseCase) ComRelogio(agora func() time.Time) *UseCase {
	uc.agora = agora
	return uc
}

// MovimentoInput é a entrada para registrar um movimento.
// Quantidade é sempre positiva; em AJUSTE o sinal vem em Quantidade mesmo
// (positivo soma, negativo subtrai). ValorUnitario é obrigatório em ENTRADA.
type MovimentoInput struct {
	ProdutoID     string
	FilialID      string
	Tipo          string
	Quantidade    decimal.Decimal
	ValorUnitario *decimal.Decimal
	Documento     string
	Usuario       string
}

// RegistrarMovimento valida a entrada, abre a transação, bloqueia produto e
// posição (produto, filial), aplica o custo médio quando for entrada de compra
// e grava movimento + posição + totais do produto. Commit ou rollback ficam a
// cargo do TxRunner.
func (uc *UseCase) RegistrarMovimento(ctx context.Context, input MovimentoInput) (*entity.MovimentoEstoque, error) {
	switch input.Tipo {
	case entity.MovimentoENTRADA, entity.MovimentoSAIDA:
		if !input.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		if input.Tipo == entity.MovimentoENTRADA && (input.ValorUnitario == nil || input.ValorUnitario.LessThan(decimal.Zero)) {
			return nil, domain.ErrEntradaInvalida
		}
	case entity.MovimentoAJUSTE:
		if input.Quantidade.IsZero() {
			return nil, domain.ErrEntradaInvalida
		}
	default:
		return nil, domain.ErrEntradaInvalida
	}
	if input.ProdutoID == "" || input.FilialID == "" {
		return nil, domain.ErrEntradaInvalida
	}

	// Checagem rápida de existência; a leitura de custo que vale é refeita
	// sob bloqueio dentro da transação.
	produto, err := uc.produtoRepo.GetByID(input.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	filial, err := uc.filialRepo.GetByID(input.FilialID)
	if err != nil {
		return nil, err
	}
	if filial == nil {
		return nil, domain.ErrNotFound
	}

	var mov *entity.MovimentoEstoque
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		m, err := lancar(movRepo, estoqueRepo, produtoRepo, input, uc.agora())
		if err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// lancar executa o lançamento dentro da transação corrente. Usado também pelo
// pipeline fiscal, que compartilha a transação da nota.
func lancar(
	movRepo repository.MovimentoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	input MovimentoInput,
	agora time.Time,
) (*entity.MovimentoEstoque, error) {
	// Bloqueia a linha do produto antes de ler o custo médio: o custo lido
	// aqui é o mesmo que vai ser regravado, mesmo com compras concorrentes
	// do produto em outras filiais.
	produto, err := produtoRepo.GetForUpdate(input.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	// Bloqueia a linha da posição: lançamentos do mesmo (produto, filial)
	// ficam serializados e a leitura do saldo pré-movimento não é
	// intercalada com outra compra do mesmo produto.
	posicao, err := estoqueRepo.GetForUpdate(input.ProdutoID, input.FilialID)
	if err != nil {
		return nil, err
	}

	delta := input.Quantidade
	if input.Tipo == entity.MovimentoSAIDA {
		delta = input.Quantidade.Neg()
	}
	// Em AJUSTE o sinal já vem em Quantidade.

	saldoAnterior := posicao.Quantidade
	novoSaldo := saldoAnterior.Add(delta)
	if novoSaldo.LessThan(decimal.Zero) {
		return nil, domain.ErrEstoqueInsuficiente
	}

	valorUnitario := produto.CustoMedio
	if input.Tipo == entity.MovimentoENTRADA {
		// Custo médio roda ANTES de atualizar a quantidade: lê o saldo
		// pré-movimento bloqueado acima.
		custoEntrada := domestoque.CustoComDifal(*input.ValorUnitario, produto.ForaDoEstado)
		novoCusto := domestoque.CustoMedio(saldoAnterior, produto.CustoMedio, input.Quantidade, custoEntrada)
		if err := produtoRepo.UpdateCustos(input.ProdutoID, novoCusto, *input.ValorUnitario); err != nil {
			return nil, err
		}
		valorUnitario = custoEntrada
	} else if input.ValorUnitario != nil {
		valorUnitario = *input.ValorUnitario
	}

	posicao.Quantidade = novoSaldo
	posicao.UpdatedAt = agora
	if err := estoqueRepo.Upsert(posicao); err != nil {
		return nil, err
	}

	mov := &entity.MovimentoEstoque{
		ID:                 uuid.New().String(),
		ProdutoID:          input.ProdutoID,
		FilialID:           input.FilialID,
		Tipo:               input.Tipo,
		Quantidade:         delta,
		QuantidadeAnterior: saldoAnterior,
		ValorUnitario:      valorUnitario,
		ValorTotal:         delta.Mul(valorUnitario),
		Documento:          input.Documento,
		Usuario:            input.Usuario,
		CreatedAt:          agora,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	// Total do produto recalculado como soma das posições no banco, nunca
	// incrementado: correto sob escrita concorrente em filiais diferentes.
	if err := produtoRepo.RecalcularEstoqueTotal(input.ProdutoID); err != nil {
		return nil, err
	}
	return mov, nil
}

// LancarNaTransacao registra um movimento usando os repositórios informados
// (mesma transação do chamador). Implementa fiscal.LancadorEstoque: o
// pipeline de notas dá entrada nas linhas dentro da transação da nota.
func (uc *UseCase) LancarNaTransacao(
	movRepo repository.MovimentoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	input MovimentoInput,
	agora time.Time,
) (*entity.MovimentoEstoque, error) {
	return lancar(movRepo, estoqueRepo, produtoRepo, input, agora)
}

// Posicao devolve a posição de estoque; par sem movimento devolve posição
// zerada (estoque inexistente não é erro).
func (uc *UseCase) Posicao(ctx context.Context, produtoID, filialID string) (*entity.Estoque, error) {
	if produtoID == "" || filialID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	return uc.estoqueRepo.Get(produtoID, filialID)
}

// PosicoesPorProduto lista as posições de um produto em todas as filiais.
func (uc *UseCase) PosicoesPorProduto(ctx context.Context, produtoID string) ([]*entity.Estoque, error) {
	if produtoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	return uc.estoqueRepo.ListByProduto(produtoID)
}

// Historico devolve os movimentos do filtro (mais recentes primeiro) e os
// totais agregados de entrada/saída/saldo, calculados no banco.
func (uc *UseCase) Historico(ctx context.Context, filtro repository.MovimentoFiltro) ([]*entity.MovimentoEstoque, *repository.MovimentoTotais, error) {
	if filtro.ProdutoID == "" {
		return nil, nil, domain.ErrEntradaInvalida
	}
	if filtro.Limit <= 0 {
		filtro.Limit = 50
	}
	movimentos, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, nil, err
	}
	totais, err := uc.movRepo.Totais(filtro)
	if err != nil {
		return nil, nil, err
	}
	return movimentos, totais, nil
}

// AbaixoDoMinimo lista posições com quantidade no mínimo ou abaixo dele.
func (uc *UseCase) AbaixoDoMinimo(ctx context.Context, filialID string, limit, offset int) ([]*entity.Estoque, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.estoqueRepo.ListAbaixoMinimo(filialID, limit, offset)
}
