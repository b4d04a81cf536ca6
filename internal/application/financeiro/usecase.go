package financeiro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// maxParcelas limita o parcelamento aceito na criação de contas.
const maxParcelas = 120

// UseCase cria contas a pagar/receber (com parcelamento) e registra baixas
// com ajuste atômico do saldo bancário.
type UseCase struct {
	txRunner  TxRunner
	contaRepo repository.ContaFinanceiraRepository
	agora     func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, contaRepo repository.ContaFinanceiraRepository) *UseCase {
	return &UseCase{txRunner: txRunner, contaRepo: contaRepo, agora: time.Now}
}

// ComRelogio troca a fonte de tempo (testes determinísticos).
func (uc *UseCase) ComRelogio(agora func() time.Time) *UseCase {
	uc.agora = agora
	return uc
}

// ContaInput é a entrada para criar uma conta (ou série de parcelas).
type ContaInput struct {
	Tipo               string // PAGAR | RECEBER
	Descricao          string
	ValorTotal         decimal.Decimal
	PrimeiroVencimento time.Time
	Parcelas           int
	FornecedorID       string
	ClienteID          string
	ContaBancariaID    string
}

// CriarConta cria uma conta única ou N parcelas mensais. Cada parcela vale
// round(total/N, 2); a ÚLTIMA absorve o resíduo de arredondamento, de modo
// que a soma das parcelas seja exatamente o total. Vencimentos espaçados em
// um mês-calendário a partir do primeiro.
func (uc *UseCase) CriarConta(ctx context.Context, input ContaInput) ([]*entity.ContaFinanceira, error) {
	if input.Tipo != entity.ContaPagar && input.Tipo != entity.ContaReceber {
		return nil, domain.ErrEntradaInvalida
	}
	if !input.ValorTotal.GreaterThan(decimal.Zero) || input.Descricao == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if input.Parcelas < 0 || input.Parcelas > maxParcelas {
		return nil, domain.ErrEntradaInvalida
	}

	n := input.Parcelas
	if n <= 1 {
		n = 1
	}
	agora := uc.agora()

	valorParcela := input.ValorTotal.DivRound(decimal.NewFromInt(int64(n)), 2)
	// Resíduo de arredondamento vai para a última parcela.
	valorUltima := input.ValorTotal.Sub(valorParcela.Mul(decimal.NewFromInt(int64(n - 1))))

	contas := make([]*entity.ContaFinanceira, 0, n)
	// Série criada em uma transação: ou todas as parcelas existem, ou nenhuma.
	err := uc.txRunner.RunFinanceiro(ctx, func(
		contaRepo repository.ContaFinanceiraRepository,
		_ repository.ContaBancariaRepository,
	) error {
		for i := 1; i <= n; i++ {
			valor := valorParcela
			if i == n {
				valor = valorUltima
			}
			descricao := input.Descricao
			if n > 1 {
				descricao = fmt.Sprintf("%s - Parcela %d/%d", input.Descricao, i, n)
			}
			conta := &entity.ContaFinanceira{
				ID:              uuid.New().String(),
				Tipo:            input.Tipo,
				Descricao:       descricao,
				Valor:           valor,
				Vencimento:      input.PrimeiroVencimento.AddDate(0, i-1, 0),
				Status:          entity.StatusPendente,
				ParcelaNumero:   i,
				ParcelaTotal:    n,
				FornecedorID:    input.FornecedorID,
				ClienteID:       input.ClienteID,
				ContaBancariaID: input.ContaBancariaID,
				CreatedAt:       agora,
			}
			if err := contaRepo.Create(conta); err != nil {
				return err
			}
			contas = append(contas, conta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contas, nil
}

// BaixarConta baixa uma conta pendente: grava valor e data de pagamento,
// muda o status para PAGO e ajusta o saldo da conta bancária (PAGAR subtrai,
// RECEBER soma) na mesma transação. Conta já baixada é rejeitada, a baixa
// nunca é reaplicada em silêncio.
func (uc *UseCase) BaixarConta(ctx context.Context, contaID, contaBancariaID string, valorPago decimal.Decimal, dataPagamento time.Time) (*entity.ContaFinanceira, error) {
	if contaID == "" || contaBancariaID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if !valorPago.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}

	var baixada *entity.ContaFinanceira
	err := uc.txRunner.RunFinanceiro(ctx, func(
		contaRepo repository.ContaFinanceiraRepository,
		bancoRepo repository.ContaBancariaRepository,
	) error {
		conta, err := contaRepo.GetForUpdate(contaID)
		if err != nil {
			return err
		}
		if conta == nil {
			return domain.ErrNotFound
		}
		if conta.Status == entity.StatusPago {
			return domain.ErrContaJaPaga
		}

		banco, err := bancoRepo.GetForUpdate(contaBancariaID)
		if err != nil {
			return err
		}
		if banco == nil {
			return domain.ErrNotFound
		}

		novoSaldo := banco.Saldo
		if conta.Tipo == entity.ContaPagar {
			novoSaldo = novoSaldo.Sub(valorPago)
		} else {
			novoSaldo = novoSaldo.Add(valorPago)
		}
		if err := bancoRepo.UpdateSaldo(banco.ID, novoSaldo); err != nil {
			return err
		}

		conta.Status = entity.StatusPago
		conta.ValorPago = valorPago
		conta.DataPagamento = &dataPagamento
		conta.ContaBancariaID = contaBancariaID
		if err := contaRepo.Update(conta); err != nil {
			return err
		}
		baixada = conta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return baixada, nil
}

// Listar devolve contas do filtro, com o status calculado (VENCIDO em vez de
// PENDENTE quando o vencimento já passou) aplicado na leitura.
func (uc *UseCase) Listar(ctx context.Context, filtro repository.ContaFiltro) ([]*entity.ContaFinanceira, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 50
	}
	if filtro.Status == entity.StatusVencido {
		// VENCIDO não existe no banco: traduz para PENDENTE vencida.
		ref := uc.agora()
		filtro.Status = entity.StatusPendente
		filtro.VencidasAte = &ref
	}
	return uc.contaRepo.List(filtro)
}

// Buscar devolve uma conta por id.
func (uc *UseCase) Buscar(ctx context.Context, id string) (*entity.ContaFinanceira, error) {
	conta, err := uc.contaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if conta == nil {
		return nil, domain.ErrNotFound
	}
	return conta, nil
}
