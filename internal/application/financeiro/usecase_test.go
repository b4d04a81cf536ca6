package financeiro_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type contaRepoFake struct {
	contas []*entity.ContaFinanceira
}

func (f *contaRepoFake) Create(conta *entity.ContaFinanceira) error {
	copia := *conta
	f.contas = append(f.contas, &copia)
	return nil
}

func (f *contaRepoFake) GetByID(id string) (*entity.ContaFinanceira, error) {
	for _, c := range f.contas {
		if c.ID == id {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *contaRepoFake) GetForUpdate(id string) (*entity.ContaFinanceira, error) {
	return f.GetByID(id)
}

func (f *contaRepoFake) Update(conta *entity.ContaFinanceira) error {
	for i, c := range f.contas {
		if c.ID == conta.ID {
			copia := *conta
			f.contas[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *contaRepoFake) List(filtro repository.ContaFiltro) ([]*entity.ContaFinanceira, error) {
	var out []*entity.ContaFinanceira
	for _, c := range f.contas {
		if filtro.Tipo != "" && c.Tipo != filtro.Tipo {
			continue
		}
		if filtro.Status != "" && c.Status != filtro.Status {
			continue
		}
		if filtro.VencidasAte != nil && !c.Vencimento.Before(*filtro.VencidasAte) {
			continue
		}
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func (f *contaRepoFake) Delete(id string) error { return nil }

type bancoRepoFake struct {
	contas map[string]*entity.ContaBancaria
}

func newBancoRepoFake(bancos ...*entity.ContaBancaria) *bancoRepoFake {
	f := &bancoRepoFake{contas: map[string]*entity.ContaBancaria{}}
	for _, b := range bancos {
		f.contas[b.ID] = b
	}
	return f
}

func (f *bancoRepoFake) Create(conta *entity.ContaBancaria) error {
	f.contas[conta.ID] = conta
	return nil
}

func (f *bancoRepoFake) GetByID(id string) (*entity.ContaBancaria, error) {
	b, ok := f.contas[id]
	if !ok {
		return nil, nil
	}
	copia := *b
	return &copia, nil
}

func (f *bancoRepoFake) GetForUpdate(id string) (*entity.ContaBancaria, error) {
	return f.GetByID(id)
}

func (f *bancoRepoFake) UpdateSaldo(id string, saldo decimal.Decimal) error {
	b, ok := f.contas[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Saldo = saldo
	return nil
}

func (f *bancoRepoFake) List(somenteAtivas bool) ([]*entity.ContaBancaria, error) { return nil, nil }
func (f *bancoRepoFake) Delete(id string) error                                   { return nil }

type txRunnerFake struct {
	contaRepo *contaRepoFake
	bancoRepo *bancoRepoFake
}

func (f *txRunnerFake) RunFinanceiro(ctx context.Context, fn func(
	contaRepo repository.ContaFinanceiraRepository,
	bancoRepo repository.ContaBancariaRepository,
) error) error {
	return fn(f.contaRepo, f.bancoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

var agoraFixo = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type cenario struct {
	uc        *financeiro.UseCase
	contaRepo *contaRepoFake
	bancoRepo *bancoRepoFake
}

func novoCenario(bancos ...*entity.ContaBancaria) *cenario {
	contaRepo := &contaRepoFake{}
	bancoRepo := newBancoRepoFake(bancos...)
	tx := &txRunnerFake{contaRepo: contaRepo, bancoRepo: bancoRepo}
	uc := financeiro.NewUseCase(tx, contaRepo).
		ComRelogio(func() time.Time { return agoraFixo })
	return &cenario{uc: uc, contaRepo: contaRepo, bancoRepo: bancoRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarConta: parcelamento
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarConta_Unica(t *testing.T) {
	c := novoCenario()

	contas, err := c.uc.CriarConta(context.Background(), financeiro.ContaInput{
		Tipo:               entity.ContaPagar,
		Descricao:          "Aluguel do galpão",
		ValorTotal:         dec("3500.00"),
		PrimeiroVencimento: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, contas, 1)

	conta := contas[0]
	assert.Equal(t, "Aluguel do galpão", conta.Descricao, "conta única não ganha sufixo de parcela")
	assert.True(t, dec("3500").Equal(conta.Valor))
	assert.Equal(t, entity.StatusPendente, conta.Status)
	assert.Equal(t, 1, conta.ParcelaNumero)
	assert.Equal(t, 1, conta.ParcelaTotal)
}

func TestCriarConta_ParcelasComResiduoNaUltima(t *testing.T) {
	c := novoCenario()

	contas, err := c.uc.CriarConta(context.Background(), financeiro.ContaInput{
		Tipo:               entity.ContaReceber,
		Descricao:          "Venda 4412",
		ValorTotal:         dec("100.00"),
		Parcelas:           3,
		PrimeiroVencimento: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, contas, 3)

	assert.True(t, dec("33.33").Equal(contas[0].Valor))
	assert.True(t, dec("33.33").Equal(contas[1].Valor))
	assert.True(t, dec("33.34").Equal(contas[2].Valor), "a última parcela absorve o resíduo")

	soma := contas[0].Valor.Add(contas[1].Valor).Add(contas[2].Valor)
	assert.True(t, dec("100").Equal(soma), "a soma das parcelas deve ser exatamente o total")

	assert.Equal(t, "Venda 4412 - Parcela 1/3", contas[0].Descricao)
	assert.Equal(t, "Venda 4412 - Parcela 3/3", contas[2].Descricao)

	// Vencimentos espaçados em um mês-calendário.
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), contas[0].Vencimento)
	assert.Equal(t, time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), contas[1].Vencimento)
	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), contas[2].Vencimento)
}

func TestCriarConta_Validacoes(t *testing.T) {
	c := novoCenario()
	venc := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nome  string
		input financeiro.ContaInput
	}{
		{"tipo desconhecido", financeiro.ContaInput{Tipo: "EMPRESTIMO", Descricao: "x", ValorTotal: dec("10"), PrimeiroVencimento: venc}},
		{"valor zero", financeiro.ContaInput{Tipo: entity.ContaPagar, Descricao: "x", ValorTotal: decimal.Zero, PrimeiroVencimento: venc}},
		{"sem descrição", financeiro.ContaInput{Tipo: entity.ContaPagar, ValorTotal: dec("10"), PrimeiroVencimento: venc}},
		{"parcelas demais", financeiro.ContaInput{Tipo: entity.ContaPagar, Descricao: "x", ValorTotal: dec("10"), Parcelas: 200, PrimeiroVencimento: venc}},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := c.uc.CriarConta(context.Background(), caso.input)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BaixarConta: status + saldo bancário na mesma transação
// ──────────────────────────────────────────────────────────────────────────────

func contaPendente(id, tipo string, valor decimal.Decimal) *entity.ContaFinanceira {
	return &entity.ContaFinanceira{
		ID:            id,
		Tipo:          tipo,
		Descricao:     "Conta de teste",
		Valor:         valor,
		Vencimento:    agoraFixo.AddDate(0, 0, 15),
		Status:        entity.StatusPendente,
		ParcelaNumero: 1,
		ParcelaTotal:  1,
		CreatedAt:     agoraFixo,
	}
}

func TestBaixarConta_PagarSubtraiDoSaldo(t *testing.T) {
	c := novoCenario(&entity.ContaBancaria{ID: "bco-1", Nome: "Conta Corrente", Saldo: dec("1000.00"), Ativo: true})
	require.NoError(t, c.contaRepo.Create(contaPendente("ct-1", entity.ContaPagar, dec("250.00"))))

	pagamento := agoraFixo.AddDate(0, 0, 2)
	baixada, err := c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", dec("250.00"), pagamento)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPago, baixada.Status)
	assert.True(t, dec("250").Equal(baixada.ValorPago))
	require.NotNil(t, baixada.DataPagamento)
	assert.Equal(t, pagamento, *baixada.DataPagamento)
	assert.Equal(t, "bco-1", baixada.ContaBancariaID)

	banco, _ := c.bancoRepo.GetByID("bco-1")
	assert.True(t, dec("750").Equal(banco.Saldo), "PAGAR deve subtrair do saldo")
}

func TestBaixarConta_ReceberSomaAoSaldo(t *testing.T) {
	c := novoCenario(&entity.ContaBancaria{ID: "bco-1", Nome: "Conta Corrente", Saldo: dec("1000.00"), Ativo: true})
	require.NoError(t, c.contaRepo.Create(contaPendente("ct-1", entity.ContaReceber, dec("300.00"))))

	_, err := c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", dec("300.00"), agoraFixo)
	require.NoError(t, err)

	banco, _ := c.bancoRepo.GetByID("bco-1")
	assert.True(t, dec("1300").Equal(banco.Saldo), "RECEBER deve somar ao saldo")
}

func TestBaixarConta_ValorParcialValeOPago(t *testing.T) {
	c := novoCenario(&entity.ContaBancaria{ID: "bco-1", Saldo: dec("500.00"), Ativo: true})
	require.NoError(t, c.contaRepo.Create(contaPendente("ct-1", entity.ContaPagar, dec("200.00"))))

	baixada, err := c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", dec("180.00"), agoraFixo)
	require.NoError(t, err)

	// O ajuste do saldo usa o valor efetivamente pago, não o valor de face.
	assert.True(t, dec("180").Equal(baixada.ValorPago))
	banco, _ := c.bancoRepo.GetByID("bco-1")
	assert.True(t, dec("320").Equal(banco.Saldo))
}

func TestBaixarConta_SegundaBaixaRejeitadaSemEfeito(t *testing.T) {
	c := novoCenario(&entity.ContaBancaria{ID: "bco-1", Saldo: dec("1000.00"), Ativo: true})
	require.NoError(t, c.contaRepo.Create(contaPendente("ct-1", entity.ContaPagar, dec("100.00"))))

	_, err := c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", dec("100.00"), agoraFixo)
	require.NoError(t, err)

	_, err = c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", dec("100.00"), agoraFixo)
	require.ErrorIs(t, err, domain.ErrContaJaPaga)

	banco, _ := c.bancoRepo.GetByID("bco-1")
	assert.True(t, dec("900").Equal(banco.Saldo), "a segunda baixa não pode mexer no saldo")
}

func TestBaixarConta_ContaInexistente(t *testing.T) {
	c := novoCenario(&entity.ContaBancaria{ID: "bco-1", Saldo: dec("100.00"), Ativo: true})
	_, err := c.uc.BaixarConta(context.Background(), "nao-existe", "bco-1", dec("10.00"), agoraFixo)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBaixarConta_BancoInexistente(t *testing.T) {
	c := novoCenario()
	require.NoError(t, c.contaRepo.Create(contaPendente("ct-1", entity.ContaPagar, dec("100.00"))))
	_, err := c.uc.BaixarConta(context.Background(), "ct-1", "nao-existe", dec("100.00"), agoraFixo)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBaixarConta_ValorZeroRejeitado(t *testing.T) {
	c := novoCenario()
	_, err := c.uc.BaixarConta(context.Background(), "ct-1", "bco-1", decimal.Zero, agoraFixo)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar: tradução do status VENCIDO
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_VencidoTraduzParaPendenteVencida(t *testing.T) {
	c := novoCenario()

	vencida := contaPendente("ct-vencida", entity.ContaPagar, dec("50.00"))
	vencida.Vencimento = agoraFixo.AddDate(0, 0, -10)
	require.NoError(t, c.contaRepo.Create(vencida))

	emDia := contaPendente("ct-em-dia", entity.ContaPagar, dec("80.00"))
	require.NoError(t, c.contaRepo.Create(emDia))

	contas, err := c.uc.Listar(context.Background(), repository.ContaFiltro{Status: entity.StatusVencido})
	require.NoError(t, err)
	require.Len(t, contas, 1)
	assert.Equal(t, "ct-vencida", contas[0].ID)
	assert.Equal(t, entity.StatusVencido, contas[0].StatusCalculado(agoraFixo))
}

// ──────────────────────────────────────────────────────────────────────────────
// Entidade: status calculado
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusCalculado(t *testing.T) {
	conta := contaPendente("ct-1", entity.ContaPagar, dec("10.00"))
	conta.Vencimento = agoraFixo.AddDate(0, 0, -1)

	assert.Equal(t, entity.StatusVencido, conta.StatusCalculado(agoraFixo))
	assert.Equal(t, entity.StatusPendente, conta.Status, "o status gravado nunca muda na leitura")

	conta.Status = entity.StatusPago
	assert.Equal(t, entity.StatusPago, conta.StatusCalculado(agoraFixo), "conta paga nunca aparece como vencida")
}
