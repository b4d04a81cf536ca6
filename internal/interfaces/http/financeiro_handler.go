package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/application/cadastro"
	"github.com/gestorlite/erp-api/internal/application/dto"
	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// FinanceiroHandler trata as rotas de contas a pagar/receber (protegido).
type FinanceiroHandler struct {
	uc           *financeiro.UseCase
	fornecedorUC *cadastro.FornecedorUseCase
	clienteUC    *cadastro.ClienteUseCase
	bancoUC      *cadastro.ContaBancariaUseCase
	recibos      financeiro.GeradorRecibo
	empresa      string
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(
	uc *financeiro.UseCase,
	fornecedorUC *cadastro.FornecedorUseCase,
	clienteUC *cadastro.ClienteUseCase,
	bancoUC *cadastro.ContaBancariaUseCase,
	recibos financeiro.GeradorRecibo,
	empresa string,
) *FinanceiroHandler {
	return &FinanceiroHandler{
		uc:           uc,
		fornecedorUC: fornecedorUC,
		clienteUC:    clienteUC,
		bancoUC:      bancoUC,
		recibos:      recibos,
		empresa:      empresa,
	}
}

// Create godoc
// @Summary      Criar conta (parcelada ou à vista)
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContaRequest  true  "tipo, descricao, valor_total, primeiro_vencimento, parcelas"
// @Success      201   {array}   dto.ContaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas [post]
func (h *FinanceiroHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	contas, err := h.uc.CriarConta(c.Context(), financeiro.ContaInput{
		Tipo:               in.Tipo,
		Descricao:          in.Descricao,
		ValorTotal:         in.ValorTotal,
		PrimeiroVencimento: in.PrimeiroVencimento,
		Parcelas:           in.Parcelas,
		FornecedorID:       in.FornecedorID,
		ClienteID:          in.ClienteID,
		ContaBancariaID:    in.ContaBancariaID,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	ref := time.Now()
	out := make([]dto.ContaResponse, 0, len(contas))
	for _, conta := range contas {
		out = append(out, dto.NewContaResponse(conta, ref))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Baixar godoc
// @Summary      Baixar conta (marca PAGO e ajusta saldo bancário)
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.BaixarContaRequest  true  "conta_bancaria_id; valor_pago opcional (padrão: valor da parcela)"
// @Success      200   {object}  dto.ContaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id}/baixa [post]
func (h *FinanceiroHandler) Baixar(c *fiber.Ctx) error {
	var in dto.BaixarContaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	id := c.Params("id")

	valorPago := decimalOuZero(in.ValorPago)
	if valorPago.IsZero() {
		conta, err := h.uc.Buscar(c.Context(), id)
		if err != nil {
			return respostaErro(c, err)
		}
		valorPago = conta.Valor
	}
	dataPagamento := time.Now()
	if in.DataPagamento != nil {
		dataPagamento = *in.DataPagamento
	}

	conta, err := h.uc.BaixarConta(c.Context(), id, in.ContaBancariaID, valorPago, dataPagamento)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewContaResponse(conta, time.Now()))
}

// List godoc
// @Summary      Listar contas
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        tipo    query  string  false  "PAGAR | RECEBER"
// @Param        status  query  string  false  "PENDENTE | PAGO | VENCIDO"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ContaListResponse
// @Router       /api/financeiro/contas [get]
func (h *FinanceiroHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	contas, err := h.uc.Listar(c.Context(), repository.ContaFiltro{
		Tipo:         c.Query("tipo"),
		Status:       c.Query("status"),
		FornecedorID: c.Query("fornecedor_id"),
		ClienteID:    c.Query("cliente_id"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	ref := time.Now()
	items := make([]dto.ContaResponse, 0, len(contas))
	for _, conta := range contas {
		items = append(items, dto.NewContaResponse(conta, ref))
	}
	return c.JSON(dto.ContaListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}})
}

// GetByID godoc
// @Summary      Obter conta por ID
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.ContaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id} [get]
func (h *FinanceiroHandler) GetByID(c *fiber.Ctx) error {
	conta, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewContaResponse(conta, time.Now()))
}

// Recibo godoc
// @Summary      Recibo de pagamento em PDF de uma conta baixada
// @Tags         financeiro
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id}/recibo [get]
func (h *FinanceiroHandler) Recibo(c *fiber.Ctx) error {
	conta, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if conta.Status != entity.StatusPago || conta.DataPagamento == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PAID", Message: "conta ainda não baixada"})
	}

	dados := financeiro.ReciboDados{
		ContaID:       conta.ID,
		Tipo:          conta.Tipo,
		Descricao:     conta.Descricao,
		Valor:         conta.Valor,
		ValorPago:     conta.ValorPago,
		DataPagamento: *conta.DataPagamento,
		ParcelaNumero: conta.ParcelaNumero,
		ParcelaTotal:  conta.ParcelaTotal,
		Empresa:       h.empresa,
	}
	if conta.FornecedorID != "" {
		if f, err := h.fornecedorUC.Buscar(c.Context(), conta.FornecedorID); err == nil {
			dados.Contraparte = f.Nome
		}
	}
	if conta.ClienteID != "" {
		if cl, err := h.clienteUC.Buscar(c.Context(), conta.ClienteID); err == nil {
			dados.Contraparte = cl.Nome
		}
	}
	if conta.ContaBancariaID != "" {
		if b, err := h.bancoUC.Buscar(c.Context(), conta.ContaBancariaID); err == nil {
			dados.Banco = b.Nome
		}
	}

	pdfBytes, err := h.recibos.GerarRecibo(c.Context(), dados)
	if err != nil {
		return respostaErro(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="recibo-`+conta.ID+`.pdf"`)
	return c.Send(pdfBytes)
}

func decimalOuZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ContaBancariaHandler trata as rotas de contas bancárias (protegido).
type ContaBancariaHandler struct {
	uc *cadastro.ContaBancariaUseCase
}

// NewContaBancariaHandler constrói o handler.
func NewContaBancariaHandler(uc *cadastro.ContaBancariaUseCase) *ContaBancariaHandler {
	return &ContaBancariaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar conta bancária
// @Tags         contas-banco
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContaBancariaRequest  true  "Dados da conta"
// @Success      201   {object}  dto.ContaBancariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contas-banco [post]
func (h *ContaBancariaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContaBancariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	conta, err := h.uc.Criar(c.Context(), cadastro.ContaBancariaInput{
		Nome:         in.Nome,
		Banco:        in.Banco,
		Agencia:      in.Agencia,
		Numero:       in.Numero,
		SaldoInicial: in.SaldoInicial,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewContaBancariaResponse(conta))
}

// List godoc
// @Summary      Listar contas bancárias
// @Tags         contas-banco
// @Security     Bearer
// @Produce      json
// @Param        ativas  query  bool  false  "Somente ativas"
// @Success      200     {array}  dto.ContaBancariaResponse
// @Router       /api/contas-banco [get]
func (h *ContaBancariaHandler) List(c *fiber.Ctx) error {
	contas, err := h.uc.Listar(c.Context(), c.QueryBool("ativas", false))
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.ContaBancariaResponse, 0, len(contas))
	for _, conta := range contas {
		items = append(items, dto.NewContaBancariaResponse(conta))
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obter conta bancária por ID
// @Tags         contas-banco
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.ContaBancariaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-banco/{id} [get]
func (h *ContaBancariaHandler) GetByID(c *fiber.Ctx) error {
	conta, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewContaBancariaResponse(conta))
}
