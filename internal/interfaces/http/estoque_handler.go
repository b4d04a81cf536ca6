package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/dto"
	"github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// EstoqueHandler trata as rotas do livro de estoque (protegido).
type EstoqueHandler struct {
	uc *estoque.UseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.UseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// RegistrarMovimento godoc
// @Summary      Registrar movimento de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentoRequest  true  "produto_id, filial_id, tipo, quantidade, valor_unitario (entradas)"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentos [post]
func (h *EstoqueHandler) RegistrarMovimento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.RegistrarMovimento(c.Context(), estoque.MovimentoInput{
		ProdutoID:     in.ProdutoID,
		FilialID:      in.FilialID,
		Tipo:          in.Tipo,
		Quantidade:    in.Quantidade,
		ValorUnitario: in.ValorUnitario,
		Documento:     in.Documento,
		Usuario:       GetEmail(c),
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovimentoResponse(mov))
}

// Posicao godoc
// @Summary      Posição de estoque de um produto em uma filial
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_id  path   string  true  "ID do produto"
// @Param        filial_id   query  string  true  "ID da filial"
// @Success      200  {object}  dto.PosicaoResponse
// @Router       /api/estoque/posicoes/{produto_id} [get]
func (h *EstoqueHandler) Posicao(c *fiber.Ctx) error {
	produtoID := c.Params("produto_id")
	filialID := c.Query("filial_id")
	if filialID == "" {
		posicoes, err := h.uc.PosicoesPorProduto(c.Context(), produtoID)
		if err != nil {
			return respostaErro(c, err)
		}
		items := make([]dto.PosicaoResponse, 0, len(posicoes))
		for _, p := range posicoes {
			items = append(items, dto.NewPosicaoResponse(p))
		}
		return c.JSON(items)
	}
	posicao, err := h.uc.Posicao(c.Context(), produtoID, filialID)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewPosicaoResponse(posicao))
}

// Historico godoc
// @Summary      Histórico de movimentos com totais
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  string  false  "Filtrar por produto"
// @Param        filial_id   query  string  false  "Filtrar por filial"
// @Param        de          query  string  false  "Data inicial (RFC3339)"
// @Param        ate         query  string  false  "Data final (RFC3339)"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.HistoricoResponse
// @Router       /api/estoque/movimentos [get]
func (h *EstoqueHandler) Historico(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	filtro := repository.MovimentoFiltro{
		ProdutoID: c.Query("produto_id"),
		FilialID:  c.Query("filial_id"),
		Limit:     limit,
		Offset:    offset,
	}
	if s := c.Query("de"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'de' inválida"})
		}
		filtro.De = &t
	}
	if s := c.Query("ate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'ate' inválida"})
		}
		filtro.Ate = &t
	}
	movs, totais, err := h.uc.Historico(c.Context(), filtro)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewHistoricoResponse(movs, totais, dto.PageResponse{Limit: limit, Offset: offset}))
}

// AbaixoDoMinimo godoc
// @Summary      Posições abaixo do estoque mínimo
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        filial_id  query  string  false  "Filtrar por filial"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.PosicaoResponse
// @Router       /api/estoque/abaixo-minimo [get]
func (h *EstoqueHandler) AbaixoDoMinimo(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	posicoes, err := h.uc.AbaixoDoMinimo(c.Context(), c.Query("filial_id"), limit, offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.PosicaoResponse, 0, len(posicoes))
	for _, p := range posicoes {
		items = append(items, dto.NewPosicaoResponse(p))
	}
	return c.JSON(items)
}
