package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/cadastro"
	"github.com/gestorlite/erp-api/internal/application/dto"
	"github.com/gestorlite/erp-api/internal/domain"
)

// ProdutoHandler trata as rotas de catálogo de produtos (protegido).
type ProdutoHandler struct {
	uc *cadastro.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *cadastro.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	p, err := h.uc.Criar(c.Context(), cadastro.ProdutoInput{
		Nome:          in.Nome,
		Codigo:        in.Codigo,
		CodigoBarras:  in.CodigoBarras,
		Categoria:     in.Categoria,
		Descricao:     in.Descricao,
		PrecoVenda:    in.PrecoVenda,
		UnidadeMedida: in.UnidadeMedida,
		ForaDoEstado:  in.ForaDoEstado,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProdutoResponse(p))
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewProdutoResponse(p))
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int   false  "Limite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Param        ativos  query  bool  false  "Somente ativos"
// @Success      200     {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	somenteAtivos := c.QueryBool("ativos", false)
	produtos, err := h.uc.Listar(c.Context(), somenteAtivos, limit, offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, dto.NewProdutoResponse(p))
	}
	return c.JSON(dto.ProdutoListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}})
}

// Update godoc
// @Summary      Atualizar produto (parcial)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	p, err := h.uc.Atualizar(c.Context(), c.Params("id"), in.Patch())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewProdutoResponse(p))
}

// Delete godoc
// @Summary      Remover produto
// @Tags         produtos
// @Security     Bearer
// @Param        id   path  string  true  "ID do produto"
// @Success      204  "removido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paginacao lê limit/offset da query com os limites padrão.
func paginacao(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// respostaErro traduz os sentinelas de domínio em status HTTP.
func respostaErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrCNPJInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CNPJ", Message: "CNPJ inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	case errors.Is(err, domain.ErrContaJaPaga):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "conta já baixada"})
	case errors.Is(err, domain.ErrNotaJaProcessada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROCESSED", Message: "nota já processada"})
	case errors.Is(err, domain.ErrXMLInvalido):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_XML", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
