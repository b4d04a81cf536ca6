package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/analytics"
	"github.com/gestorlite/erp-api/internal/application/dto"
)

// DashboardHandler trata as rotas de indicadores agregados (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo godoc
// @Summary      Indicadores da tela inicial
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	resumo, err := h.uc.Resumo(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewDashboardResponse(resumo))
}

// Historico godoc
// @Summary      Histórico financeiro mensal (contas por mês e tipo)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        meses  query  int  false  "Quantidade de meses"  default(12)
// @Success      200    {array}  dto.ResumoMensalResponse
// @Router       /api/dashboard/historico [get]
func (h *DashboardHandler) Historico(c *fiber.Ctx) error {
	meses := c.QueryInt("meses", 12)
	linhas, err := h.uc.Historico(c.Context(), meses)
	if err != nil {
		return respostaErro(c, err)
	}
	out := make([]dto.ResumoMensalResponse, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.ResumoMensalResponse{
			Ano:        l.Ano,
			Mes:        l.Mes,
			Tipo:       l.Tipo,
			Total:      l.Total,
			Quantidade: l.Quantidade,
		})
	}
	return c.JSON(out)
}
