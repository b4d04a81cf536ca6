package analytics

import (
	"context"
	"time"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// DashboardUseCase expõe os indicadores agregados. Toda a soma acontece no
// banco (SUM/COUNT com GROUP BY); nenhuma coleção inteira é trazida para
// memória para agregar.
type DashboardUseCase struct {
	repo  repository.AnalyticsRepository
	agora func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, agora: time.Now}
}

// ComRelogio troca a fonte de tempo (testes determinísticos).
func (uc *DashboardUseCase) ComRelogio(agora func() time.Time) *DashboardUseCase {
	uc.agora = agora
	return uc
}

// Resumo devolve os contadores e saldos da tela inicial.
func (uc *DashboardUseCase) Resumo(ctx context.Context) (*repository.DashboardResumo, error) {
	return uc.repo.Dashboard(uc.agora())
}

// Historico devolve o resumo financeiro mensal dos últimos N meses.
func (uc *DashboardUseCase) Historico(ctx context.Context, meses int) ([]*repository.ResumoMensal, error) {
	if meses <= 0 || meses > 60 {
		return nil, domain.ErrEntradaInvalida
	}
	return uc.repo.HistoricoMensal(meses)
}
