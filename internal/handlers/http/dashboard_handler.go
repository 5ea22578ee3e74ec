package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/agentapi"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// DashboardHandler lida com a agregação do painel e sua exportação
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler cria um novo DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Agregar devolve as métricas agregadas do painel para o escopo da
// sessão
func (h *DashboardHandler) Agregar(c *gin.Context) {
	inicio, fim, ok := periodoDaQuery(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Agregar(c.Request.Context(), middleware.EscopoAgentes(c), services.PeriodoFiltro{
		DataInicio: inicio,
		DataFim:    fim,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "dashboard agregado", dashboard)
}

// exportacaoPayload são os conjuntos brutos do painel, prontos para o
// frontend serializar em CSV
type exportacaoPayload struct {
	Usuarios      []dto.UsuarioResponse              `json:"usuarios"`
	Transacoes    []dto.TransacaoResponse            `json:"transacoes"`
	Metas         []dto.MetaResponse                 `json:"metas"`
	Latencias     []dto.LatenciaResponse             `json:"latencias"`
	Questionarios []dto.QuestionarioResponse         `json:"questionarios"`
	Mensagens     map[uint]*agentapi.MetricasUsuario `json:"mensagens"`
}

// Exportar devolve os conjuntos brutos do período com enriquecimento
// best-effort das métricas de mensagens
func (h *DashboardHandler) Exportar(c *gin.Context) {
	inicio, fim, ok := periodoDaQuery(c)
	if !ok {
		return
	}

	dados, err := h.dashboardService.Exportar(c.Request.Context(), middleware.EscopoAgentes(c), services.PeriodoFiltro{
		DataInicio: inicio,
		DataFim:    fim,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "dados exportados", exportacaoPayload{
		Usuarios:      dto.ToUsuarioResponses(dados.Usuarios),
		Transacoes:    dto.ToTransacaoResponses(dados.Transacoes),
		Metas:         dto.ToMetaResponses(dados.Metas),
		Latencias:     dto.ToLatenciaResponses(dados.Latencias),
		Questionarios: dto.ToQuestionarioResponses(dados.Questionarios),
		Mensagens:     dados.Mensagens,
	})
}
