package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// LatenciaHandler lida com requisições HTTP das métricas de latência
type LatenciaHandler struct {
	latenciaService *services.LatenciaService
	usuarioService  *services.UsuarioService
}

// NewLatenciaHandler cria um novo LatenciaHandler
func NewLatenciaHandler(
	latenciaService *services.LatenciaService,
	usuarioService *services.UsuarioService,
) *LatenciaHandler {
	return &LatenciaHandler{
		latenciaService: latenciaService,
		usuarioService:  usuarioService,
	}
}

// Registrar grava uma medição de latência
func (h *LatenciaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarLatenciaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	respondeu := true
	if req.Respondeu != nil {
		respondeu = *req.Respondeu
	}

	latencia, err := h.latenciaService.Registrar(c.Request.Context(), middleware.EscopoAgentes(c), services.RegistrarLatenciaInput{
		UsuarioID:       req.UsuarioID,
		MomentoLembrete: req.MomentoLembrete,
		MomentoResposta: req.MomentoResposta,
		TipoLembrete:    req.TipoLembrete,
		Respondeu:       respondeu,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "latência registrada", dto.ToLatenciaResponse(latencia))
}

// List lista medições no escopo, com filtros opcionais
func (h *LatenciaHandler) List(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	latencias, err := h.latenciaService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "latências listadas", dto.ToLatenciaResponses(latencias))
}

// Exportar devolve as medições do escopo em CSV
func (h *LatenciaHandler) Exportar(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	latencias, err := h.latenciaService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	usuarios, err := h.usuarioService.List(c.Request.Context(), repositories.UsuarioFilters{AgentIDs: filters.AgentIDs})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	conteudo := services.CSVLatencias(latencias, services.NomesUsuarios(usuarios))
	escreverCSV(c, "latencias.csv", conteudo)
}

func (h *LatenciaHandler) filtersDaQuery(c *gin.Context) (repositories.LatenciaFilters, bool) {
	filters := repositories.LatenciaFilters{AgentIDs: middleware.EscopoAgentes(c)}

	inicio, fim, ok := periodoDaQuery(c)
	if !ok {
		return filters, false
	}
	filters.DataInicio = inicio
	filters.DataFim = fim

	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		id, err := strconv.ParseUint(usuarioID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "usuario_id inválido")
			return filters, false
		}
		uid := uint(id)
		filters.UsuarioID = &uid
	}
	if agentID := c.Query("agent_id"); agentID != "" {
		id, err := strconv.ParseInt(agentID, 10, 64)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "agent_id inválido")
			return filters, false
		}
		filters.AgentID = &id
	}

	return filters, true
}
