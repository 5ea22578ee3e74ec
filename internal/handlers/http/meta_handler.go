package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// MetaHandler lida com requisições HTTP de metas semanais
type MetaHandler struct {
	metaService *services.MetaService
}

// NewMetaHandler cria um novo MetaHandler
func NewMetaHandler(metaService *services.MetaService) *MetaHandler {
	return &MetaHandler{metaService: metaService}
}

// Create cria uma nova meta
func (h *MetaHandler) Create(c *gin.Context) {
	var req dto.CreateMetaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	meta, err := h.metaService.Create(c.Request.Context(), middleware.EscopoAgentes(c), services.CreateMetaInput{
		UsuarioID:  req.UsuarioID,
		Descricao:  req.Descricao,
		TipoMeta:   entities.TipoMeta(req.TipoMeta),
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "meta criada", dto.ToMetaResponse(meta))
}

// Get busca uma meta dentro do escopo da sessão
func (h *MetaHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	meta, err := h.metaService.Get(c.Request.Context(), id, middleware.EscopoAgentes(c))
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "meta encontrada", dto.ToMetaResponse(meta))
}

// List lista metas no escopo, com filtros de usuário, período e pendência
func (h *MetaHandler) List(c *gin.Context) {
	filters := repositories.MetaFilters{
		AgentIDs:  middleware.EscopoAgentes(c),
		Pendentes: c.Query("pendentes") == "true",
	}

	inicio, fim, ok := periodoDaQuery(c)
	if !ok {
		return
	}
	filters.DataInicio = inicio
	filters.DataFim = fim

	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		id, err := strconv.ParseUint(usuarioID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "usuario_id inválido")
			return
		}
		uid := uint(id)
		filters.UsuarioID = &uid
	}

	metas, err := h.metaService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "metas listadas", dto.ToMetaResponses(metas))
}

// Update aplica uma atualização parcial em uma meta do escopo
func (h *MetaHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateMetaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.UpdateMetaInput{
		Descricao:  req.Descricao,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
	}
	if req.TipoMeta != nil {
		tipo := entities.TipoMeta(*req.TipoMeta)
		input.TipoMeta = &tipo
	}

	meta, err := h.metaService.Update(c.Request.Context(), id, middleware.EscopoAgentes(c), input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "meta atualizada", dto.ToMetaResponse(meta))
}

// MarcarCumprida registra (ou sobrescreve) a resposta sobre a meta
func (h *MetaHandler) MarcarCumprida(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.MarcarCumpridaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	meta, err := h.metaService.MarcarCumprida(c.Request.Context(), id, middleware.EscopoAgentes(c), *req.Cumprida)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "resposta registrada", dto.ToMetaResponse(meta))
}

// Delete faz o soft delete de uma meta do escopo
func (h *MetaHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.metaService.Delete(c.Request.Context(), id, middleware.EscopoAgentes(c)); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "meta deletada", nil)
}
