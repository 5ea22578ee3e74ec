package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// GrupoHandler lida com requisições HTTP de grupos de usuários
type GrupoHandler struct {
	grupoService *services.GrupoService
}

// NewGrupoHandler cria um novo GrupoHandler
func NewGrupoHandler(grupoService *services.GrupoService) *GrupoHandler {
	return &GrupoHandler{grupoService: grupoService}
}

// Create cria um novo grupo
func (h *GrupoHandler) Create(c *gin.Context) {
	var req dto.CreateGrupoRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	grupo, err := h.grupoService.Create(c.Request.Context(), services.CreateGrupoInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Ativo:     ativo,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "grupo criado", dto.ToGrupoResponse(grupo))
}

// Get busca um grupo por ID
func (h *GrupoHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	grupo, err := h.grupoService.Get(c.Request.Context(), id)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "grupo encontrado", dto.ToGrupoResponse(grupo))
}

// List lista os grupos não deletados
func (h *GrupoHandler) List(c *gin.Context) {
	grupos, err := h.grupoService.List(c.Request.Context())
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "grupos listados", dto.ToGrupoResponses(grupos))
}

// Update aplica uma atualização parcial em um grupo
func (h *GrupoHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateGrupoRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	grupo, err := h.grupoService.Update(c.Request.Context(), id, services.UpdateGrupoInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Ativo:     req.Ativo,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "grupo atualizado", dto.ToGrupoResponse(grupo))
}

// Delete faz o soft delete de um grupo
func (h *GrupoHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.grupoService.Delete(c.Request.Context(), id); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "grupo deletado", nil)
}
