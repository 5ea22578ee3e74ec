package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// AdminAgenteHandler lida com os vínculos admin-agente (master-only)
type AdminAgenteHandler struct {
	vinculoService *services.AdminAgenteService
}

// NewAdminAgenteHandler cria um novo AdminAgenteHandler
func NewAdminAgenteHandler(vinculoService *services.AdminAgenteService) *AdminAgenteHandler {
	return &AdminAgenteHandler{vinculoService: vinculoService}
}

// Create vincula um admin a um agente
func (h *AdminAgenteHandler) Create(c *gin.Context) {
	var req dto.CreateAdminAgenteRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	vinculo, err := h.vinculoService.Create(c.Request.Context(), req.AdminID, req.AgentID)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "vínculo criado", dto.ToAdminAgenteResponse(vinculo))
}

// List lista vínculos, opcionalmente filtrando por admin
func (h *AdminAgenteHandler) List(c *gin.Context) {
	if adminID := c.Query("admin_id"); adminID != "" {
		id, err := strconv.ParseUint(adminID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "admin_id inválido")
			return
		}

		vinculos, err := h.vinculoService.ListByAdmin(c.Request.Context(), uint(id))
		if err != nil {
			dto.FailDomain(c, err)
			return
		}
		dto.OK(c, http.StatusOK, "vínculos listados", dto.ToAdminAgenteResponses(vinculos))
		return
	}

	vinculos, err := h.vinculoService.List(c.Request.Context())
	if err != nil {
		dto.FailDomain(c, err)
		return
	}
	dto.OK(c, http.StatusOK, "vínculos listados", dto.ToAdminAgenteResponses(vinculos))
}

// Delete remove um vínculo (hard delete, sem soft delete aqui)
func (h *AdminAgenteHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.vinculoService.Delete(c.Request.Context(), id); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "vínculo removido", nil)
}
