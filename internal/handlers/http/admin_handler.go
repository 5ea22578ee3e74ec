package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// AdminHandler lida com o gerenciamento de admins (rotas master-only)
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// idDaRota lê o parâmetro :id como uint; escreve o 400 quando inválido
func idDaRota(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		dto.Fail(c, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return uint(id), true
}

// Create cria um novo admin
func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.CreateAdminRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	admin, err := h.adminService.Create(c.Request.Context(), services.CreateAdminInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Papel: entities.Papel(req.Papel),
		Ativo: ativo,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "admin criado", dto.ToAdminResponse(admin))
}

// Get busca um admin por ID
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	admin, err := h.adminService.Get(c.Request.Context(), id)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "admin encontrado", dto.ToAdminResponse(admin))
}

// List lista os admins não deletados
func (h *AdminHandler) List(c *gin.Context) {
	filters := repositories.AdminFilters{}
	if papel := c.Query("papel"); papel != "" {
		p := entities.Papel(papel)
		filters.Papel = &p
	}
	if ativo := c.Query("ativo"); ativo != "" {
		v := ativo == "true"
		filters.Ativo = &v
	}

	admins, err := h.adminService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "admins listados", dto.ToAdminResponses(admins))
}

// Update aplica uma atualização parcial em um admin
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.UpdateAdminInput{
		Nome:  req.Nome,
		Senha: req.Senha,
		Ativo: req.Ativo,
	}
	if req.Papel != nil {
		papel := entities.Papel(*req.Papel)
		input.Papel = &papel
	}

	admin, err := h.adminService.Update(c.Request.Context(), id, input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "admin atualizado", dto.ToAdminResponse(admin))
}

// Delete faz o soft delete de um admin
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), id); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "admin deletado", nil)
}
