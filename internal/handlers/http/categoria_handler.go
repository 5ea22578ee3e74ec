package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// CategoriaHandler lida com requisições HTTP de categorias
type CategoriaHandler struct {
	categoriaService *services.CategoriaService
}

// NewCategoriaHandler cria um novo CategoriaHandler
func NewCategoriaHandler(categoriaService *services.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{categoriaService: categoriaService}
}

// Create cria uma nova categoria
// @Summary      Criar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.CreateCategoriaRequest  true  "Categoria"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/categorias [post]
func (h *CategoriaHandler) Create(c *gin.Context) {
	var req dto.CreateCategoriaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	categoria, err := h.categoriaService.Create(c.Request.Context(), services.CreateCategoriaInput{
		Nome:  req.Nome,
		Tipo:  entities.TipoCategoria(req.Tipo),
		Ativo: ativo,
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "categoria criada", dto.ToCategoriaResponse(categoria))
}

// Get busca uma categoria por ID
// @Summary      Buscar categoria
// @Tags         categorias
// @Produce      json
// @Param        id  path  int  true  "ID da categoria"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/categorias/{id} [get]
func (h *CategoriaHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	categoria, err := h.categoriaService.Get(c.Request.Context(), id)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "categoria encontrada", dto.ToCategoriaResponse(categoria))
}

// List lista categorias com filtros opcionais de tipo e ativo
// @Summary      Listar categorias
// @Tags         categorias
// @Produce      json
// @Param        tipo   query  string  false  "receita ou despesa"
// @Param        ativo  query  bool    false  "somente ativas"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/categorias [get]
func (h *CategoriaHandler) List(c *gin.Context) {
	filters := repositories.CategoriaFilters{}
	if tipo := c.Query("tipo"); tipo != "" {
		t := entities.TipoCategoria(tipo)
		filters.Tipo = &t
	}
	if ativo := c.Query("ativo"); ativo != "" {
		v := ativo == "true"
		filters.Ativo = &v
	}

	categorias, err := h.categoriaService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "categorias listadas", dto.ToCategoriaResponses(categorias))
}

// Update aplica uma atualização parcial em uma categoria
func (h *CategoriaHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoriaRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.UpdateCategoriaInput{
		Nome:  req.Nome,
		Ativo: req.Ativo,
	}
	if req.Tipo != nil {
		tipo := entities.TipoCategoria(*req.Tipo)
		input.Tipo = &tipo
	}

	categoria, err := h.categoriaService.Update(c.Request.Context(), id, input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "categoria atualizada", dto.ToCategoriaResponse(categoria))
}

// Delete faz o soft delete de uma categoria
func (h *CategoriaHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.categoriaService.Delete(c.Request.Context(), id); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "categoria deletada", nil)
}
