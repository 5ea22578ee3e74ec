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

// QuestionarioHandler lida com requisições HTTP dos questionários de
// onboarding
type QuestionarioHandler struct {
	questionarioService *services.QuestionarioService
	usuarioService      *services.UsuarioService
}

// NewQuestionarioHandler cria um novo QuestionarioHandler
func NewQuestionarioHandler(
	questionarioService *services.QuestionarioService,
	usuarioService *services.UsuarioService,
) *QuestionarioHandler {
	return &QuestionarioHandler{
		questionarioService: questionarioService,
		usuarioService:      usuarioService,
	}
}

// Create registra um questionário respondido
func (h *QuestionarioHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionarioRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.CreateQuestionarioInput{UsuarioID: req.UsuarioID}
	copy(input.Respostas[:], req.Respostas)

	questionario, err := h.questionarioService.Create(c.Request.Context(), middleware.EscopoAgentes(c), input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "questionário registrado", dto.ToQuestionarioResponse(questionario))
}

// Get busca um questionário dentro do escopo da sessão
func (h *QuestionarioHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	questionario, err := h.questionarioService.Get(c.Request.Context(), id, middleware.EscopoAgentes(c))
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "questionário encontrado", dto.ToQuestionarioResponse(questionario))
}

// List lista questionários no escopo
func (h *QuestionarioHandler) List(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	questionarios, err := h.questionarioService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "questionários listados", dto.ToQuestionarioResponses(questionarios))
}

// Exportar devolve os questionários do escopo em CSV
func (h *QuestionarioHandler) Exportar(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	questionarios, err := h.questionarioService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	usuarios, err := h.usuarioService.List(c.Request.Context(), repositories.UsuarioFilters{AgentIDs: filters.AgentIDs})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	conteudo := services.CSVQuestionarios(questionarios, services.NomesUsuarios(usuarios))
	escreverCSV(c, "questionarios.csv", conteudo)
}

func (h *QuestionarioHandler) filtersDaQuery(c *gin.Context) (repositories.QuestionarioFilters, bool) {
	filters := repositories.QuestionarioFilters{AgentIDs: middleware.EscopoAgentes(c)}

	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		id, err := strconv.ParseUint(usuarioID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "usuario_id inválido")
			return filters, false
		}
		uid := uint(id)
		filters.UsuarioID = &uid
	}
	return filters, true
}
