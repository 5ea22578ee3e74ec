package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// RelatorioHandler lida com a geração e o histórico de relatórios em
// imagem
type RelatorioHandler struct {
	relatorioService *services.RelatorioService
}

// NewRelatorioHandler cria um novo RelatorioHandler
func NewRelatorioHandler(relatorioService *services.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{relatorioService: relatorioService}
}

// Gerar renderiza, publica e registra um relatório
func (h *RelatorioHandler) Gerar(c *gin.Context) {
	var req dto.GerarRelatorioRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	relatorio, err := h.relatorioService.Gerar(c.Request.Context(), middleware.EscopoAgentes(c), services.GerarRelatorioInput{
		UsuarioID:         req.UsuarioID,
		TipoRelatorio:     entities.TipoRelatorio(req.TipoRelatorio),
		DataInicio:        req.DataInicio,
		DataFim:           req.DataFim,
		FiltroTipo:        req.FiltroTipo,
		FiltroCategoriaID: req.FiltroCategoriaID,
		Formato:           entities.FormatoImagem(req.Formato),
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "relatório gerado", dto.ToRelatorioResponse(relatorio))
}

// Historico lista os relatórios já gerados de um usuário
func (h *RelatorioHandler) Historico(c *gin.Context) {
	usuarioID := c.Query("usuario_id")
	if usuarioID == "" {
		dto.Fail(c, http.StatusBadRequest, "usuario_id é obrigatório")
		return
	}

	id, err := strconv.ParseUint(usuarioID, 10, 32)
	if err != nil {
		dto.Fail(c, http.StatusBadRequest, "usuario_id inválido")
		return
	}

	relatorios, err := h.relatorioService.Historico(c.Request.Context(), uint(id), middleware.EscopoAgentes(c))
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "relatórios listados", dto.ToRelatorioResponses(relatorios))
}
