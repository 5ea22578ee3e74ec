package http

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP de usuários finais
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// Create cria um novo usuário
// @Summary      Criar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.CreateUsuarioRequest  true  "Usuário"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/usuarios [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	usuario, err := h.usuarioService.Create(c.Request.Context(), services.CreateUsuarioInput{
		ChatID:   req.ChatID,
		AgentID:  req.AgentID,
		Nome:     req.Nome,
		Telefone: req.Telefone,
		GrupoID:  req.GrupoID,
		Status:   entities.StatusUsuario(req.Status),
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "usuário criado", dto.ToUsuarioResponse(usuario))
}

// Get busca um usuário dentro do escopo da sessão
// @Summary      Buscar usuário
// @Tags         usuarios
// @Produce      json
// @Param        id  path  int  true  "ID do usuário"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/usuarios/{id} [get]
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.Get(c.Request.Context(), id, middleware.EscopoAgentes(c))
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "usuário encontrado", dto.ToUsuarioResponse(usuario))
}

// List lista usuários no escopo, com filtros de grupo e status
// @Summary      Listar usuários
// @Tags         usuarios
// @Produce      json
// @Param        grupo_id  query  int     false  "Filtrar por grupo"
// @Param        status    query  string  false  "active, inactive ou deleted"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	filters := repositories.UsuarioFilters{AgentIDs: middleware.EscopoAgentes(c)}

	if grupoID := c.Query("grupo_id"); grupoID != "" {
		id, err := strconv.ParseUint(grupoID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "grupo_id inválido")
			return
		}
		gid := uint(id)
		filters.GrupoID = &gid
	}
	if status := c.Query("status"); status != "" {
		st := entities.StatusUsuario(status)
		filters.Status = &st
	}

	usuarios, err := h.usuarioService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "usuários listados", dto.ToUsuarioResponses(usuarios))
}

// Update aplica uma atualização parcial em um usuário do escopo
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateUsuarioRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.UpdateUsuarioInput{
		ChatID:   req.ChatID,
		Nome:     req.Nome,
		Telefone: req.Telefone,
		GrupoID:  req.GrupoID,
	}
	if req.Status != nil {
		status := entities.StatusUsuario(*req.Status)
		input.Status = &status
	}

	usuario, err := h.usuarioService.Update(c.Request.Context(), id, middleware.EscopoAgentes(c), input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "usuário atualizado", dto.ToUsuarioResponse(usuario))
}

// Delete faz o soft delete de um usuário do escopo
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.usuarioService.Delete(c.Request.Context(), id, middleware.EscopoAgentes(c)); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "usuário deletado", nil)
}

// Importar recebe uma planilha XLSX ou CSV no campo multipart "arquivo"
// e faz o upsert em lote. Linhas inválidas são reportadas uma a uma sem
// interromper o restante.
func (h *UsuarioHandler) Importar(c *gin.Context) {
	arquivo, header, err := c.Request.FormFile("arquivo")
	if err != nil {
		dto.Fail(c, http.StatusBadRequest, "campo de arquivo 'arquivo' não informado")
		return
	}
	defer arquivo.Close()

	var linhas []services.LinhaImportacao
	if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		linhas, err = lerXLSX(arquivo)
	} else {
		linhas, err = lerCSV(arquivo)
	}
	if err != nil {
		dto.Fail(c, http.StatusBadRequest, "falha ao ler a planilha: "+err.Error())
		return
	}

	if len(linhas) == 0 {
		dto.Fail(c, http.StatusBadRequest, "planilha sem linhas de dados")
		return
	}

	resultado := h.usuarioService.ImportarEmLote(c.Request.Context(), linhas)
	dto.OK(c, http.StatusOK, "importação concluída", dto.ImportacaoResponse{
		Criados:     resultado.Criados,
		Atualizados: resultado.Atualizados,
		Erros:       resultado.Erros,
	})
}

// lerXLSX lê a primeira planilha do arquivo, pulando o cabeçalho
func lerXLSX(r io.Reader) ([]services.LinhaImportacao, error) {
	planilha, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer planilha.Close()

	abas := planilha.GetSheetList()
	if len(abas) == 0 {
		return nil, io.EOF
	}

	registros, err := planilha.GetRows(abas[0])
	if err != nil {
		return nil, err
	}

	return montarLinhas(registros), nil
}

// lerCSV lê o arquivo como CSV separado por vírgula, pulando o cabeçalho
func lerCSV(r io.Reader) ([]services.LinhaImportacao, error) {
	leitor := csv.NewReader(r)
	leitor.FieldsPerRecord = -1
	leitor.TrimLeadingSpace = true

	registros, err := leitor.ReadAll()
	if err != nil {
		return nil, err
	}

	return montarLinhas(registros), nil
}

// montarLinhas converte os registros brutos no formato do serviço.
// Ordem esperada das colunas: nome, telefone, agent_id, grupo_id
// (opcional). A primeira linha é tratada como cabeçalho.
func montarLinhas(registros [][]string) []services.LinhaImportacao {
	linhas := make([]services.LinhaImportacao, 0, len(registros))

	for i, registro := range registros {
		if i == 0 {
			continue
		}

		linha := services.LinhaImportacao{Linha: i + 1}
		if len(registro) > 0 {
			linha.Nome = strings.TrimSpace(registro[0])
		}
		if len(registro) > 1 {
			linha.Telefone = strings.TrimSpace(registro[1])
		}
		if len(registro) > 2 {
			linha.AgentID, _ = strconv.ParseInt(strings.TrimSpace(registro[2]), 10, 64)
		}
		if len(registro) > 3 && strings.TrimSpace(registro[3]) != "" {
			if grupoID, err := strconv.ParseUint(strings.TrimSpace(registro[3]), 10, 32); err == nil {
				gid := uint(grupoID)
				linha.GrupoID = &gid
			}
		}

		linhas = append(linhas, linha)
	}
	return linhas
}
