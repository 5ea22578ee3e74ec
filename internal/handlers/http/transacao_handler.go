package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// TransacaoHandler lida com requisições HTTP de transações
type TransacaoHandler struct {
	transacaoService *services.TransacaoService
	usuarioService   *services.UsuarioService
	categoriaService *services.CategoriaService
}

// NewTransacaoHandler cria um novo TransacaoHandler
func NewTransacaoHandler(
	transacaoService *services.TransacaoService,
	usuarioService *services.UsuarioService,
	categoriaService *services.CategoriaService,
) *TransacaoHandler {
	return &TransacaoHandler{
		transacaoService: transacaoService,
		usuarioService:   usuarioService,
		categoriaService: categoriaService,
	}
}

// escreverCSV envia o conteúdo como anexo CSV compatível com Excel
func escreverCSV(c *gin.Context, nomeArquivo, conteudo string) {
	c.Header("Content-Disposition", `attachment; filename=`+nomeArquivo)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(conteudo))
}

// periodoDaQuery lê data_inicio/data_fim no formato 2006-01-02
func periodoDaQuery(c *gin.Context) (inicio, fim *time.Time, ok bool) {
	if v := c.Query("data_inicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "data_inicio inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		inicio = &t
	}
	if v := c.Query("data_fim"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "data_fim inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		// Fim inclusivo: avança para o último instante do dia
		t = t.Add(24*time.Hour - time.Second)
		fim = &t
	}
	return inicio, fim, true
}

// Create cria uma nova transação
// @Summary      Criar transação
// @Tags         transacoes
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.CreateTransacaoRequest  true  "Transação"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/transacoes [post]
func (h *TransacaoHandler) Create(c *gin.Context) {
	var req dto.CreateTransacaoRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	transacao, err := h.transacaoService.Create(c.Request.Context(), middleware.EscopoAgentes(c), services.CreateTransacaoInput{
		UsuarioID:     req.UsuarioID,
		Tipo:          entities.TipoTransacao(req.Tipo),
		TipoCaixa:     entities.TipoCaixa(req.TipoCaixa),
		Valor:         req.Valor,
		CategoriaID:   req.CategoriaID,
		Descricao:     req.Descricao,
		DataTransacao: req.DataTransacao,
		TipoEntrada:   entities.TipoEntrada(req.TipoEntrada),
	})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusCreated, "transação criada", dto.ToTransacaoResponse(transacao))
}

// Get busca uma transação dentro do escopo da sessão
func (h *TransacaoHandler) Get(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	transacao, err := h.transacaoService.Get(c.Request.Context(), id, middleware.EscopoAgentes(c))
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "transação encontrada", dto.ToTransacaoResponse(transacao))
}

// List lista transações no escopo, com filtros opcionais
// @Summary      Listar transações
// @Tags         transacoes
// @Produce      json
// @Param        usuario_id    query  int     false  "Filtrar por usuário"
// @Param        tipo          query  string  false  "receita ou despesa"
// @Param        tipo_caixa    query  string  false  "pessoal ou negocio"
// @Param        categoria_id  query  int     false  "Filtrar por categoria"
// @Param        data_inicio   query  string  false  "AAAA-MM-DD"
// @Param        data_fim      query  string  false  "AAAA-MM-DD"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/transacoes [get]
func (h *TransacaoHandler) List(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	transacoes, err := h.transacaoService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "transações listadas", dto.ToTransacaoResponses(transacoes))
}

// Update aplica uma atualização parcial em uma transação do escopo
func (h *TransacaoHandler) Update(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var req dto.UpdateTransacaoRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	input := services.UpdateTransacaoInput{
		Valor:         req.Valor,
		CategoriaID:   req.CategoriaID,
		Descricao:     req.Descricao,
		DataTransacao: req.DataTransacao,
	}
	if req.Tipo != nil {
		tipo := entities.TipoTransacao(*req.Tipo)
		input.Tipo = &tipo
	}
	if req.TipoCaixa != nil {
		caixa := entities.TipoCaixa(*req.TipoCaixa)
		input.TipoCaixa = &caixa
	}
	if req.TipoEntrada != nil {
		entrada := entities.TipoEntrada(*req.TipoEntrada)
		input.TipoEntrada = &entrada
	}

	transacao, err := h.transacaoService.Update(c.Request.Context(), id, middleware.EscopoAgentes(c), input)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "transação atualizada", dto.ToTransacaoResponse(transacao))
}

// Delete faz o soft delete de uma transação do escopo
func (h *TransacaoHandler) Delete(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.transacaoService.Delete(c.Request.Context(), id, middleware.EscopoAgentes(c)); err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "transação deletada", nil)
}

// Exportar devolve as transações do escopo em CSV
func (h *TransacaoHandler) Exportar(c *gin.Context) {
	filters, ok := h.filtersDaQuery(c)
	if !ok {
		return
	}

	transacoes, err := h.transacaoService.List(c.Request.Context(), filters)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	usuarios, err := h.usuarioService.List(c.Request.Context(), repositories.UsuarioFilters{AgentIDs: filters.AgentIDs})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	categorias, err := h.categoriaService.List(c.Request.Context(), repositories.CategoriaFilters{})
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	conteudo := services.CSVTransacoes(transacoes, services.NomesUsuarios(usuarios), services.NomesCategorias(categorias))
	escreverCSV(c, "transacoes.csv", conteudo)
}

func (h *TransacaoHandler) filtersDaQuery(c *gin.Context) (repositories.TransacaoFilters, bool) {
	filters := repositories.TransacaoFilters{AgentIDs: middleware.EscopoAgentes(c)}

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
	if tipo := c.Query("tipo"); tipo != "" {
		t := entities.TipoTransacao(tipo)
		filters.Tipo = &t
	}
	if caixa := c.Query("tipo_caixa"); caixa != "" {
		tc := entities.TipoCaixa(caixa)
		filters.TipoCaixa = &tc
	}
	if categoriaID := c.Query("categoria_id"); categoriaID != "" {
		id, err := strconv.ParseUint(categoriaID, 10, 32)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "categoria_id inválido")
			return filters, false
		}
		cid := uint(id)
		filters.CategoriaID = &cid
	}

	return filters, true
}
