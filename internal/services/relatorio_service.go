package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/storage"
)

// RenderizadorGrafico transforma uma configuração Chart.js em bytes de
// imagem
type RenderizadorGrafico interface {
	Render(ctx context.Context, chartConfig json.RawMessage, formato string, width, height int) ([]byte, error)
}

// Paleta fixa dos gráficos, na ordem das fatias/barras
var coresGrafico = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// RelatorioService gera imagens de relatório financeiro e registra o
// histórico de geração
type RelatorioService struct {
	relatorioRepo repositories.RelatorioRepository
	transacaoRepo repositories.TransacaoRepository
	categoriaRepo repositories.CategoriaRepository
	usuarioRepo   repositories.UsuarioRepository
	renderizador  RenderizadorGrafico
	uploader      storage.Uploader
	logger        ports.Logger
}

// NewRelatorioService cria um novo RelatorioService
func NewRelatorioService(
	relatorioRepo repositories.RelatorioRepository,
	transacaoRepo repositories.TransacaoRepository,
	categoriaRepo repositories.CategoriaRepository,
	usuarioRepo repositories.UsuarioRepository,
	renderizador RenderizadorGrafico,
	uploader storage.Uploader,
	logger ports.Logger,
) *RelatorioService {
	return &RelatorioService{
		relatorioRepo: relatorioRepo,
		transacaoRepo: transacaoRepo,
		categoriaRepo: categoriaRepo,
		usuarioRepo:   usuarioRepo,
		renderizador:  renderizador,
		uploader:      uploader,
		logger:        logger,
	}
}

// GerarRelatorioInput representa o pedido de geração de um relatório
type GerarRelatorioInput struct {
	UsuarioID         uint
	TipoRelatorio     entities.TipoRelatorio
	DataInicio        time.Time
	DataFim           time.Time
	FiltroTipo        string // receita|despesa, usado por categorias_especificas
	FiltroCategoriaID *uint
	Formato           entities.FormatoImagem
}

// somaCategoria acumula o total de uma categoria em um corte
type somaCategoria struct {
	Nome  string
	Total decimal.Decimal
}

// Gerar agrupa as transações do período, monta a configuração Chart.js
// do tipo pedido, renderiza a imagem, publica no bucket e grava o
// histórico. Falha em qualquer etapa propaga, não há relatório parcial.
func (s *RelatorioService) Gerar(ctx context.Context, agentIDs []int64, input GerarRelatorioInput) (*entities.Relatorio, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, input.UsuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}

	formato := input.Formato
	if formato == "" {
		formato = entities.FormatoImagemPNG
	}

	relatorio := &entities.Relatorio{
		UsuarioID:         input.UsuarioID,
		TipoRelatorio:     input.TipoRelatorio,
		DataInicio:        input.DataInicio,
		DataFim:           input.DataFim,
		FiltroTipo:        input.FiltroTipo,
		FiltroCategoriaID: input.FiltroCategoriaID,
		Formato:           formato,
	}
	if err := relatorio.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	transacoes, err := s.transacaoRepo.List(ctx, repositories.TransacaoFilters{
		AgentIDs:   agentIDs,
		UsuarioID:  &input.UsuarioID,
		DataInicio: &input.DataInicio,
		DataFim:    &input.DataFim,
	})
	if err != nil {
		return nil, errors.Internal("falha ao listar transações", err)
	}

	chartConfig, err := s.montarGrafico(ctx, input, transacoes)
	if err != nil {
		return nil, err
	}

	imagem, err := s.renderizador.Render(ctx, chartConfig, string(formato), 900, 600)
	if err != nil {
		return nil, errors.Internal("falha ao renderizar relatório", err)
	}

	chave := fmt.Sprintf("relatorios/%s.%s", uuid.NewString(), formato)
	contentType := "image/png"
	if formato == entities.FormatoImagemJPG {
		contentType = "image/jpeg"
	}

	url, err := s.uploader.Upload(chave, bytes.NewReader(imagem), contentType)
	if err != nil {
		return nil, errors.Internal("falha ao publicar imagem do relatório", err)
	}
	relatorio.URLImagem = url

	if err := s.relatorioRepo.Create(ctx, relatorio); err != nil {
		return nil, errors.Internal("falha ao gravar relatório", err)
	}

	s.logger.Info("relatório gerado",
		"relatorio_id", relatorio.ID,
		"usuario_id", relatorio.UsuarioID,
		"tipo", relatorio.TipoRelatorio,
		"url", relatorio.URLImagem,
	)
	return relatorio, nil
}

// Historico lista os relatórios já gerados de um usuário
func (s *RelatorioService) Historico(ctx context.Context, usuarioID uint, agentIDs []int64) ([]*entities.Relatorio, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}

	relatorios, err := s.relatorioRepo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao listar relatórios", err)
	}
	return relatorios, nil
}

func (s *RelatorioService) montarGrafico(ctx context.Context, input GerarRelatorioInput, transacoes []*entities.Transacao) (json.RawMessage, error) {
	receitas := s.somarPorCategoria(ctx, transacoes, entities.TipoTransacaoReceita, nil)
	despesas := s.somarPorCategoria(ctx, transacoes, entities.TipoTransacaoDespesa, nil)

	periodo := fmt.Sprintf("%s a %s",
		input.DataInicio.Format("02/01/2006"),
		input.DataFim.Format("02/01/2006"),
	)

	switch input.TipoRelatorio {
	case entities.TipoRelatorioPizzaReceitas:
		return configPizza("Receitas por categoria — "+periodo, receitas)

	case entities.TipoRelatorioPizzaDespesas:
		return configPizza("Despesas por categoria — "+periodo, despesas)

	case entities.TipoRelatorioBarrasDespesas:
		return configBarras("Despesas por categoria — "+periodo, despesas)

	case entities.TipoRelatorioComparativo:
		return configComparativo(periodo, totalDe(receitas), totalDe(despesas))

	case entities.TipoRelatorioCategoriasEspecificas:
		tipo := entities.TipoTransacao(input.FiltroTipo)
		if !tipo.Valido() {
			return nil, errors.Validation("filtro_tipo deve ser receita ou despesa")
		}
		fatias := s.somarPorCategoria(ctx, transacoes, tipo, input.FiltroCategoriaID)
		return configPizza(fmt.Sprintf("%s por categoria — %s", tituloTipo(tipo), periodo), fatias)

	case entities.TipoRelatorioDashboardGeral:
		return configDashboardGeral(periodo, receitas, despesas)
	}

	return nil, errors.Validation("tipo_relatorio inválido")
}

// somarPorCategoria agrupa o valor das transações do tipo pedido pelo
// nome da categoria, preservando a ordem de primeira aparição
func (s *RelatorioService) somarPorCategoria(ctx context.Context, transacoes []*entities.Transacao, tipo entities.TipoTransacao, categoriaID *uint) []somaCategoria {
	const semCategoria = "sem categoria"

	nomes := map[uint]string{}
	indice := map[string]int{}
	somas := []somaCategoria{}

	for _, t := range transacoes {
		if t.Tipo != tipo {
			continue
		}
		if categoriaID != nil && (t.CategoriaID == nil || *t.CategoriaID != *categoriaID) {
			continue
		}

		nome := semCategoria
		if t.CategoriaID != nil {
			var ok bool
			if nome, ok = nomes[*t.CategoriaID]; !ok {
				nome = semCategoria
				if categoria, err := s.categoriaRepo.FindByID(ctx, *t.CategoriaID); err == nil && categoria != nil {
					nome = categoria.Nome
				}
				nomes[*t.CategoriaID] = nome
			}
		}

		if i, ok := indice[nome]; ok {
			somas[i].Total = somas[i].Total.Add(t.Valor)
			continue
		}
		indice[nome] = len(somas)
		somas = append(somas, somaCategoria{Nome: nome, Total: t.Valor})
	}

	return somas
}

func totalDe(somas []somaCategoria) decimal.Decimal {
	total := decimal.Zero
	for _, s := range somas {
		total = total.Add(s.Total)
	}
	return total
}

func tituloTipo(tipo entities.TipoTransacao) string {
	if tipo == entities.TipoTransacaoReceita {
		return "Receitas"
	}
	return "Despesas"
}

func rotulosEValores(somas []somaCategoria) ([]string, []float64) {
	rotulos := make([]string, 0, len(somas))
	valores := make([]float64, 0, len(somas))
	for _, s := range somas {
		rotulos = append(rotulos, s.Nome)
		v, _ := s.Total.Float64()
		valores = append(valores, v)
	}
	return rotulos, valores
}

func cores(n int) []string {
	saida := make([]string, n)
	for i := 0; i < n; i++ {
		saida[i] = coresGrafico[i%len(coresGrafico)]
	}
	return saida
}

func configPizza(titulo string, somas []somaCategoria) (json.RawMessage, error) {
	rotulos, valores := rotulosEValores(somas)
	return marshalChart(map[string]interface{}{
		"type": "pie",
		"data": map[string]interface{}{
			"labels": rotulos,
			"datasets": []map[string]interface{}{{
				"data":            valores,
				"backgroundColor": cores(len(valores)),
			}},
		},
		"options": opcoesTitulo(titulo),
	})
}

func configBarras(titulo string, somas []somaCategoria) (json.RawMessage, error) {
	rotulos, valores := rotulosEValores(somas)
	return marshalChart(map[string]interface{}{
		"type": "bar",
		"data": map[string]interface{}{
			"labels": rotulos,
			"datasets": []map[string]interface{}{{
				"label":           "Valor (R$)",
				"data":            valores,
				"backgroundColor": cores(len(valores)),
			}},
		},
		"options": opcoesTitulo(titulo),
	})
}

func configComparativo(periodo string, receitas, despesas decimal.Decimal) (json.RawMessage, error) {
	vr, _ := receitas.Float64()
	vd, _ := despesas.Float64()
	return marshalChart(map[string]interface{}{
		"type": "bar",
		"data": map[string]interface{}{
			"labels": []string{"Receitas", "Despesas"},
			"datasets": []map[string]interface{}{{
				"label":           "Total (R$)",
				"data":            []float64{vr, vd},
				"backgroundColor": []string{"#59a14f", "#e15759"},
			}},
		},
		"options": opcoesTitulo("Receitas x Despesas — " + periodo),
	})
}

// configDashboardGeral junta o comparativo e as duas aberturas por
// categoria em um único painel de barras agrupadas
func configDashboardGeral(periodo string, receitas, despesas []somaCategoria) (json.RawMessage, error) {
	rotulos := []string{}
	visto := map[string]bool{}
	for _, s := range append(append([]somaCategoria{}, receitas...), despesas...) {
		if !visto[s.Nome] {
			visto[s.Nome] = true
			rotulos = append(rotulos, s.Nome)
		}
	}

	serie := func(somas []somaCategoria) []float64 {
		porNome := map[string]decimal.Decimal{}
		for _, s := range somas {
			porNome[s.Nome] = s.Total
		}
		valores := make([]float64, len(rotulos))
		for i, nome := range rotulos {
			valores[i], _ = porNome[nome].Float64()
		}
		return valores
	}

	return marshalChart(map[string]interface{}{
		"type": "bar",
		"data": map[string]interface{}{
			"labels": rotulos,
			"datasets": []map[string]interface{}{
				{
					"label":           "Receitas (R$)",
					"data":            serie(receitas),
					"backgroundColor": "#59a14f",
				},
				{
					"label":           "Despesas (R$)",
					"data":            serie(despesas),
					"backgroundColor": "#e15759",
				},
			},
		},
		"options": opcoesTitulo("Panorama financeiro — " + periodo),
	})
}

func opcoesTitulo(titulo string) map[string]interface{} {
	return map[string]interface{}{
		"plugins": map[string]interface{}{
			"title": map[string]interface{}{
				"display": true,
				"text":    titulo,
			},
		},
	}
}

func marshalChart(config map[string]interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, errors.Internal("falha ao montar configuração do gráfico", err)
	}
	return raw, nil
}
