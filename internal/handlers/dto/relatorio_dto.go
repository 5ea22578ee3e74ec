package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// GerarRelatorioRequest é o pedido de geração de relatório em imagem
type GerarRelatorioRequest struct {
	UsuarioID         uint      `json:"usuario_id" binding:"required"`
	TipoRelatorio     string    `json:"tipo_relatorio" binding:"required,oneof=dashboard_geral pizza_receitas pizza_despesas barras_despesas comparativo categorias_especificas"`
	DataInicio        time.Time `json:"data_inicio" binding:"required"`
	DataFim           time.Time `json:"data_fim" binding:"required"`
	FiltroTipo        string    `json:"filtro_tipo" binding:"omitempty,oneof=receita despesa"`
	FiltroCategoriaID *uint     `json:"filtro_categoria_id"`
	Formato           string    `json:"formato" binding:"omitempty,oneof=png jpg"`
}

// RelatorioResponse é a visão pública de um relatório gerado
type RelatorioResponse struct {
	ID                uint      `json:"id"`
	UsuarioID         uint      `json:"usuario_id"`
	TipoRelatorio     string    `json:"tipo_relatorio"`
	DataInicio        time.Time `json:"data_inicio"`
	DataFim           time.Time `json:"data_fim"`
	FiltroTipo        string    `json:"filtro_tipo,omitempty"`
	FiltroCategoriaID *uint     `json:"filtro_categoria_id,omitempty"`
	URLImagem         string    `json:"url_imagem"`
	Formato           string    `json:"formato"`
	CriadoEm          time.Time `json:"criado_em"`
}

// ToRelatorioResponse converte a entidade para a visão pública
func ToRelatorioResponse(relatorio *entities.Relatorio) RelatorioResponse {
	return RelatorioResponse{
		ID:                relatorio.ID,
		UsuarioID:         relatorio.UsuarioID,
		TipoRelatorio:     string(relatorio.TipoRelatorio),
		DataInicio:        relatorio.DataInicio,
		DataFim:           relatorio.DataFim,
		FiltroTipo:        relatorio.FiltroTipo,
		FiltroCategoriaID: relatorio.FiltroCategoriaID,
		URLImagem:         relatorio.URLImagem,
		Formato:           string(relatorio.Formato),
		CriadoEm:          relatorio.CriadoEm,
	}
}

// ToRelatorioResponses converte uma lista de relatórios
func ToRelatorioResponses(relatorios []*entities.Relatorio) []RelatorioResponse {
	saida := make([]RelatorioResponse, 0, len(relatorios))
	for _, r := range relatorios {
		saida = append(saida, ToRelatorioResponse(r))
	}
	return saida
}
