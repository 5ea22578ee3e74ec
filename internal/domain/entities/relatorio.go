package entities

import (
	"errors"
	"time"
)

// TipoRelatorio seleciona o layout do gráfico gerado
type TipoRelatorio string

const (
	TipoRelatorioDashboardGeral        TipoRelatorio = "dashboard_geral"
	TipoRelatorioPizzaReceitas         TipoRelatorio = "pizza_receitas"
	TipoRelatorioPizzaDespesas         TipoRelatorio = "pizza_despesas"
	TipoRelatorioBarrasDespesas        TipoRelatorio = "barras_despesas"
	TipoRelatorioComparativo           TipoRelatorio = "comparativo"
	TipoRelatorioCategoriasEspecificas TipoRelatorio = "categorias_especificas"
)

// Valido verifica se o tipo de relatório é conhecido
func (t TipoRelatorio) Valido() bool {
	switch t {
	case TipoRelatorioDashboardGeral, TipoRelatorioPizzaReceitas,
		TipoRelatorioPizzaDespesas, TipoRelatorioBarrasDespesas,
		TipoRelatorioComparativo, TipoRelatorioCategoriasEspecificas:
		return true
	}
	return false
}

// FormatoImagem é o formato do arquivo gerado
type FormatoImagem string

const (
	FormatoImagemPNG FormatoImagem = "png"
	FormatoImagemJPG FormatoImagem = "jpg"
)

// Valido verifica se o formato é conhecido
func (f FormatoImagem) Valido() bool {
	return f == FormatoImagemPNG || f == FormatoImagemJPG
}

// Relatorio registra uma imagem de relatório já gerada e publicada
type Relatorio struct {
	ID                uint
	UsuarioID         uint
	TipoRelatorio     TipoRelatorio
	DataInicio        time.Time
	DataFim           time.Time
	FiltroTipo        string
	FiltroCategoriaID *uint
	URLImagem         string
	Formato           FormatoImagem
	CriadoEm          time.Time
}

// Validate valida regras de negócio da entidade Relatorio
func (r *Relatorio) Validate() error {
	if r.UsuarioID == 0 {
		return errors.New("usuario_id é obrigatório")
	}

	if !r.TipoRelatorio.Valido() {
		return errors.New("tipo_relatorio inválido")
	}

	if !r.Formato.Valido() {
		return errors.New("formato deve ser png ou jpg")
	}

	return nil
}
