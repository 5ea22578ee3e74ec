package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TipoTransacao indica se a transação é entrada ou saída de dinheiro
type TipoTransacao string

const (
	TipoTransacaoReceita TipoTransacao = "receita"
	TipoTransacaoDespesa TipoTransacao = "despesa"
)

// Valido verifica se o tipo é conhecido
func (t TipoTransacao) Valido() bool {
	return t == TipoTransacaoReceita || t == TipoTransacaoDespesa
}

// TipoCaixa separa o caixa pessoal do caixa do negócio
type TipoCaixa string

const (
	TipoCaixaPessoal TipoCaixa = "pessoal"
	TipoCaixaNegocio TipoCaixa = "negocio"
)

// Valido verifica se o tipo de caixa é conhecido
func (t TipoCaixa) Valido() bool {
	return t == TipoCaixaPessoal || t == TipoCaixaNegocio
}

// TipoEntrada registra o canal pelo qual a transação foi capturada
type TipoEntrada string

const (
	TipoEntradaTexto  TipoEntrada = "texto"
	TipoEntradaAudio  TipoEntrada = "audio"
	TipoEntradaFoto   TipoEntrada = "foto"
	TipoEntradaManual TipoEntrada = "manual"
)

// Valido verifica se o canal de entrada é conhecido
func (t TipoEntrada) Valido() bool {
	switch t {
	case TipoEntradaTexto, TipoEntradaAudio, TipoEntradaFoto, TipoEntradaManual:
		return true
	}
	return false
}

// Transacao representa um lançamento financeiro de um usuário
type Transacao struct {
	ID            uint
	UsuarioID     uint
	Tipo          TipoTransacao
	TipoCaixa     TipoCaixa
	Valor         decimal.Decimal
	CategoriaID   *uint
	Descricao     string
	DataTransacao time.Time
	TipoEntrada   TipoEntrada
	CriadoEm      time.Time
	AtualizadoEm  time.Time
	DeletadoEm    *time.Time // Soft delete
}

// IsDeleted verifica se a transação foi deletada (soft delete)
func (t *Transacao) IsDeleted() bool {
	return t.DeletadoEm != nil
}

// SoftDelete marca a transação como deletada
func (t *Transacao) SoftDelete() {
	now := time.Now()
	t.DeletadoEm = &now
}

// Validate valida regras de negócio da entidade Transacao
func (t *Transacao) Validate() error {
	if t.UsuarioID == 0 {
		return errors.New("usuario_id é obrigatório")
	}

	if !t.Tipo.Valido() {
		return errors.New("tipo deve ser receita ou despesa")
	}

	if !t.TipoCaixa.Valido() {
		return errors.New("tipo_caixa deve ser pessoal ou negocio")
	}

	if t.Valor.LessThanOrEqual(decimal.Zero) {
		return errors.New("valor deve ser positivo")
	}

	if !t.TipoEntrada.Valido() {
		return errors.New("tipo_entrada inválido")
	}

	if t.DataTransacao.IsZero() {
		return errors.New("data_transacao é obrigatória")
	}

	return nil
}
