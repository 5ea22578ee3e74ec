package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateTransacaoRequest é o corpo de criação de transação
type CreateTransacaoRequest struct {
	UsuarioID     uint            `json:"usuario_id" binding:"required"`
	Tipo          string          `json:"tipo" binding:"required,oneof=receita despesa"`
	TipoCaixa     string          `json:"tipo_caixa" binding:"required,oneof=pessoal negocio"`
	Valor         decimal.Decimal `json:"valor" binding:"required"`
	CategoriaID   *uint           `json:"categoria_id"`
	Descricao     string          `json:"descricao"`
	DataTransacao time.Time       `json:"data_transacao" binding:"required"`
	TipoEntrada   string          `json:"tipo_entrada" binding:"omitempty,oneof=texto audio foto manual"`
}

// UpdateTransacaoRequest é o corpo de atualização parcial de transação
type UpdateTransacaoRequest struct {
	Tipo          *string          `json:"tipo" binding:"omitempty,oneof=receita despesa"`
	TipoCaixa     *string          `json:"tipo_caixa" binding:"omitempty,oneof=pessoal negocio"`
	Valor         *decimal.Decimal `json:"valor"`
	CategoriaID   *uint            `json:"categoria_id"`
	Descricao     *string          `json:"descricao"`
	DataTransacao *time.Time       `json:"data_transacao"`
	TipoEntrada   *string          `json:"tipo_entrada" binding:"omitempty,oneof=texto audio foto manual"`
}

// TransacaoResponse é a visão pública de uma transação
type TransacaoResponse struct {
	ID            uint            `json:"id"`
	UsuarioID     uint            `json:"usuario_id"`
	Tipo          string          `json:"tipo"`
	TipoCaixa     string          `json:"tipo_caixa"`
	Valor         decimal.Decimal `json:"valor"`
	CategoriaID   *uint           `json:"categoria_id,omitempty"`
	Descricao     string          `json:"descricao"`
	DataTransacao time.Time       `json:"data_transacao"`
	TipoEntrada   string          `json:"tipo_entrada"`
	CriadoEm      time.Time       `json:"criado_em"`
	AtualizadoEm  time.Time       `json:"atualizado_em"`
}

// ToTransacaoResponse converte a entidade para a visão pública
func ToTransacaoResponse(transacao *entities.Transacao) TransacaoResponse {
	return TransacaoResponse{
		ID:            transacao.ID,
		UsuarioID:     transacao.UsuarioID,
		Tipo:          string(transacao.Tipo),
		TipoCaixa:     string(transacao.TipoCaixa),
		Valor:         transacao.Valor,
		CategoriaID:   transacao.CategoriaID,
		Descricao:     transacao.Descricao,
		DataTransacao: transacao.DataTransacao,
		TipoEntrada:   string(transacao.TipoEntrada),
		CriadoEm:      transacao.CriadoEm,
		AtualizadoEm:  transacao.AtualizadoEm,
	}
}

// ToTransacaoResponses converte uma lista de transações
func ToTransacaoResponses(transacoes []*entities.Transacao) []TransacaoResponse {
	saida := make([]TransacaoResponse, 0, len(transacoes))
	for _, t := range transacoes {
		saida = append(saida, ToTransacaoResponse(t))
	}
	return saida
}
