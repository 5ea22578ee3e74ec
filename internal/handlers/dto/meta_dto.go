package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateMetaRequest é o corpo de criação de meta
type CreateMetaRequest struct {
	UsuarioID  uint      `json:"usuario_id" binding:"required"`
	Descricao  string    `json:"descricao" binding:"required"`
	TipoMeta   string    `json:"tipo_meta" binding:"required,oneof=vendas economia organizacao divida investimento"`
	DataInicio time.Time `json:"data_inicio" binding:"required"`
	DataFim    time.Time `json:"data_fim" binding:"required"`
}

// UpdateMetaRequest é o corpo de atualização parcial de meta
type UpdateMetaRequest struct {
	Descricao  *string    `json:"descricao"`
	TipoMeta   *string    `json:"tipo_meta" binding:"omitempty,oneof=vendas economia organizacao divida investimento"`
	DataInicio *time.Time `json:"data_inicio"`
	DataFim    *time.Time `json:"data_fim"`
}

// MarcarCumpridaRequest registra a resposta do usuário sobre a meta
type MarcarCumpridaRequest struct {
	Cumprida *bool `json:"cumprida" binding:"required"`
}

// MetaResponse é a visão pública de uma meta
type MetaResponse struct {
	ID           uint       `json:"id"`
	UsuarioID    uint       `json:"usuario_id"`
	Descricao    string     `json:"descricao"`
	TipoMeta     string     `json:"tipo_meta"`
	DataInicio   time.Time  `json:"data_inicio"`
	DataFim      time.Time  `json:"data_fim"`
	Cumprida     *bool      `json:"cumprida"`
	RespondidoEm *time.Time `json:"respondido_em,omitempty"`
	CriadoEm     time.Time  `json:"criado_em"`
	AtualizadoEm time.Time  `json:"atualizado_em"`
}

// ToMetaResponse converte a entidade para a visão pública
func ToMetaResponse(meta *entities.Meta) MetaResponse {
	return MetaResponse{
		ID:           meta.ID,
		UsuarioID:    meta.UsuarioID,
		Descricao:    meta.Descricao,
		TipoMeta:     string(meta.TipoMeta),
		DataInicio:   meta.DataInicio,
		DataFim:      meta.DataFim,
		Cumprida:     meta.Cumprida,
		RespondidoEm: meta.RespondidoEm,
		CriadoEm:     meta.CriadoEm,
		AtualizadoEm: meta.AtualizadoEm,
	}
}

// ToMetaResponses converte uma lista de metas
func ToMetaResponses(metas []*entities.Meta) []MetaResponse {
	saida := make([]MetaResponse, 0, len(metas))
	for _, m := range metas {
		saida = append(saida, ToMetaResponse(m))
	}
	return saida
}
