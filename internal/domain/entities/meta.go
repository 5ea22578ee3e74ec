package entities

import (
	"errors"
	"time"
)

// TipoMeta classifica a meta semanal do usuário
type TipoMeta string

const (
	TipoMetaVendas       TipoMeta = "vendas"
	TipoMetaEconomia     TipoMeta = "economia"
	TipoMetaOrganizacao  TipoMeta = "organizacao"
	TipoMetaDivida       TipoMeta = "divida"
	TipoMetaInvestimento TipoMeta = "investimento"
)

// Valido verifica se o tipo de meta é conhecido
func (t TipoMeta) Valido() bool {
	switch t {
	case TipoMetaVendas, TipoMetaEconomia, TipoMetaOrganizacao, TipoMetaDivida, TipoMetaInvestimento:
		return true
	}
	return false
}

// Meta representa uma meta semanal de um usuário.
// Cumprida é nil enquanto o usuário não respondeu.
type Meta struct {
	ID           uint
	UsuarioID    uint
	Descricao    string
	TipoMeta     TipoMeta
	DataInicio   time.Time
	DataFim      time.Time
	Cumprida     *bool
	RespondidoEm *time.Time
	CriadoEm     time.Time
	AtualizadoEm time.Time
	DeletadoEm   *time.Time // Soft delete
}

// Pendente verifica se a meta ainda não foi respondida
func (m *Meta) Pendente() bool {
	return m.Cumprida == nil
}

// MarcarCumprida registra a resposta do usuário. Chamadas repetidas
// sobrescrevem a anterior (last-write-wins).
func (m *Meta) MarcarCumprida(cumprida bool) {
	now := time.Now()
	m.Cumprida = &cumprida
	m.RespondidoEm = &now
}

// IsDeleted verifica se a meta foi deletada (soft delete)
func (m *Meta) IsDeleted() bool {
	return m.DeletadoEm != nil
}

// SoftDelete marca a meta como deletada
func (m *Meta) SoftDelete() {
	now := time.Now()
	m.DeletadoEm = &now
}

// Validate valida regras de negócio da entidade Meta
func (m *Meta) Validate() error {
	if m.UsuarioID == 0 {
		return errors.New("usuario_id é obrigatório")
	}

	if m.Descricao == "" {
		return errors.New("descricao é obrigatória")
	}

	if !m.TipoMeta.Valido() {
		return errors.New("tipo_meta inválido")
	}

	if m.DataFim.Before(m.DataInicio) {
		return errors.New("data_fim deve ser posterior a data_inicio")
	}

	return nil
}
