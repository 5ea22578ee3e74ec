package services

import (
	"context"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// MetaService contém a lógica de negócio para metas semanais
type MetaService struct {
	metaRepo    repositories.MetaRepository
	usuarioRepo repositories.UsuarioRepository
	logger      ports.Logger
}

// NewMetaService cria um novo MetaService
func NewMetaService(
	metaRepo repositories.MetaRepository,
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
) *MetaService {
	return &MetaService{
		metaRepo:    metaRepo,
		usuarioRepo: usuarioRepo,
		logger:      logger,
	}
}

// CreateMetaInput representa os dados para criar uma meta
type CreateMetaInput struct {
	UsuarioID  uint
	Descricao  string
	TipoMeta   entities.TipoMeta
	DataInicio time.Time
	DataFim    time.Time
}

// UpdateMetaInput representa uma atualização parcial de meta
type UpdateMetaInput struct {
	Descricao  *string
	TipoMeta   *entities.TipoMeta
	DataInicio *time.Time
	DataFim    *time.Time
}

// Create cria uma nova meta para um usuário dentro do escopo
func (s *MetaService) Create(ctx context.Context, agentIDs []int64, input CreateMetaInput) (*entities.Meta, error) {
	if err := s.verificarUsuario(ctx, input.UsuarioID, agentIDs); err != nil {
		return nil, err
	}

	meta := &entities.Meta{
		UsuarioID:  input.UsuarioID,
		Descricao:  input.Descricao,
		TipoMeta:   input.TipoMeta,
		DataInicio: input.DataInicio,
		DataFim:    input.DataFim,
	}

	if err := meta.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.metaRepo.Create(ctx, meta); err != nil {
		return nil, errors.Internal("falha ao criar meta", err)
	}

	s.logger.Info("meta criada", "meta_id", meta.ID, "usuario_id", meta.UsuarioID)
	return meta, nil
}

// Get busca uma meta por ID dentro do escopo de agentes
func (s *MetaService) Get(ctx context.Context, id uint, agentIDs []int64) (*entities.Meta, error) {
	meta, err := s.metaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar meta", err)
	}
	if meta == nil {
		return nil, errors.NotFound("meta")
	}
	if err := s.verificarUsuario(ctx, meta.UsuarioID, agentIDs); err != nil {
		return nil, errors.NotFound("meta")
	}
	return meta, nil
}

// List lista metas respeitando o escopo de agentes do chamador
func (s *MetaService) List(ctx context.Context, filters repositories.MetaFilters) ([]*entities.Meta, error) {
	return s.metaRepo.List(ctx, filters)
}

// Update aplica uma atualização parcial
func (s *MetaService) Update(ctx context.Context, id uint, agentIDs []int64, input UpdateMetaInput) (*entities.Meta, error) {
	meta, err := s.Get(ctx, id, agentIDs)
	if err != nil {
		return nil, err
	}

	if input.Descricao != nil {
		meta.Descricao = *input.Descricao
	}
	if input.TipoMeta != nil {
		meta.TipoMeta = *input.TipoMeta
	}
	if input.DataInicio != nil {
		meta.DataInicio = *input.DataInicio
	}
	if input.DataFim != nil {
		meta.DataFim = *input.DataFim
	}

	if err := meta.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.metaRepo.Update(ctx, meta); err != nil {
		return nil, errors.Internal("falha ao atualizar meta", err)
	}

	return meta, nil
}

// MarcarCumprida registra a resposta do usuário sobre a meta. Chamadas
// repetidas sobrescrevem a resposta anterior.
func (s *MetaService) MarcarCumprida(ctx context.Context, id uint, agentIDs []int64, cumprida bool) (*entities.Meta, error) {
	meta, err := s.Get(ctx, id, agentIDs)
	if err != nil {
		return nil, err
	}

	meta.MarcarCumprida(cumprida)

	if err := s.metaRepo.Update(ctx, meta); err != nil {
		return nil, errors.Internal("falha ao atualizar meta", err)
	}

	s.logger.Info("meta respondida", "meta_id", meta.ID, "cumprida", cumprida)
	return meta, nil
}

// Delete faz o soft delete de uma meta
func (s *MetaService) Delete(ctx context.Context, id uint, agentIDs []int64) error {
	if _, err := s.Get(ctx, id, agentIDs); err != nil {
		return err
	}

	if err := s.metaRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar meta", err)
	}

	s.logger.Info("meta deletada", "meta_id", id)
	return nil
}

func (s *MetaService) verificarUsuario(ctx context.Context, usuarioID uint, agentIDs []int64) error {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return errors.NotFound("usuário")
	}
	return nil
}
