package services

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// GrupoService contém a lógica de negócio para grupos
type GrupoService struct {
	grupoRepo repositories.GrupoRepository
	logger    ports.Logger
}

// NewGrupoService cria um novo GrupoService
func NewGrupoService(grupoRepo repositories.GrupoRepository, logger ports.Logger) *GrupoService {
	return &GrupoService{
		grupoRepo: grupoRepo,
		logger:    logger,
	}
}

// CreateGrupoInput representa os dados para criar um grupo
type CreateGrupoInput struct {
	Nome      string
	Descricao string
	Ativo     bool
}

// UpdateGrupoInput representa uma atualização parcial de grupo
type UpdateGrupoInput struct {
	Nome      *string
	Descricao *string
	Ativo     *bool
}

// Create cria um novo grupo
func (s *GrupoService) Create(ctx context.Context, input CreateGrupoInput) (*entities.Grupo, error) {
	grupo := &entities.Grupo{
		Nome:      input.Nome,
		Descricao: input.Descricao,
		Ativo:     input.Ativo,
	}

	if err := grupo.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.grupoRepo.Create(ctx, grupo); err != nil {
		return nil, errors.Internal("falha ao criar grupo", err)
	}

	s.logger.Info("grupo criado", "grupo_id", grupo.ID, "nome", grupo.Nome)
	return grupo, nil
}

// Get busca um grupo por ID
func (s *GrupoService) Get(ctx context.Context, id uint) (*entities.Grupo, error) {
	grupo, err := s.grupoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar grupo", err)
	}
	if grupo == nil {
		return nil, errors.NotFound("grupo")
	}
	return grupo, nil
}

// List lista grupos ordenados por nome
func (s *GrupoService) List(ctx context.Context) ([]*entities.Grupo, error) {
	return s.grupoRepo.List(ctx)
}

// Update aplica uma atualização parcial
func (s *GrupoService) Update(ctx context.Context, id uint, input UpdateGrupoInput) (*entities.Grupo, error) {
	grupo, err := s.grupoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar grupo", err)
	}
	if grupo == nil {
		return nil, errors.NotFound("grupo")
	}

	if input.Nome != nil {
		grupo.Nome = *input.Nome
	}
	if input.Descricao != nil {
		grupo.Descricao = *input.Descricao
	}
	if input.Ativo != nil {
		grupo.Ativo = *input.Ativo
	}

	if err := grupo.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.grupoRepo.Update(ctx, grupo); err != nil {
		return nil, errors.Internal("falha ao atualizar grupo", err)
	}

	return grupo, nil
}

// Delete faz o soft delete de um grupo
func (s *GrupoService) Delete(ctx context.Context, id uint) error {
	grupo, err := s.grupoRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Internal("falha ao buscar grupo", err)
	}
	if grupo == nil {
		return errors.NotFound("grupo")
	}

	if err := s.grupoRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar grupo", err)
	}

	s.logger.Info("grupo deletado", "grupo_id", id)
	return nil
}
