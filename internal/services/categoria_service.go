package services

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// CategoriaService contém a lógica de negócio para categorias
type CategoriaService struct {
	categoriaRepo repositories.CategoriaRepository
	logger        ports.Logger
}

// NewCategoriaService cria um novo CategoriaService
func NewCategoriaService(categoriaRepo repositories.CategoriaRepository, logger ports.Logger) *CategoriaService {
	return &CategoriaService{
		categoriaRepo: categoriaRepo,
		logger:        logger,
	}
}

// CreateCategoriaInput representa os dados para criar uma categoria
type CreateCategoriaInput struct {
	Nome  string
	Tipo  entities.TipoCategoria
	Ativo bool
}

// UpdateCategoriaInput representa uma atualização parcial de categoria
type UpdateCategoriaInput struct {
	Nome  *string
	Tipo  *entities.TipoCategoria
	Ativo *bool
}

// Create cria uma nova categoria
func (s *CategoriaService) Create(ctx context.Context, input CreateCategoriaInput) (*entities.Categoria, error) {
	categoria := &entities.Categoria{
		Nome:  input.Nome,
		Tipo:  input.Tipo,
		Ativo: input.Ativo,
	}

	if err := categoria.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.categoriaRepo.Create(ctx, categoria); err != nil {
		return nil, errors.Internal("falha ao criar categoria", err)
	}

	s.logger.Info("categoria criada", "categoria_id", categoria.ID, "nome", categoria.Nome)
	return categoria, nil
}

// Get busca uma categoria por ID
func (s *CategoriaService) Get(ctx context.Context, id uint) (*entities.Categoria, error) {
	categoria, err := s.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar categoria", err)
	}
	if categoria == nil {
		return nil, errors.NotFound("categoria")
	}
	return categoria, nil
}

// List lista categorias com filtros, ordenadas por nome
func (s *CategoriaService) List(ctx context.Context, filters repositories.CategoriaFilters) ([]*entities.Categoria, error) {
	return s.categoriaRepo.List(ctx, filters)
}

// Update aplica uma atualização parcial
func (s *CategoriaService) Update(ctx context.Context, id uint, input UpdateCategoriaInput) (*entities.Categoria, error) {
	categoria, err := s.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar categoria", err)
	}
	if categoria == nil {
		return nil, errors.NotFound("categoria")
	}

	if input.Nome != nil {
		categoria.Nome = *input.Nome
	}
	if input.Tipo != nil {
		categoria.Tipo = *input.Tipo
	}
	if input.Ativo != nil {
		categoria.Ativo = *input.Ativo
	}

	if err := categoria.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.categoriaRepo.Update(ctx, categoria); err != nil {
		return nil, errors.Internal("falha ao atualizar categoria", err)
	}

	return categoria, nil
}

// Delete faz o soft delete de uma categoria
func (s *CategoriaService) Delete(ctx context.Context, id uint) error {
	categoria, err := s.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Internal("falha ao buscar categoria", err)
	}
	if categoria == nil {
		return errors.NotFound("categoria")
	}

	if err := s.categoriaRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar categoria", err)
	}

	s.logger.Info("categoria deletada", "categoria_id", id)
	return nil
}
