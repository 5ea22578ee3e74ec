package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/domain/valueobjects"
)

// AdminService contém a lógica de negócio para administradores
type AdminService struct {
	adminRepo repositories.AdminRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(
	adminRepo repositories.AdminRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		uow:       uow,
		logger:    logger,
	}
}

// CreateAdminInput representa os dados para criar um admin
type CreateAdminInput struct {
	Nome  string
	Email string
	Senha string
	Papel entities.Papel
	Ativo bool
}

// UpdateAdminInput representa uma atualização parcial de admin.
// Senha vazia mantém o hash atual.
type UpdateAdminInput struct {
	Nome  *string
	Senha *string
	Papel *entities.Papel
	Ativo *bool
}

// Create cria um novo admin garantindo unicidade de email entre os
// registros não deletados
func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*entities.Admin, error) {
	s.logger.Info("criando admin", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.Validation("email inválido")
	}

	if len(input.Senha) < 8 {
		return nil, errors.Validation("senha deve ter pelo menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("falha ao gerar hash da senha", err)
	}

	admin := &entities.Admin{
		Nome:      input.Nome,
		Email:     email,
		SenhaHash: string(hash),
		Papel:     input.Papel,
		Ativo:     input.Ativo,
	}

	if err := admin.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	// Checagem de unicidade e criação na mesma transação.
	// Registros soft-deletados com o mesmo email não bloqueiam a criação.
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.adminRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return errors.Internal("falha ao verificar email", err)
		}
		if existente != nil {
			return errors.Conflict("já existe um admin com este email")
		}

		return s.adminRepo.Create(txCtx, admin)
	})
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// Get busca um admin por ID
func (s *AdminService) Get(ctx context.Context, id uint) (*entities.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil {
		return nil, errors.NotFound("admin")
	}
	return admin, nil
}

// List lista admins com filtros
func (s *AdminService) List(ctx context.Context, filters repositories.AdminFilters) ([]*entities.Admin, error) {
	return s.adminRepo.List(ctx, filters)
}

// Update aplica uma atualização parcial. A senha só é re-hasheada
// quando presente no payload; ausência mantém o hash armazenado.
func (s *AdminService) Update(ctx context.Context, id uint, input UpdateAdminInput) (*entities.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil {
		return nil, errors.NotFound("admin")
	}

	if input.Nome != nil {
		admin.Nome = *input.Nome
	}
	if input.Papel != nil {
		admin.Papel = *input.Papel
	}
	if input.Ativo != nil {
		admin.Ativo = *input.Ativo
	}
	if input.Senha != nil && *input.Senha != "" {
		if len(*input.Senha) < 8 {
			return nil, errors.Validation("senha deve ter pelo menos 8 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Internal("falha ao gerar hash da senha", err)
		}
		admin.SenhaHash = string(hash)
	}

	if err := admin.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, errors.Internal("falha ao atualizar admin", err)
	}

	s.logger.Info("admin atualizado", "admin_id", admin.ID)
	return admin, nil
}

// Delete faz o soft delete de um admin
func (s *AdminService) Delete(ctx context.Context, id uint) error {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil {
		return errors.NotFound("admin")
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar admin", err)
	}

	s.logger.Info("admin deletado", "admin_id", id)
	return nil
}
