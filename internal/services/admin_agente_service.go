package services

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// AdminAgenteService contém a lógica de negócio dos vínculos admin-agente
type AdminAgenteService struct {
	vinculoRepo repositories.AdminAgenteRepository
	adminRepo   repositories.AdminRepository
	logger      ports.Logger
}

// NewAdminAgenteService cria um novo AdminAgenteService
func NewAdminAgenteService(
	vinculoRepo repositories.AdminAgenteRepository,
	adminRepo repositories.AdminRepository,
	logger ports.Logger,
) *AdminAgenteService {
	return &AdminAgenteService{
		vinculoRepo: vinculoRepo,
		adminRepo:   adminRepo,
		logger:      logger,
	}
}

// Create vincula um admin a um agente, garantindo unicidade do par
func (s *AdminAgenteService) Create(ctx context.Context, adminID uint, agentID int64) (*entities.AdminAgente, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil {
		return nil, errors.NotFound("admin")
	}

	existente, err := s.vinculoRepo.FindByAdminEAgente(ctx, adminID, agentID)
	if err != nil {
		return nil, errors.Internal("falha ao verificar vínculo", err)
	}
	if existente != nil {
		return nil, errors.Conflict("admin já vinculado a este agente")
	}

	vinculo := &entities.AdminAgente{
		AdminID: adminID,
		AgentID: agentID,
	}

	if err := vinculo.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.vinculoRepo.Create(ctx, vinculo); err != nil {
		return nil, errors.Internal("falha ao criar vínculo", err)
	}

	s.logger.Info("vínculo admin-agente criado", "admin_id", adminID, "agent_id", agentID)
	return vinculo, nil
}

// List lista todos os vínculos
func (s *AdminAgenteService) List(ctx context.Context) ([]*entities.AdminAgente, error) {
	return s.vinculoRepo.List(ctx)
}

// ListByAdmin lista os vínculos de um admin
func (s *AdminAgenteService) ListByAdmin(ctx context.Context, adminID uint) ([]*entities.AdminAgente, error) {
	return s.vinculoRepo.ListByAdmin(ctx, adminID)
}

// Delete remove o vínculo fisicamente
func (s *AdminAgenteService) Delete(ctx context.Context, id uint) error {
	vinculo, err := s.vinculoRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Internal("falha ao buscar vínculo", err)
	}
	if vinculo == nil {
		return errors.NotFound("vínculo admin-agente")
	}

	if err := s.vinculoRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao remover vínculo", err)
	}

	s.logger.Info("vínculo admin-agente removido", "vinculo_id", id)
	return nil
}
