package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// AdminAgenteRepository implementa repositories.AdminAgenteRepository
type AdminAgenteRepository struct {
	db *gorm.DB
}

// NewAdminAgenteRepository cria um novo AdminAgenteRepository
func NewAdminAgenteRepository(db *gorm.DB) repositories.AdminAgenteRepository {
	return &AdminAgenteRepository{db: db}
}

func (r *AdminAgenteRepository) Create(ctx context.Context, vinculo *entities.AdminAgente) error {
	model := r.toModel(vinculo)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	vinculo.ID = model.ID
	return nil
}

func (r *AdminAgenteRepository) FindByID(ctx context.Context, id uint) (*entities.AdminAgente, error) {
	var model AdminAgenteModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AdminAgenteRepository) FindByAdminEAgente(ctx context.Context, adminID uint, agentID int64) (*entities.AdminAgente, error) {
	var model AdminAgenteModel

	db := r.getDB(ctx)
	if err := db.Where("admin_id = ? AND agent_id = ?", adminID, agentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AdminAgenteRepository) ListByAdmin(ctx context.Context, adminID uint) ([]*entities.AdminAgente, error) {
	var models []*AdminAgenteModel

	db := r.getDB(ctx)
	if err := db.Where("admin_id = ?", adminID).Order("agent_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *AdminAgenteRepository) List(ctx context.Context) ([]*entities.AdminAgente, error) {
	var models []*AdminAgenteModel

	db := r.getDB(ctx)
	if err := db.Order("admin_id ASC, agent_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Delete remove o vínculo fisicamente (tabela de ligação pura, sem
// requisito de auditoria)
func (r *AdminAgenteRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	return db.Delete(&AdminAgenteModel{}, id).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *AdminAgenteRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *AdminAgenteRepository) toModel(vinculo *entities.AdminAgente) *AdminAgenteModel {
	return &AdminAgenteModel{
		ID:        vinculo.ID,
		AdminID:   vinculo.AdminID,
		AgentID:   vinculo.AgentID,
		CreatedAt: vinculo.CriadoEm.Unix(),
		UpdatedAt: vinculo.AtualizadoEm.Unix(),
	}
}

func (r *AdminAgenteRepository) toEntity(model *AdminAgenteModel) *entities.AdminAgente {
	return &entities.AdminAgente{
		ID:           model.ID,
		AdminID:      model.AdminID,
		AgentID:      model.AgentID,
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
	}
}

func (r *AdminAgenteRepository) toEntities(models []*AdminAgenteModel) []*entities.AdminAgente {
	result := make([]*entities.AdminAgente, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
