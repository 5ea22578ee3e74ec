package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/domain/valueobjects"
)

// AdminRepository implementa repositories.AdminRepository
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository cria um novo AdminRepository
func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	model := r.toModel(admin)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	admin.ID = model.ID
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*entities.Admin, error) {
	var model AdminModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var model AdminModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	model := r.toModel(admin)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&AdminModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *AdminRepository) List(ctx context.Context, filters repositories.AdminFilters) ([]*entities.Admin, error) {
	var models []*AdminModel

	db := r.getDB(ctx)
	query := db.Model(&AdminModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.Papel != nil {
		query = query.Where("papel = ?", string(*filters.Papel))
	}
	if filters.Ativo != nil {
		query = query.Where("ativo = ?", *filters.Ativo)
	}

	query = query.Order("nome ASC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *AdminRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *AdminRepository) toModel(admin *entities.Admin) *AdminModel {
	var deletedAt *int64
	if admin.DeletadoEm != nil {
		ts := admin.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &AdminModel{
		ID:        admin.ID,
		Nome:      admin.Nome,
		Email:     admin.Email.String(),
		SenhaHash: admin.SenhaHash,
		Papel:     string(admin.Papel),
		Ativo:     admin.Ativo,
		CreatedAt: admin.CriadoEm.Unix(),
		UpdatedAt: admin.AtualizadoEm.Unix(),
		DeletedAt: deletedAt,
	}
}

func (r *AdminRepository) toEntity(model *AdminModel) (*entities.Admin, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Admin{
		ID:           model.ID,
		Nome:         model.Nome,
		Email:        email,
		SenhaHash:    model.SenhaHash,
		Papel:        entities.Papel(model.Papel),
		Ativo:        model.Ativo,
		CriadoEm:     time.Unix(model.CreatedAt, 0),
		AtualizadoEm: time.Unix(model.UpdatedAt, 0),
		DeletadoEm:   deletadoEm,
	}, nil
}

func (r *AdminRepository) toEntities(models []*AdminModel) ([]*entities.Admin, error) {
	result := make([]*entities.Admin, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
