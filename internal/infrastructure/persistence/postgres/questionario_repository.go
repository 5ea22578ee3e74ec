package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// QuestionarioRepository implementa repositories.QuestionarioRepository
type QuestionarioRepository struct {
	db *gorm.DB
}

// NewQuestionarioRepository cria um novo QuestionarioRepository
func NewQuestionarioRepository(db *gorm.DB) repositories.QuestionarioRepository {
	return &QuestionarioRepository{db: db}
}

func (r *QuestionarioRepository) Create(ctx context.Context, questionario *entities.Questionario) error {
	model := r.toModel(questionario)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	questionario.ID = model.ID
	return nil
}

func (r *QuestionarioRepository) FindByID(ctx context.Context, id uint) (*entities.Questionario, error) {
	var model QuestionarioModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *QuestionarioRepository) List(ctx context.Context, filters repositories.QuestionarioFilters) ([]*entities.Questionario, error) {
	// Escopo vazio: nenhum resultado
	if filters.AgentIDs != nil && len(filters.AgentIDs) == 0 {
		return []*entities.Questionario{}, nil
	}

	var models []*QuestionarioModel

	db := r.getDB(ctx)
	query := db.Model(&QuestionarioModel{})

	if filters.AgentIDs != nil {
		query = query.
			Joins("JOIN usuarios ON usuarios.id = questionarios.usuario_id").
			Where("usuarios.agent_id IN ?", filters.AgentIDs)
	}

	if filters.UsuarioID != nil {
		query = query.Where("questionarios.usuario_id = ?", *filters.UsuarioID)
	}

	query = query.Order("questionarios.created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *QuestionarioRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *QuestionarioRepository) toModel(q *entities.Questionario) *QuestionarioModel {
	return &QuestionarioModel{
		ID:         q.ID,
		UsuarioID:  q.UsuarioID,
		Resposta1:  q.Resposta1,
		Resposta2:  q.Resposta2,
		Resposta3:  q.Resposta3,
		Resposta4:  q.Resposta4,
		Resposta5:  q.Resposta5,
		Resposta6:  q.Resposta6,
		Resposta7:  q.Resposta7,
		Resposta8:  q.Resposta8,
		Resposta9:  q.Resposta9,
		Resposta10: q.Resposta10,
		Resposta11: q.Resposta11,
		Resposta12: q.Resposta12,
		Resposta13: q.Resposta13,
		CreatedAt:  q.CriadoEm.Unix(),
	}
}

func (r *QuestionarioRepository) toEntity(model *QuestionarioModel) *entities.Questionario {
	return &entities.Questionario{
		ID:         model.ID,
		UsuarioID:  model.UsuarioID,
		Resposta1:  model.Resposta1,
		Resposta2:  model.Resposta2,
		Resposta3:  model.Resposta3,
		Resposta4:  model.Resposta4,
		Resposta5:  model.Resposta5,
		Resposta6:  model.Resposta6,
		Resposta7:  model.Resposta7,
		Resposta8:  model.Resposta8,
		Resposta9:  model.Resposta9,
		Resposta10: model.Resposta10,
		Resposta11: model.Resposta11,
		Resposta12: model.Resposta12,
		Resposta13: model.Resposta13,
		CriadoEm:   time.Unix(model.CreatedAt, 0),
	}
}

func (r *QuestionarioRepository) toEntities(models []*QuestionarioModel) []*entities.Questionario {
	result := make([]*entities.Questionario, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
