package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// TransacaoRepository implementa repositories.TransacaoRepository
type TransacaoRepository struct {
	db *gorm.DB
}

// NewTransacaoRepository cria um novo TransacaoRepository
func NewTransacaoRepository(db *gorm.DB) repositories.TransacaoRepository {
	return &TransacaoRepository{db: db}
}

func (r *TransacaoRepository) Create(ctx context.Context, transacao *entities.Transacao) error {
	model := r.toModel(transacao)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	transacao.ID = model.ID
	return nil
}

func (r *TransacaoRepository) FindByID(ctx context.Context, id uint) (*entities.Transacao, error) {
	var model TransacaoModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TransacaoRepository) Update(ctx context.Context, transacao *entities.Transacao) error {
	model := r.toModel(transacao)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *TransacaoRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&TransacaoModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *TransacaoRepository) List(ctx context.Context, filters repositories.TransacaoFilters) ([]*entities.Transacao, error) {
	// Escopo vazio: nenhum resultado
	if filters.AgentIDs != nil && len(filters.AgentIDs) == 0 {
		return []*entities.Transacao{}, nil
	}

	var models []*TransacaoModel

	db := r.getDB(ctx)
	query := db.Model(&TransacaoModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("transacoes.deleted_at IS NULL")

	// Escopo por agente via join com usuarios
	if filters.AgentIDs != nil {
		query = query.
			Joins("JOIN usuarios ON usuarios.id = transacoes.usuario_id").
			Where("usuarios.agent_id IN ?", filters.AgentIDs)
	}

	if filters.UsuarioID != nil {
		query = query.Where("transacoes.usuario_id = ?", *filters.UsuarioID)
	}
	if filters.Tipo != nil {
		query = query.Where("transacoes.tipo = ?", string(*filters.Tipo))
	}
	if filters.TipoCaixa != nil {
		query = query.Where("transacoes.tipo_caixa = ?", string(*filters.TipoCaixa))
	}
	if filters.CategoriaID != nil {
		query = query.Where("transacoes.categoria_id = ?", *filters.CategoriaID)
	}
	if filters.DataInicio != nil {
		query = query.Where("transacoes.data_transacao >= ?", *filters.DataInicio)
	}
	if filters.DataFim != nil {
		query = query.Where("transacoes.data_transacao <= ?", *filters.DataFim)
	}

	query = query.Order("transacoes.data_transacao DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *TransacaoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *TransacaoRepository) toModel(transacao *entities.Transacao) *TransacaoModel {
	var deletedAt *int64
	if transacao.DeletadoEm != nil {
		ts := transacao.DeletadoEm.Unix()
		deletedAt = &ts
	}

	return &TransacaoModel{
		ID:            transacao.ID,
		UsuarioID:     transacao.UsuarioID,
		Tipo:          string(transacao.Tipo),
		TipoCaixa:     string(transacao.TipoCaixa),
		Valor:         transacao.Valor,
		CategoriaID:   transacao.CategoriaID,
		Descricao:     transacao.Descricao,
		DataTransacao: transacao.DataTransacao,
		TipoEntrada:   string(transacao.TipoEntrada),
		CreatedAt:     transacao.CriadoEm.Unix(),
		UpdatedAt:     transacao.AtualizadoEm.Unix(),
		DeletedAt:     deletedAt,
	}
}

func (r *TransacaoRepository) toEntity(model *TransacaoModel) *entities.Transacao {
	var deletadoEm *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletadoEm = &ts
	}

	return &entities.Transacao{
		ID:            model.ID,
		UsuarioID:     model.UsuarioID,
		Tipo:          entities.TipoTransacao(model.Tipo),
		TipoCaixa:     entities.TipoCaixa(model.TipoCaixa),
		Valor:         model.Valor,
		CategoriaID:   model.CategoriaID,
		Descricao:     model.Descricao,
		DataTransacao: model.DataTransacao,
		TipoEntrada:   entities.TipoEntrada(model.TipoEntrada),
		CriadoEm:      time.Unix(model.CreatedAt, 0),
		AtualizadoEm:  time.Unix(model.UpdatedAt, 0),
		DeletadoEm:    deletadoEm,
	}
}

func (r *TransacaoRepository) toEntities(models []*TransacaoModel) []*entities.Transacao {
	result := make([]*entities.Transacao, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
