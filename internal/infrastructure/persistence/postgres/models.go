package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminModel é o model GORM para administradores
type AdminModel struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	SenhaHash string `gorm:"type:varchar(255);not null"`
	Papel     string `gorm:"type:varchar(50);not null;index"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (AdminModel) TableName() string {
	return "admins"
}

// AdminAgenteModel é o model GORM dos vínculos admin-agente
type AdminAgenteModel struct {
	ID        uint  `gorm:"primaryKey"`
	AdminID   uint  `gorm:"not null;uniqueIndex:idx_admin_agente"`
	AgentID   int64 `gorm:"not null;uniqueIndex:idx_admin_agente"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (AdminAgenteModel) TableName() string {
	return "admin_agentes"
}

// CategoriaModel é o model GORM para categorias de transação
type CategoriaModel struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(255);not null"`
	Tipo      string `gorm:"type:varchar(50);not null;index"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (CategoriaModel) TableName() string {
	return "categorias"
}

// GrupoModel é o model GORM para grupos de usuários
type GrupoModel struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(255);not null"`
	Descricao string `gorm:"type:text"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (GrupoModel) TableName() string {
	return "grupos"
}

// UsuarioModel é o model GORM para usuários finais do agente
type UsuarioModel struct {
	ID        uint   `gorm:"primaryKey"`
	ChatID    string `gorm:"type:varchar(255);index"`
	AgentID   int64  `gorm:"not null;index"`
	Nome      string `gorm:"type:varchar(255);not null"`
	Telefone  string `gorm:"type:varchar(50);not null;index"`
	GrupoID   *uint  `gorm:"index"`
	Status    string `gorm:"type:varchar(50);not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// TransacaoModel é o model GORM para transações financeiras
type TransacaoModel struct {
	ID            uint            `gorm:"primaryKey"`
	UsuarioID     uint            `gorm:"not null;index"`
	Tipo          string          `gorm:"type:varchar(50);not null;index"`
	TipoCaixa     string          `gorm:"type:varchar(50);not null;index"`
	Valor         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoriaID   *uint           `gorm:"index"`
	Descricao     string          `gorm:"type:text"`
	DataTransacao time.Time       `gorm:"not null;index"`
	TipoEntrada   string          `gorm:"type:varchar(50);not null"`
	CreatedAt     int64           `gorm:"autoCreateTime"`
	UpdatedAt     int64           `gorm:"autoUpdateTime"`
	DeletedAt     *int64          `gorm:"index"` // Soft delete
}

func (TransacaoModel) TableName() string {
	return "transacoes"
}

// MetaModel é o model GORM para metas semanais
type MetaModel struct {
	ID           uint      `gorm:"primaryKey"`
	UsuarioID    uint      `gorm:"not null;index"`
	Descricao    string    `gorm:"type:text;not null"`
	TipoMeta     string    `gorm:"type:varchar(50);not null;index"`
	DataInicio   time.Time `gorm:"not null;index"`
	DataFim      time.Time `gorm:"not null"`
	Cumprida     *bool
	RespondidoEm *time.Time
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (MetaModel) TableName() string {
	return "metas"
}

// QuestionarioModel é o model GORM para questionários de onboarding
type QuestionarioModel struct {
	ID         uint   `gorm:"primaryKey"`
	UsuarioID  uint   `gorm:"not null;index"`
	Resposta1  string `gorm:"type:text"`
	Resposta2  string `gorm:"type:text"`
	Resposta3  string `gorm:"type:text"`
	Resposta4  string `gorm:"type:text"`
	Resposta5  string `gorm:"type:text"`
	Resposta6  string `gorm:"type:text"`
	Resposta7  string `gorm:"type:text"`
	Resposta8  string `gorm:"type:text"`
	Resposta9  string `gorm:"type:text"`
	Resposta10 string `gorm:"type:text"`
	Resposta11 string `gorm:"type:text"`
	Resposta12 string `gorm:"type:text"`
	Resposta13 string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime;index"`
}

func (QuestionarioModel) TableName() string {
	return "questionarios"
}

// LatenciaModel é o model GORM para métricas de latência de resposta
type LatenciaModel struct {
	ID               uint      `gorm:"primaryKey"`
	UsuarioID        uint      `gorm:"not null;index"`
	AgentID          int64     `gorm:"not null;index"`
	MomentoLembrete  time.Time `gorm:"not null"`
	MomentoResposta  time.Time `gorm:"not null"`
	LatenciaSegundos int64     `gorm:"not null"`
	TipoLembrete     string    `gorm:"type:varchar(100)"`
	Respondeu        bool      `gorm:"not null;default:true"`
	CreatedAt        int64     `gorm:"autoCreateTime;index"`
}

func (LatenciaModel) TableName() string {
	return "latencias"
}

// RelatorioModel é o model GORM do histórico de relatórios gerados
type RelatorioModel struct {
	ID                uint      `gorm:"primaryKey"`
	UsuarioID         uint      `gorm:"not null;index"`
	TipoRelatorio     string    `gorm:"type:varchar(100);not null"`
	DataInicio        time.Time `gorm:"not null"`
	DataFim           time.Time `gorm:"not null"`
	FiltroTipo        string    `gorm:"type:varchar(50)"`
	FiltroCategoriaID *uint
	URLImagem         string `gorm:"type:varchar(1000);not null"`
	Formato           string `gorm:"type:varchar(10);not null"`
	CreatedAt         int64  `gorm:"autoCreateTime;index"`
}

func (RelatorioModel) TableName() string {
	return "relatorios"
}
