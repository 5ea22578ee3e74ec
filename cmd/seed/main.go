// Comando seed cria o admin master inicial a partir das variáveis
// SEED_MASTER_EMAIL e SEED_MASTER_SENHA. Idempotente: se o email já
// existe entre os admins vivos, nada é feito.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/valueobjects"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/logging"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("falha ao carregar configuração: ", err)
	}

	emailStr := os.Getenv("SEED_MASTER_EMAIL")
	senha := os.Getenv("SEED_MASTER_SENHA")
	if emailStr == "" || senha == "" {
		log.Fatal("SEED_MASTER_EMAIL e SEED_MASTER_SENHA são obrigatórios")
	}
	if len(senha) < 8 {
		log.Fatal("SEED_MASTER_SENHA deve ter pelo menos 8 caracteres")
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatal("falha ao conectar no banco: ", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal("falha ao migrar o schema: ", err)
	}

	email, err := valueobjects.NewEmail(emailStr)
	if err != nil {
		log.Fatal("SEED_MASTER_EMAIL inválido: ", err)
	}

	ctx := context.Background()
	adminRepo := postgres.NewAdminRepository(db)

	existente, err := adminRepo.FindByEmail(ctx, email.String())
	if err != nil {
		log.Fatal("falha ao buscar admin: ", err)
	}
	if existente != nil {
		logger.Info("admin master já existe, nada a fazer", "email", email.String())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("falha ao gerar hash da senha: ", err)
	}

	nome := os.Getenv("SEED_MASTER_NOME")
	if nome == "" {
		nome = "Master"
	}

	admin := &entities.Admin{
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Papel:     entities.PapelMaster,
		Ativo:     true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.Fatal("falha ao criar admin master: ", err)
	}

	logger.Info("admin master criado", "admin_id", admin.ID, "email", email.String())
}
