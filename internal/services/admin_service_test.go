package services

import (
	"context"
	"testing"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func novoAdminService(t *testing.T) *AdminService {
	t.Helper()
	db := setupDB(t)
	return NewAdminService(postgres.NewAdminRepository(db), postgres.NewUnitOfWork(db), testLogger)
}

func TestAdminService_UnicidadeDeEmail(t *testing.T) {
	ctx := context.Background()
	service := novoAdminService(t)

	input := CreateAdminInput{
		Nome:  "Admin Um",
		Email: "admin@exemplo.com",
		Senha: "senha-segura",
		Papel: entities.PapelAdmin,
		Ativo: true,
	}

	t.Run("cria o primeiro admin", func(t *testing.T) {
		if _, err := service.Create(ctx, input); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita email duplicado entre admins vivos", func(t *testing.T) {
		_, err := service.Create(ctx, input)
		if errors.KindOf(err) != errors.KindConflict {
			t.Errorf("esperado conflict, veio %v", err)
		}
	})

	t.Run("permite recriar o email após soft delete", func(t *testing.T) {
		admins, err := service.List(ctx, repositories.AdminFilters{})
		if err != nil || len(admins) == 0 {
			t.Fatalf("falha ao listar admins: %v", err)
		}

		if err := service.Delete(ctx, admins[0].ID); err != nil {
			t.Fatalf("erro ao deletar: %v", err)
		}

		if _, err := service.Create(ctx, input); err != nil {
			t.Errorf("recriação após delete deveria passar: %v", err)
		}
	})
}

func TestAdminService_Update(t *testing.T) {
	ctx := context.Background()
	service := novoAdminService(t)

	admin, err := service.Create(ctx, CreateAdminInput{
		Nome:  "Admin",
		Email: "update@exemplo.com",
		Senha: "senha-inicial",
		Papel: entities.PapelUser,
		Ativo: true,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	hashOriginal := admin.SenhaHash

	t.Run("omitir a senha mantém o hash", func(t *testing.T) {
		nome := "Admin Renomeado"
		atualizado, err := service.Update(ctx, admin.ID, UpdateAdminInput{Nome: &nome})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizado.SenhaHash != hashOriginal {
			t.Error("hash da senha mudou sem nova senha")
		}
		if atualizado.Nome != "Admin Renomeado" {
			t.Errorf("nome não atualizado: %s", atualizado.Nome)
		}
	})

	t.Run("nova senha troca o hash", func(t *testing.T) {
		senha := "senha-trocada"
		atualizado, err := service.Update(ctx, admin.ID, UpdateAdminInput{Senha: &senha})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizado.SenhaHash == hashOriginal {
			t.Error("hash da senha não mudou com nova senha")
		}
	})
}
