package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// SessaoClaims são as claims do token de sessão de um admin.
// AgentIDs nil significa visibilidade total (papel master).
type SessaoClaims struct {
	Papel    string  `json:"papel"`
	AgentIDs []int64 `json:"agent_ids,omitempty"`
	jwt.RegisteredClaims
}

// Sessao é a visão autenticada de um admin dentro de uma requisição
type Sessao struct {
	AdminID  uint
	Papel    entities.Papel
	AgentIDs []int64 // nil = sem filtro (master)
}

// AuthService autentica admins e emite/valida tokens de sessão
type AuthService struct {
	adminRepo   repositories.AdminRepository
	vinculoRepo repositories.AdminAgenteRepository
	secret      []byte
	expiry      time.Duration
	logger      ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	adminRepo repositories.AdminRepository,
	vinculoRepo repositories.AdminAgenteRepository,
	secret string,
	expiryHoras int,
	logger ports.Logger,
) *AuthService {
	if expiryHoras <= 0 {
		expiryHoras = 12
	}
	return &AuthService{
		adminRepo:   adminRepo,
		vinculoRepo: vinculoRepo,
		secret:      []byte(secret),
		expiry:      time.Duration(expiryHoras) * time.Hour,
		logger:      logger,
	}
}

// DuracaoSessao devolve a validade dos tokens emitidos; o cookie de
// sessão do navegador usa o mesmo valor
func (s *AuthService) DuracaoSessao() time.Duration {
	return s.expiry
}

// Login valida as credenciais e emite um token de sessão assinado
func (s *AuthService) Login(ctx context.Context, email, senha string) (string, *entities.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil {
		return "", nil, errors.Unauthorized("credenciais inválidas")
	}

	if !admin.PodeAutenticar() {
		return "", nil, errors.Unauthorized("credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte(senha)); err != nil {
		return "", nil, errors.Unauthorized("credenciais inválidas")
	}

	agentIDs, err := s.agentIDsDoAdmin(ctx, admin)
	if err != nil {
		return "", nil, err
	}

	token, err := s.emitirToken(admin, agentIDs)
	if err != nil {
		return "", nil, errors.Internal("falha ao emitir token de sessão", err)
	}

	s.logger.Info("admin autenticado", "admin_id", admin.ID, "papel", string(admin.Papel))
	return token, admin, nil
}

// agentIDsDoAdmin resolve o escopo de agentes: master não tem filtro
func (s *AuthService) agentIDsDoAdmin(ctx context.Context, admin *entities.Admin) ([]int64, error) {
	if admin.IsMaster() {
		return nil, nil
	}

	vinculos, err := s.vinculoRepo.ListByAdmin(ctx, admin.ID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar vínculos do admin", err)
	}

	agentIDs := make([]int64, 0, len(vinculos))
	for _, v := range vinculos {
		agentIDs = append(agentIDs, v.AgentID)
	}
	return agentIDs, nil
}

func (s *AuthService) emitirToken(admin *entities.Admin, agentIDs []int64) (string, error) {
	now := time.Now()
	claims := SessaoClaims{
		Papel:    string(admin.Papel),
		AgentIDs: agentIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidarToken verifica a assinatura e devolve a sessão contida no token
func (s *AuthService) ValidarToken(tokenString string) (*Sessao, error) {
	claims := &SessaoClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("token de sessão inválido")
	}

	var adminID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &adminID); err != nil {
		return nil, errors.Unauthorized("token de sessão inválido")
	}

	papel := entities.Papel(claims.Papel)
	if !papel.Valido() {
		return nil, errors.Unauthorized("token de sessão inválido")
	}

	sessao := &Sessao{
		AdminID:  adminID,
		Papel:    papel,
		AgentIDs: claims.AgentIDs,
	}

	// Garantia extra: sessão não-master nunca circula sem escopo
	if !papel.VisibilidadeTotal() && sessao.AgentIDs == nil {
		sessao.AgentIDs = []int64{}
	}

	return sessao, nil
}

// Me recarrega o admin da sessão, rejeitando sessões de admins já
// desativados ou deletados
func (s *AuthService) Me(ctx context.Context, adminID uint) (*entities.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar admin", err)
	}
	if admin == nil || !admin.PodeAutenticar() {
		return nil, errors.Unauthorized("sessão inválida")
	}
	return admin, nil
}
