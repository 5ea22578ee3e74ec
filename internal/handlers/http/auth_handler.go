package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// AuthHandler lida com login, logout e consulta de sessão
type AuthHandler struct {
	authService  *services.AuthService
	cookieSeguro bool
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, cookieSeguro bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSeguro: cookieSeguro,
	}
}

// Login autentica um admin por email e senha
// @Summary      Login de admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.LoginRequest  true  "Credenciais"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	// Cookie para navegadores; o token no corpo atende clientes de API.
	// O Max-Age acompanha a validade do token emitido.
	maxAge := int(h.authService.DuracaoSessao().Seconds())
	c.SetCookie(middleware.CookieSessao, token, maxAge, "/", "", h.cookieSeguro, true)
	dto.OK(c, http.StatusOK, "login realizado", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	})
}

// Logout encerra a sessão do navegador expirando o cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieSessao, "", -1, "/", "", h.cookieSeguro, true)
	dto.OK(c, http.StatusOK, "sessão encerrada", nil)
}

// Me devolve o admin da sessão atual
func (h *AuthHandler) Me(c *gin.Context) {
	sessao := middleware.SessaoAtual(c)
	if sessao == nil {
		dto.Fail(c, http.StatusUnauthorized, "sessão não informada")
		return
	}

	admin, err := h.authService.Me(c.Request.Context(), sessao.AdminID)
	if err != nil {
		dto.FailDomain(c, err)
		return
	}

	dto.OK(c, http.StatusOK, "sessão válida", dto.ToAdminResponse(admin))
}
