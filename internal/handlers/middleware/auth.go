package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/produtivi/financeiro-backend/internal/handlers/dto"
	"github.com/produtivi/financeiro-backend/internal/services"
)

const sessaoKey = "sessao"

// CookieSessao é o nome do cookie que carrega o token de sessão
const CookieSessao = "sessao"

// SessaoAtual devolve a sessão anexada à requisição, se houver
func SessaoAtual(c *gin.Context) *services.Sessao {
	valor, ok := c.Get(sessaoKey)
	if !ok {
		return nil
	}
	sessao, _ := valor.(*services.Sessao)
	return sessao
}

// EscopoAgentes devolve o filtro de agentes da requisição: nil quando a
// autenticação foi por API key ou a sessão é master (sem filtro)
func EscopoAgentes(c *gin.Context) []int64 {
	sessao := SessaoAtual(c)
	if sessao == nil {
		return nil
	}
	return sessao.AgentIDs
}

// ValidarAPIKey compara o header com o segredo configurado. Igualdade
// exata, sem normalização de caixa; valor vazio nunca passa.
func ValidarAPIKey(c *gin.Context, secret string) bool {
	if secret == "" {
		return false
	}

	chave := c.GetHeader("X-Api-Key")
	if chave == "" {
		chave = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	return chave == secret
}

// tokenDaRequisicao extrai o token de sessão do cookie ou do Bearer
func tokenDaRequisicao(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieSessao); err == nil && cookie != "" {
		return cookie
	}

	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessaoOpcional anexa a sessão quando um token válido está presente,
// sem bloquear requisições anônimas
func SessaoOpcional(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenDaRequisicao(c); token != "" {
			if sessao, err := authService.ValidarToken(token); err == nil {
				c.Set(sessaoKey, sessao)
			}
		}
		c.Next()
	}
}

// RequireSessao exige uma sessão válida e, quando papéis são
// informados, que o papel da sessão esteja entre eles
func RequireSessao(authService *services.AuthService, papeis ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenDaRequisicao(c)
		if token == "" {
			dto.Fail(c, http.StatusUnauthorized, "sessão não informada")
			c.Abort()
			return
		}

		sessao, err := authService.ValidarToken(token)
		if err != nil {
			dto.Fail(c, http.StatusUnauthorized, "sessão inválida ou expirada")
			c.Abort()
			return
		}

		if len(papeis) > 0 {
			permitido := false
			for _, papel := range papeis {
				if string(sessao.Papel) == papel {
					permitido = true
					break
				}
			}
			if !permitido {
				dto.Fail(c, http.StatusForbidden, "papel sem permissão para esta operação")
				c.Abort()
				return
			}
		}

		c.Set(sessaoKey, sessao)
		c.Next()
	}
}

// APIKeyOuSessao aceita API key (acesso de máquina, sem escopo) ou
// sessão de admin (escopo de agentes conforme o papel). Sessão, quando
// presente e válida, prevalece e impõe o escopo.
func APIKeyOuSessao(authService *services.AuthService, apiKeySecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenDaRequisicao(c); token != "" {
			if sessao, err := authService.ValidarToken(token); err == nil {
				c.Set(sessaoKey, sessao)
				c.Next()
				return
			}
		}

		if ValidarAPIKey(c, apiKeySecret) {
			c.Next()
			return
		}

		dto.Fail(c, http.StatusUnauthorized, "credenciais não informadas ou inválidas")
		c.Abort()
	}
}
