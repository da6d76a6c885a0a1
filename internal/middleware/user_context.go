package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserCPFKey   = "user_cpf"
	UserRoleKey  = "user_role"
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"
)

// Roles reconhecidas
const (
	RoleAdmin      = "ADMIN"
	RolePatrimonio = "PATRIMONIO"
	RoleUser       = "USER"
)

// ExtractUserContext extrai informações do usuário dos headers injetados pelo Istio
// O Istio deve injetar os seguintes headers após validar o JWT:
// - X-User-CPF: CPF do usuário (extraído de preferred_username)
// - X-User-Role: ADMIN, PATRIMONIO ou USER
// - X-User-ID: ID do usuário (extraído de sub)
// - X-User-Name: Nome completo (extraído de name)
// - X-User-Email: Email do usuário (extraído de email)
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		headers := []struct{ header, chave string }{
			{"X-User-CPF", UserCPFKey},
			{"X-User-ID", UserIDKey},
			{"X-User-Name", UserNameKey},
			{"X-User-Email", UserEmailKey},
		}
		for _, h := range headers {
			if valor := strings.TrimSpace(c.GetHeader(h.header)); valor != "" {
				c.Set(h.chave, valor)
			}
		}

		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set(UserRoleKey, strings.ToUpper(role))
		}

		c.Next()
	}
}

func getString(c *gin.Context, chave string) string {
	if valor, exists := c.Get(chave); exists {
		if s, ok := valor.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserCPF retorna o CPF do usuário autenticado
func GetUserCPF(c *gin.Context) string {
	return getString(c, UserCPFKey)
}

// GetUserRole retorna a role do usuário
func GetUserRole(c *gin.Context) string {
	return getString(c, UserRoleKey)
}

// GetUserID retorna o ID único do usuário
func GetUserID(c *gin.Context) string {
	return getString(c, UserIDKey)
}

// GetUserName retorna o nome completo do usuário
func GetUserName(c *gin.Context) string {
	return getString(c, UserNameKey)
}

// GetUserEmail retorna o email do usuário
func GetUserEmail(c *gin.Context) string {
	return getString(c, UserEmailKey)
}

// UsuarioResponsavel identifica quem cadastrou o bem: nome, e na falta dele email ou CPF
func UsuarioResponsavel(c *gin.Context) string {
	for _, valor := range []string{GetUserName(c), GetUserEmail(c), GetUserCPF(c)} {
		if valor != "" {
			return valor
		}
	}
	return ""
}

// HasRole verifica se o usuário tem uma das roles especificadas
func HasRole(c *gin.Context, roles ...string) bool {
	userRole := GetUserRole(c)
	for _, role := range roles {
		if userRole == role {
			return true
		}
	}
	return false
}

// RequireRole middleware que verifica se o usuário tem uma das roles necessárias
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasRole(c, roles...) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":          "Acesso negado: permissão insuficiente",
				"roles_required": roles,
				"user_role":      GetUserRole(c),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAuthentication middleware que verifica se o usuário está autenticado
func RequireAuthentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserCPF(c) == "" && GetUserID(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}
		c.Next()
	}
}
