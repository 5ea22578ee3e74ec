package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir da lista de origens
// separada por vírgula
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Api-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := []string{}
	for _, origem := range strings.Split(allowedOrigins, ",") {
		if origem = strings.TrimSpace(origem); origem != "" {
			origins = append(origins, origem)
		}
	}

	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
