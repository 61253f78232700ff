package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PetCareServices/petcare-api/internal/domain/perfil"
)

// RequirePerfil exige o perfil mínimo para o grupo de rotas. A checagem
// da hierarquia fica inteira em perfil.Permite.
func RequirePerfil(minimo perfil.Perfil) gin.HandlerFunc {
	return func(c *gin.Context) {
		atual, ok := c.MustGet(ContextPerfil).(perfil.Perfil)
		if !ok || !atual.Permite(minimo) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "perfil_insuficiente"})
			return
		}
		c.Next()
	}
}
