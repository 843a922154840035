//go:build unit

package api_test

import (
	"net/http"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Tokens understood by fakeAuth. Any other non-empty token is a player.
const (
	playerToken = "player-token"
	ownerToken  = "owner-token"
)

var (
	testPlayerID = uuid.MustParse("6f1a0c2e-7a0b-4a57-9c55-1f7f0c6b7a01")
	testOwnerID  = uuid.MustParse("0b5e2a41-3c8d-4d8e-a4f2-6c1d9e2f3b02")
)

// fakeAuth stands in for AuthMiddleware.RequireAuth without JWT parsing.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "":
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	case "Bearer " + ownerToken:
		c.Set("user_id", testOwnerID)
		c.Set("user_role", user.RoleOwner)
	default:
		c.Set("user_id", testPlayerID)
		c.Set("user_role", user.RolePlayer)
	}
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

var (
	playerActor = user.Actor{ID: testPlayerID, Role: user.RolePlayer}
	ownerActor  = user.Actor{ID: testOwnerID, Role: user.RoleOwner}
)
