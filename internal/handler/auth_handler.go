package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler issues access tokens against the shared secret.
type AuthHandler struct {
	Secret string
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/jwt", h.IssueToken)
}

type tokenRequest struct {
	Email string `json:"email"`
}

// POST /jwt — signs the caller's email into a token with a 7-day expiry.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": req.Email,
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.Secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}
