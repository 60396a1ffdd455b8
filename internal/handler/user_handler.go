package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

// UserStore is the slice of the user repository the handler needs.
type UserStore interface {
	UpsertByEmail(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserHandler управляет операциями над пользователями.
type UserHandler struct {
	Users UserStore
}

// RegisterRoutes регистрирует роуты для Users.
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.PUT("/users/:email", h.PutUser)
	r.GET("/user/:email", h.GetUser)
}

// PUT /users/:email — upsert keyed by email, idempotent for a given body.
func (h *UserHandler) PutUser(c *gin.Context) {
	email := c.Param("email")

	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.Users.UpsertByEmail(c.Request.Context(), email, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /user/:email — single user document or null.
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
