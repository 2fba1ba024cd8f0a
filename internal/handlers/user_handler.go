package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

const makeAdminDenied = "You do not have access to make admin"

type userRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetAdminFlag answers {admin: bool}; unknown emails are simply not admins.
func (h *Handler) GetAdminFlag(c *gin.Context) {
	isAdmin, err := h.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "admin flag", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *Handler) CreateUser(c *gin.Context) {
	user, ok := bindUser(c)
	if !ok {
		return
	}
	res, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		h.fail(c, "create user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpsertUser provisions users coming from an external login. The body
// replaces every field it names on the stored profile; role is never taken
// from the body.
func (h *Handler) UpsertUser(c *gin.Context) {
	user, ok := bindUser(c)
	if !ok {
		return
	}
	res, err := h.Users.Upsert(c.Request.Context(), user)
	if err != nil {
		h.fail(c, "upsert user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// MakeAdmin promotes the user named in the body. Only a verified admin may
// do so; every other caller gets 403.
func (h *Handler) MakeAdmin(c *gin.Context) {
	requester, _ := middleware.DecodedEmail(c)
	if requester == "" {
		c.JSON(http.StatusForbidden, gin.H{"message": makeAdminDenied})
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.Users.PromoteToAdmin(c.Request.Context(), requester, req.Email)
	if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"message": makeAdminDenied})
		return
	}
	if err != nil {
		h.fail(c, "make admin", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bindUser(c *gin.Context) (models.User, bool) {
	var req userRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		badRequest(c, err)
		return models.User{}, false
	}
	var payload map[string]interface{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		badRequest(c, err)
		return models.User{}, false
	}
	// Roles are only granted through MakeAdmin.
	delete(payload, "role")
	return models.UserFromPayload(payload), true
}
