package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/middleware"
	"github.com/khadamat/backend/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type signUpRequest struct {
	Username        string `json:"username"`
	MobileNumber    string `json:"mobile_number"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Email           string `json:"email"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := h.auth.SignUp(c.Request.Context(), service.SignUpInput{
		Username:        req.Username,
		MobileNumber:    req.MobileNumber,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Email:           req.Email,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    newUserResponse(user),
		"token":   token,
	})
}

type signInRequest struct {
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := h.auth.SignIn(c.Request.Context(), req.MobileNumber, req.Password)
	if err != nil {
		// Signin reports each failure reason distinctly, as the
		// frontend renders a specific message per case.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			RespondError(c, http.StatusBadRequest, "No account found with mobile number "+req.MobileNumber+". Please sign up first.")
		case errors.Is(err, service.ErrBadPassword):
			RespondError(c, http.StatusBadRequest, "Incorrect password. Please try again.")
		case errors.Is(err, service.ErrAccountDisabled):
			RespondError(c, http.StatusBadRequest, "This account has been disabled")
		default:
			respondServiceError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    newUserResponse(user),
		"token":   token,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	jti := c.GetString(middleware.CtxSessionJTI)
	if err := h.auth.SignOut(c.Request.Context(), jti); err != nil {
		h.log.Warn("signout failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// DebugUsers lists every account. Routed only in dev mode.
func (h *AuthHandler) DebugUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	list := make([]userResponse, 0, len(users))
	for i := range users {
		list = append(list, newUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"total_users": len(list),
		"users":       list,
	})
}
