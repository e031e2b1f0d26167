package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/auth/usecases"
	"pactum/internal/shared/utils"
)

type AuthHandler struct {
	loginUC *usecases.LoginUseCase
}

func NewAuthHandler(loginUC *usecases.LoginUseCase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC}
}

type LoginRequest struct {
	TaxID    string `json:"tax_id" binding:"required,tax_id"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

// Login exchanges a tax identifier and password for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		LoginTaxID: req.TaxID,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Role:      result.Account.Role().String(),
	})
}
