package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/entity/usecases"
	"pactum/internal/domain/entity"
	"pactum/internal/shared/utils"
)

type EntityHandler struct {
	registerUC      *usecases.RegisterEntityUseCase
	attachProfileUC *usecases.AttachProfileUseCase
	findUC          *usecases.FindEntityUseCase
}

func NewEntityHandler(
	registerUC *usecases.RegisterEntityUseCase,
	attachProfileUC *usecases.AttachProfileUseCase,
	findUC *usecases.FindEntityUseCase,
) *EntityHandler {
	return &EntityHandler{
		registerUC:      registerUC,
		attachProfileUC: attachProfileUC,
		findUC:          findUC,
	}
}

type RegisterEntityRequest struct {
	TaxID string `json:"tax_id" binding:"required,tax_id"`
	Name  string `json:"name" binding:"required"`
	Kind  string `json:"kind" binding:"required,oneof=individual organization"`
}

// Register creates a contracting party.
func (h *EntityHandler) Register(c *gin.Context) {
	var req RegisterEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterEntityCommand{
		Session: sessionFromContext(c),
		TaxID:   req.TaxID,
		Name:    req.Name,
		Kind:    req.Kind,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newEntityResponse(result.Entity), "entity registered")
}

type AttachProfileRequest struct {
	Address      string            `json:"address"`
	ContactEmail string            `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string            `json:"contact_phone"`
	BankName     string            `json:"bank_name"`
	BankAccount  string            `json:"bank_account"`
	Attributes   map[string]string `json:"attributes"`
}

// AttachProfile sets or replaces an entity's extended profile.
func (h *EntityHandler) AttachProfile(c *gin.Context) {
	var req AttachProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.attachProfileUC.Execute(c.Request.Context(), usecases.AttachProfileCommand{
		Session:   sessionFromContext(c),
		EntitySID: c.Param("sid"),
		Profile: entity.Profile{
			Address:      req.Address,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
			BankName:     req.BankName,
			BankAccount:  req.BankAccount,
			Attributes:   req.Attributes,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile attached", newEntityResponse(result.Entity))
}

// Get returns a single entity by its public identifier.
func (h *EntityHandler) Get(c *gin.Context) {
	result, err := h.findUC.Execute(c.Request.Context(), usecases.FindEntityCommand{
		Session:   sessionFromContext(c),
		EntitySID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newEntityResponse(result.Entity))
}

// Find looks an entity up by tax identifier.
func (h *EntityHandler) Find(c *gin.Context) {
	taxID := c.Query("tax_id")
	if taxID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "tax_id query parameter required")
		return
	}

	result, err := h.findUC.Execute(c.Request.Context(), usecases.FindEntityCommand{
		Session: sessionFromContext(c),
		TaxID:   taxID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newEntityResponse(result.Entity))
}
