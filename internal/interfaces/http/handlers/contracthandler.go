package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/contract/usecases"
	"pactum/internal/shared/utils"
)

type ContractHandler struct {
	createUC    *usecases.CreateContractUseCase
	getUC       *usecases.GetContractUseCase
	activateUC  *usecases.ActivateContractUseCase
	suspendUC   *usecases.SuspendContractUseCase
	reinstateUC *usecases.ReinstateContractUseCase
	terminateUC *usecases.TerminateContractUseCase
	annotateUC  *usecases.AnnotateContractUseCase
}

func NewContractHandler(
	createUC *usecases.CreateContractUseCase,
	getUC *usecases.GetContractUseCase,
	activateUC *usecases.ActivateContractUseCase,
	suspendUC *usecases.SuspendContractUseCase,
	reinstateUC *usecases.ReinstateContractUseCase,
	terminateUC *usecases.TerminateContractUseCase,
	annotateUC *usecases.AnnotateContractUseCase,
) *ContractHandler {
	return &ContractHandler{
		createUC:    createUC,
		getUC:       getUC,
		activateUC:  activateUC,
		suspendUC:   suspendUC,
		reinstateUC: reinstateUC,
		terminateUC: terminateUC,
		annotateUC:  annotateUC,
	}
}

type CreateContractRequest struct {
	EntitySID string `json:"entity_sid" binding:"required"`
	PlanSID   string `json:"plan_sid" binding:"required"`
}

// Create opens a draft contract binding an entity to a plan.
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateContractCommand{
		Session:   sessionFromContext(c),
		EntitySID: req.EntitySID,
		PlanSID:   req.PlanSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newContractResponse(result.Contract), "contract created")
}

func (h *ContractHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newContractResponse(result.Contract))
}

type ActivateContractRequest struct {
	PaymentSID string `json:"payment_sid" binding:"required"`
}

// Activate moves a draft contract to active against a settled payment.
func (h *ContractHandler) Activate(c *gin.Context) {
	var req ActivateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.activateUC.Execute(c.Request.Context(), usecases.ActivateContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
		PaymentSID:  req.PaymentSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contract activated", newContractResponse(result.Contract))
}

type SuspendContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *ContractHandler) Suspend(c *gin.Context) {
	var req SuspendContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.suspendUC.Execute(c.Request.Context(), usecases.SuspendContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
		Reason:      req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contract suspended", newContractResponse(result.Contract))
}

func (h *ContractHandler) Reinstate(c *gin.Context) {
	result, err := h.reinstateUC.Execute(c.Request.Context(), usecases.ReinstateContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contract reinstated", newContractResponse(result.Contract))
}

type TerminateContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type TerminateContractResponse struct {
	Contract          *ContractResponse `json:"contract"`
	AlreadyTerminated bool              `json:"already_terminated"`
}

// Terminate ends a contract for good. Repeating the call on a terminated
// contract succeeds without changing anything.
func (h *ContractHandler) Terminate(c *gin.Context) {
	var req TerminateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.terminateUC.Execute(c.Request.Context(), usecases.TerminateContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
		Reason:      req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contract terminated", TerminateContractResponse{
		Contract:          newContractResponse(result.Contract),
		AlreadyTerminated: result.AlreadyTerminated,
	})
}

type AnnotateContractRequest struct {
	Note string `json:"note" binding:"required,max=4000"`
}

// Annotate appends an audit note. Notes are accepted in any contract state.
func (h *ContractHandler) Annotate(c *gin.Context) {
	var req AnnotateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.annotateUC.Execute(c.Request.Context(), usecases.AnnotateContractCommand{
		Session:     sessionFromContext(c),
		ContractSID: c.Param("sid"),
		Note:        req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newContractResponse(result.Contract), "annotation added")
}
