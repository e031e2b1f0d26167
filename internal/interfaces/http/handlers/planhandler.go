package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/plan/usecases"
	"pactum/internal/shared/utils"
)

type PlanHandler struct {
	listUC   *usecases.ListPlansUseCase
	getUC    *usecases.GetPlanUseCase
	createUC *usecases.CreatePlanUseCase
	reviseUC *usecases.RevisePlanUseCase
	retireUC *usecases.RetirePlanUseCase
}

func NewPlanHandler(
	listUC *usecases.ListPlansUseCase,
	getUC *usecases.GetPlanUseCase,
	createUC *usecases.CreatePlanUseCase,
	reviseUC *usecases.RevisePlanUseCase,
	retireUC *usecases.RetirePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		reviseUC: reviseUC,
		retireUC: retireUC,
	}
}

// List returns the plan catalog. By default only active plans are shown;
// include_retired widens the listing.
func (h *PlanHandler) List(c *gin.Context) {
	includeRetired := c.Query("include_retired") == "true"

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPlansCommand{
		ActiveOnly: !includeRetired,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newPlanResponses(result.Plans))
}

func (h *PlanHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPlanCommand{
		PlanSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newPlanResponse(result.Plan))
}

type CreatePlanRequest struct {
	Name         string            `json:"name" binding:"required"`
	PriceInCents int64             `json:"price_in_cents" binding:"required,gt=0"`
	BillingCycle string            `json:"billing_cycle" binding:"required,oneof=monthly annual one_time"`
	Features     map[string]string `json:"features"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Session:      sessionFromContext(c),
		Name:         req.Name,
		PriceInCents: req.PriceInCents,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newPlanResponse(result.Plan), "plan created")
}

type RevisePlanRequest struct {
	Name         string            `json:"name" binding:"required"`
	PriceInCents int64             `json:"price_in_cents" binding:"required,gt=0"`
	BillingCycle string            `json:"billing_cycle" binding:"required,oneof=monthly annual one_time"`
	Features     map[string]string `json:"features"`
}

type RevisePlanResponse struct {
	Plan *PlanResponse `json:"plan"`
	// Replaced is the retired revision the returned plan supersedes. Absent
	// when the plan had no contracts and was updated in place.
	Replaced *PlanResponse `json:"replaced,omitempty"`
}

// Revise changes a plan's terms. A plan referenced by contracts is retired
// and superseded by a new revision so signed contracts keep their terms.
func (h *PlanHandler) Revise(c *gin.Context) {
	var req RevisePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.reviseUC.Execute(c.Request.Context(), usecases.RevisePlanCommand{
		Session:      sessionFromContext(c),
		PlanSID:      c.Param("sid"),
		Name:         req.Name,
		PriceInCents: req.PriceInCents,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := RevisePlanResponse{Plan: newPlanResponse(result.Plan)}
	if result.Replaced != nil {
		resp.Replaced = newPlanResponse(result.Replaced)
	}
	utils.SuccessResponse(c, http.StatusOK, "plan revised", resp)
}

func (h *PlanHandler) Retire(c *gin.Context) {
	result, err := h.retireUC.Execute(c.Request.Context(), usecases.RetirePlanCommand{
		Session: sessionFromContext(c),
		PlanSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan retired", newPlanResponse(result.Plan))
}
