package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/evaluation/usecases"
	"pactum/internal/shared/utils"
)

type EvaluationHandler struct {
	inactivateUC *usecases.InactivateEvaluationUseCase
}

func NewEvaluationHandler(inactivateUC *usecases.InactivateEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{inactivateUC: inactivateUC}
}

type InactivateEvaluationResponse struct {
	Evaluation      *EvaluationResponse `json:"evaluation"`
	AlreadyInactive bool                `json:"already_inactive"`
}

// Inactivate hides an evaluation record. Registered for both GET and POST:
// the GET form exists for legacy admin tooling that triggers it from a link.
func (h *EvaluationHandler) Inactivate(c *gin.Context) {
	evaluationSID := c.Query("evaluation_id")
	if evaluationSID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "evaluation_id query parameter required")
		return
	}

	result, err := h.inactivateUC.Execute(c.Request.Context(), usecases.InactivateEvaluationCommand{
		Session:       sessionFromContext(c),
		EvaluationSID: evaluationSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "evaluation inactivated", InactivateEvaluationResponse{
		Evaluation:      newEvaluationResponse(result.Evaluation),
		AlreadyInactive: result.AlreadyInactive,
	})
}
