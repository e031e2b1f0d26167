package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/billing/usecases"
	"pactum/internal/domain/contract"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/services/markdown"
	"pactum/internal/shared/utils"
)

type BillingHandler struct {
	statusUC *usecases.GetBillingStatusUseCase
	markdown markdown.Service
	logger   logger.Interface
}

func NewBillingHandler(
	statusUC *usecases.GetBillingStatusUseCase,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		statusUC: statusUC,
		markdown: markdownSvc,
		logger:   logger,
	}
}

type BillingAnnotationView struct {
	AuthorSID string    `json:"author_sid"`
	Note      string    `json:"note"`
	NoteHTML  string    `json:"note_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BillingContractView struct {
	Contract      *ContractResponse       `json:"contract"`
	Plan          *PlanResponse           `json:"plan,omitempty"`
	LatestPayment *PaymentResponse        `json:"latest_payment,omitempty"`
	Annotations   []BillingAnnotationView `json:"annotations,omitempty"`
}

type BillingStatusResponse struct {
	Entity        *EntityResponse       `json:"entity"`
	OverallStatus string                `json:"overall_status"`
	Contracts     []BillingContractView `json:"contracts"`
	LatestPayment *PaymentResponse      `json:"latest_payment,omitempty"`
}

// Status is the administrative billing view for one entity, looked up by
// tax identifier. Annotations are stored as markdown and rendered to
// sanitized HTML here so admin tooling never sees raw user markup.
func (h *BillingHandler) Status(c *gin.Context) {
	taxID := c.Query("tax_id")
	if taxID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "tax_id query parameter required")
		return
	}
	if !utils.IsValidTaxID(taxID) {
		utils.ErrorResponse(c, http.StatusBadRequest, "tax_id must be 11 or 14 digits")
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.GetBillingStatusCommand{
		Session: sessionFromContext(c),
		TaxID:   taxID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := BillingStatusResponse{
		Entity:        newEntityResponse(result.Entity),
		OverallStatus: result.OverallStatus,
		Contracts:     make([]BillingContractView, 0, len(result.Contracts)),
	}
	if result.LatestPayment != nil {
		resp.LatestPayment = newPaymentResponse(result.LatestPayment)
	}

	for _, view := range result.Contracts {
		cv := BillingContractView{
			Contract:    newContractResponse(view.Contract),
			Annotations: h.renderAnnotations(view.Contract.Annotations()),
		}
		if view.Plan != nil {
			cv.Plan = newPlanResponse(view.Plan)
		}
		if view.LatestPayment != nil {
			cv.LatestPayment = newPaymentResponse(view.LatestPayment)
		}
		resp.Contracts = append(resp.Contracts, cv)
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *BillingHandler) renderAnnotations(annotations []contract.Annotation) []BillingAnnotationView {
	if len(annotations) == 0 {
		return nil
	}

	views := make([]BillingAnnotationView, 0, len(annotations))
	for _, a := range annotations {
		view := BillingAnnotationView{
			AuthorSID: a.AuthorSID,
			Note:      a.Note,
			CreatedAt: a.CreatedAt,
		}
		html, err := h.markdown.ToHTMLSanitized(a.Note)
		if err != nil {
			// The raw note is still returned; only the rendering is skipped.
			h.logger.Warnw("failed to render annotation markdown", "error", err, "author_sid", a.AuthorSID)
		} else {
			view.NoteHTML = html
		}
		views = append(views, view)
	}
	return views
}

// ExportCSV answered the legacy spreadsheet export. The endpoint was removed
// and callers must use the JSON status endpoint.
func (h *BillingHandler) ExportCSV(c *gin.Context) {
	utils.GoneResponse(c, "the CSV export has been removed, use GET /api/admin/billing instead")
}
