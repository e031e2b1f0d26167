package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/application/payment/usecases"
	"pactum/internal/shared/utils"
)

// GatewaySignatureHeader carries the HMAC signature on gateway callbacks.
const GatewaySignatureHeader = "X-Gateway-Signature"

// callback bodies are small JSON documents; anything bigger is hostile
const maxCallbackBodyBytes = 64 << 10

type PaymentHandler struct {
	initiateUC *usecases.InitiatePaymentUseCase
	getUC      *usecases.GetPaymentUseCase
	refundUC   *usecases.RefundPaymentUseCase
	callbackUC *usecases.HandleGatewayCallbackUseCase
}

func NewPaymentHandler(
	initiateUC *usecases.InitiatePaymentUseCase,
	getUC *usecases.GetPaymentUseCase,
	refundUC *usecases.RefundPaymentUseCase,
	callbackUC *usecases.HandleGatewayCallbackUseCase,
) *PaymentHandler {
	return &PaymentHandler{
		initiateUC: initiateUC,
		getUC:      getUC,
		refundUC:   refundUC,
		callbackUC: callbackUC,
	}
}

type InitiatePaymentRequest struct {
	ContractSID    string `json:"contract_sid" binding:"required"`
	AmountInCents  int64  `json:"amount_in_cents" binding:"required,gt=0"`
	Currency       string `json:"currency" binding:"required,len=3"`
	IdempotencyKey string `json:"idempotency_key" binding:"required,max=128"`
}

type InitiatePaymentResponse struct {
	Payment *PaymentResponse `json:"payment"`
	// Reused is true when the idempotency key matched an earlier payment and
	// no new charge was made.
	Reused bool `json:"reused"`
}

// Initiate starts a payment against a contract. Retrying with the same
// idempotency key returns the original payment instead of charging again.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.initiateUC.Execute(c.Request.Context(), usecases.InitiatePaymentCommand{
		Session:        sessionFromContext(c),
		ContractSID:    req.ContractSID,
		AmountInCents:  req.AmountInCents,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := InitiatePaymentResponse{
		Payment: newPaymentResponse(result.Payment),
		Reused:  result.Reused,
	}
	if result.Reused {
		utils.SuccessResponse(c, http.StatusOK, "payment already initiated", resp)
		return
	}
	utils.CreatedResponse(c, resp, "payment initiated")
}

func (h *PaymentHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPaymentCommand{
		Session:    sessionFromContext(c),
		PaymentSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newPaymentResponse(result.Payment))
}

type RefundPaymentRequest struct {
	Reason string `json:"reason"`
}

// Refund reverses a settled payment through the gateway. The local record
// flips to refunded only after the gateway confirms.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.refundUC.Execute(c.Request.Context(), usecases.RefundPaymentCommand{
		Session:    sessionFromContext(c),
		PaymentSID: c.Param("sid"),
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment refunded", newPaymentResponse(result.Payment))
}

type GatewayCallbackResponse struct {
	PaymentSID string `json:"payment_sid"`
	Status     string `json:"status"`
	Duplicate  bool   `json:"duplicate"`
}

// GatewayCallback receives asynchronous payment outcomes from the gateway.
// The raw body is passed through untouched so the HMAC check sees exactly
// the bytes that were signed. Unauthenticated; the signature is the auth.
func (h *PaymentHandler) GatewayCallback(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBodyBytes))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := h.callbackUC.Execute(c.Request.Context(), usecases.HandleGatewayCallbackCommand{
		Body:      body,
		Signature: c.GetHeader(GatewaySignatureHeader),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "callback processed", GatewayCallbackResponse{
		PaymentSID: result.Payment.SID(),
		Status:     result.Payment.Status().String(),
		Duplicate:  result.Duplicate,
	})
}
