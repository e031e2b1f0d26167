// Package gateway implements the payment gateway port over JSON/HTTPS with
// HMAC-signed callbacks.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/shared/config"
	"pactum/internal/shared/logger"
)

type HTTPGateway struct {
	baseURL        string
	apiKey         string
	callbackSecret []byte
	client         *http.Client
	logger         logger.Interface
}

func NewHTTPGateway(cfg *config.GatewayConfig, log logger.Interface) *HTTPGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		callbackSecret: []byte(cfg.CallbackSecret),
		client:         &http.Client{Timeout: timeout},
		logger:         log,
	}
}

type chargeRequest struct {
	AmountInCents  int64  `json:"amount_in_cents"`
	Currency       string `json:"currency"`
	IdempotencyKey string `json:"idempotency_key"`
}

type chargeResponse struct {
	GatewayRef string `json:"gateway_ref"`
	Status     string `json:"status"`
}

func (g *HTTPGateway) Charge(ctx context.Context, amountInCents int64, currency, idempotencyKey string) (*paymentgateway.ChargeResult, error) {
	body := chargeRequest{
		AmountInCents:  amountInCents,
		Currency:       currency,
		IdempotencyKey: idempotencyKey,
	}

	var resp chargeResponse
	if err := g.post(ctx, "/v1/charges", idempotencyKey, body, &resp); err != nil {
		return nil, err
	}

	outcome := mapStatus(resp.Status)
	if !outcome.IsValid() {
		return nil, fmt.Errorf("gateway returned unknown status: %s", resp.Status)
	}
	return &paymentgateway.ChargeResult{GatewayRef: resp.GatewayRef, Outcome: outcome}, nil
}

func (g *HTTPGateway) Refund(ctx context.Context, gatewayRef string) error {
	return g.post(ctx, "/v1/charges/"+gatewayRef+"/refund", "", struct{}{}, nil)
}

func (g *HTTPGateway) QueryStatus(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/charges/"+gatewayRef, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway status query failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway status query returned %d", httpResp.StatusCode)
	}

	var resp chargeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode status response: %w", err)
	}

	outcome := mapStatus(resp.Status)
	if !outcome.IsValid() {
		return "", fmt.Errorf("gateway returned unknown status: %s", resp.Status)
	}
	return outcome, nil
}

// VerifyCallback authenticates the raw body against its HMAC-SHA256 signature
// before decoding. Unverifiable callbacks never reach a payment lookup.
func (g *HTTPGateway) VerifyCallback(body []byte, signature string) (*paymentgateway.CallbackPayload, error) {
	mac := hmac.New(sha256.New, g.callbackSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("malformed callback signature")
	}
	expectedRaw, _ := hex.DecodeString(expected)
	if !hmac.Equal(provided, expectedRaw) {
		return nil, fmt.Errorf("callback signature mismatch")
	}

	var payload paymentgateway.CallbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode callback payload: %w", err)
	}
	if payload.IdempotencyKey == "" {
		return nil, fmt.Errorf("callback missing idempotency key")
	}
	return &payload, nil
}

func (g *HTTPGateway) post(ctx context.Context, path, idempotencyKey string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	httpResp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1024))
		g.logger.Warnw("gateway request rejected",
			"path", path, "status", httpResp.StatusCode, "body", string(respBody))
		return fmt.Errorf("gateway returned %d", httpResp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}

func mapStatus(status string) paymentgateway.Outcome {
	switch status {
	case "pending", "processing":
		return paymentgateway.OutcomePending
	case "succeeded", "success", "settled":
		return paymentgateway.OutcomeSuccess
	case "failed", "declined":
		return paymentgateway.OutcomeFailure
	default:
		return paymentgateway.Outcome(status)
	}
}
