package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paytrack-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

type razorpayGateway struct {
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- CreateOrder -----------------

func (g *razorpayGateway) CreateOrder(
	ctx context.Context,
	amountMinor int64,
	currency, receipt string,
) (*GatewayOrder, error) {

	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amountMinor),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)

	body := razorpayOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal order request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", razorpayBaseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("Sending order request to Razorpay")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Razorpay request failed", zap.Error(err))
		return nil, fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Razorpay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("razorpay error: %s", string(bodyBytes))
	}

	var res razorpayOrderResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Razorpay response", zap.Error(err))
		return nil, err
	}

	log.Info("Razorpay order created",
		zap.String("gateway_order_id", res.ID),
		zap.String("status", res.Status),
	)

	return &GatewayOrder{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
		Status:   res.Status,
	}, nil
}

// ----------------- Verify Signature -----------------

func (g *razorpayGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return VerifySignature(g.keySecret, gatewayOrderID, gatewayPaymentID, signature)
}
