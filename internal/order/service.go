package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"paytrack-be/internal/logger"
	"paytrack-be/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	InitiatePayment(ctx context.Context, input CreateOrderInput) (*PaymentInitiation, error)
	VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
}

type service struct {
	repo    Repository
	gateway payment.Gateway
}

func NewService(repo Repository, gateway payment.Gateway) Service {
	return &service{
		repo:    repo,
		gateway: gateway,
	}
}

// InitiatePayment creates an order at the gateway, then persists the local
// order record carrying the receipt and the gateway's order id.
func (s *service) InitiatePayment(ctx context.Context, input CreateOrderInput) (*PaymentInitiation, error) {
	log := logger.FromCtx(ctx).With(
		zap.Float64("amount", input.Amount),
		zap.String("customer", input.CustomerName),
	)

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := input.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	receipt := fmt.Sprintf("order_%d", time.Now().UnixMilli())
	amountMinor := int64(math.Round(input.Amount * 100))

	gwOrder, err := s.gateway.CreateOrder(ctx, amountMinor, currency, receipt)
	if err != nil {
		log.Error("gateway order creation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	o := &Order{
		CustomerName:   input.CustomerName,
		OrderDetails:   input.OrderDetails,
		Amount:         input.Amount,
		Currency:       currency,
		Receipt:        gwOrder.Receipt,
		GatewayOrderID: gwOrder.ID,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Info("payment initiated",
		zap.String("order_id", o.ID.String()),
		zap.String("gateway_order_id", gwOrder.ID),
		zap.String("receipt", gwOrder.Receipt),
	)

	return &PaymentInitiation{
		OrderID:      gwOrder.ID,
		Currency:     gwOrder.Currency,
		Amount:       gwOrder.Amount,
		OrderReceipt: gwOrder.Receipt,
	}, nil
}

// VerifyPayment checks the callback signature and, on a match, marks the
// correlated order as paid. A replayed valid callback succeeds again and
// leaves the order paid.
func (s *service) VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("gateway_order_id", gatewayOrderID),
		zap.String("gateway_payment_id", gatewayPaymentID),
	)

	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		log.Warn("payment signature mismatch")
		return nil, ErrInvalidSignature
	}

	o, err := s.repo.GetOrderByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePaymentStatus(ctx, o.ID, PaymentPaid); err != nil {
		log.Error("failed to mark order paid", zap.Error(err))
		return nil, err
	}
	o.PaymentStatus = PaymentPaid

	log.Info("payment verified", zap.String("order_id", o.ID.String()))
	return o, nil
}

// UpdateStatus applies an administrative fulfillment-status change. The
// payment status axis is untouched.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error) {
	parsed, err := ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, parsed); err != nil {
		return nil, err
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(parsed)),
	)
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}
