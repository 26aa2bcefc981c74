package order

import (
	"context"
	"errors"
	"testing"

	"paytrack-be/internal/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrder(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Order, error) {
	args := m.Called(ctx, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) ListOrders(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*payment.GatewayOrder, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.GatewayOrder), args.Error(1)
}

func (m *MockGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	args := m.Called(gatewayOrderID, gatewayPaymentID, signature)
	return args.Bool(0)
}

// --- Tests ---

func TestService_InitiatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success converts to minor units", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("CreateOrder", mock.Anything, int64(10000), "INR", mock.MatchedBy(func(r string) bool {
			return len(r) > len("order_")
		})).Return(&payment.GatewayOrder{
			ID:       "order_Nxyz123",
			Amount:   10000,
			Currency: "INR",
			Receipt:  "order_1700000000000",
			Status:   "created",
		}, nil)

		repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *Order) bool {
			return o.Receipt == "order_1700000000000" &&
				o.GatewayOrderID == "order_Nxyz123" &&
				o.Amount == 100
		})).Return(nil)

		result, err := svc.InitiatePayment(ctx, CreateOrderInput{Amount: 100, Currency: "INR", CustomerName: "Asha"})
		assert.NoError(t, err)
		assert.Equal(t, "order_Nxyz123", result.OrderID)
		assert.Equal(t, int64(10000), result.Amount)
		assert.Equal(t, "INR", result.Currency)
		assert.Equal(t, "order_1700000000000", result.OrderReceipt)

		gw.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Defaults currency to INR", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("CreateOrder", mock.Anything, int64(4999), "INR", mock.Anything).
			Return(&payment.GatewayOrder{ID: "order_1", Amount: 4999, Currency: "INR", Receipt: "order_r"}, nil)
		repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.InitiatePayment(ctx, CreateOrderInput{Amount: 49.99})
		assert.NoError(t, err)
		gw.AssertExpectations(t)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockGateway))

		_, err := svc.InitiatePayment(ctx, CreateOrderInput{Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = svc.InitiatePayment(ctx, CreateOrderInput{Amount: -5})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("GatewayError", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("gateway down"))

		_, err := svc.InitiatePayment(ctx, CreateOrderInput{Amount: 100})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&payment.GatewayOrder{ID: "order_1", Receipt: "order_r"}, nil)
		repo.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		_, err := svc.InitiatePayment(ctx, CreateOrderInput{Amount: 100})
		assert.Error(t, err)
	})
}

func TestService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("VerifySignature", "order_gw1", "pay_1", "sig").Return(true)
		repo.On("GetOrderByGatewayOrderID", mock.Anything, "order_gw1").
			Return(&Order{ID: orderID, PaymentStatus: PaymentUnpaid, GatewayOrderID: "order_gw1"}, nil)
		repo.On("UpdatePaymentStatus", mock.Anything, orderID, PaymentPaid).Return(nil)

		o, err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", "sig")
		assert.NoError(t, err)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		repo.AssertExpectations(t)
	})

	t.Run("SignatureMismatch does not touch store", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("VerifySignature", "order_gw1", "pay_1", "bad-sig").Return(false)

		_, err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", "bad-sig")
		assert.ErrorIs(t, err, ErrInvalidSignature)
		repo.AssertNotCalled(t, "GetOrderByGatewayOrderID")
		repo.AssertNotCalled(t, "UpdatePaymentStatus")
	})

	t.Run("OrderNotFound leaves paymentStatus untouched", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("VerifySignature", "order_unknown", "pay_1", "sig").Return(true)
		repo.On("GetOrderByGatewayOrderID", mock.Anything, "order_unknown").
			Return(nil, ErrOrderNotFound)

		_, err := svc.VerifyPayment(ctx, "order_unknown", "pay_1", "sig")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		repo.AssertNotCalled(t, "UpdatePaymentStatus")
	})

	t.Run("ReplayedCallbackIsIdempotent", func(t *testing.T) {
		repo := new(MockRepository)
		gw := new(MockGateway)
		svc := NewService(repo, gw)

		gw.On("VerifySignature", "order_gw1", "pay_1", "sig").Return(true)
		repo.On("GetOrderByGatewayOrderID", mock.Anything, "order_gw1").
			Return(&Order{ID: orderID, PaymentStatus: PaymentPaid}, nil)
		repo.On("UpdatePaymentStatus", mock.Anything, orderID, PaymentPaid).Return(nil)

		o, err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", "sig")
		assert.NoError(t, err)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Success changes only status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGateway))

		repo.On("UpdateOrderStatus", mock.Anything, orderID, StatusShipped).Return(nil)
		repo.On("GetOrder", mock.Anything, orderID).
			Return(&Order{ID: orderID, Status: StatusShipped, PaymentStatus: PaymentPaid, Amount: 100}, nil)

		o, err := svc.UpdateStatus(ctx, orderID, "Shipped")
		assert.NoError(t, err)
		assert.Equal(t, StatusShipped, o.Status)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		assert.Equal(t, 100.0, o.Amount)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGateway))

		_, err := svc.UpdateStatus(ctx, orderID, "Teleported")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateOrderStatus")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGateway))

		repo.On("UpdateOrderStatus", mock.Anything, orderID, StatusShipped).Return(ErrOrderNotFound)

		_, err := svc.UpdateStatus(ctx, orderID, "Shipped")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_GetOrder(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("NotFound is a normal error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGateway))

		repo.On("GetOrder", mock.Anything, orderID).Return(nil, ErrOrderNotFound)

		_, err := svc.GetOrder(ctx, orderID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_ListOrders(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockGateway))

	repo.On("ListOrders", mock.Anything).Return([]*Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	orders, err := svc.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}
