package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"paytrack-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	ListOrders(ctx context.Context) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	id, customer_name, order_details, amount, currency,
	status, payment_status, receipt, gateway_order_id,
	created_at, updated_at
`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var o Order
	var details []byte
	err := row.Scan(
		&o.ID, &o.CustomerName, &details, &o.Amount, &o.Currency,
		&o.Status, &o.PaymentStatus, &o.Receipt, &o.GatewayOrderID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.OrderDetails = json.RawMessage(details)
	return &o, nil
}

func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentUnpaid
	}
	if len(o.OrderDetails) == 0 {
		o.OrderDetails = json.RawMessage("[]")
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_name, order_details, amount, currency,
			status, payment_status, receipt, gateway_order_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		o.ID,
		o.CustomerName,
		[]byte(o.OrderDetails),
		o.Amount,
		o.Currency,
		o.Status,
		o.PaymentStatus,
		o.Receipt,
		o.GatewayOrderID,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("receipt", o.Receipt),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *repository) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE gateway_order_id = $1
	`, gatewayOrderID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET payment_status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) ListOrders(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders ORDER BY created_at ASC
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
