package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"paytrack-be/internal/logger"
	"paytrack-be/internal/transport"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/pay", h.InitiatePayment).Methods("POST")
	r.HandleFunc("/verify", h.VerifyPayment).Methods("POST")
	r.HandleFunc("/orders", h.ListOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.UpdateStatus).Methods("PATCH")
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type verifyResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var input CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		transport.Error(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	result, err := h.svc.InitiatePayment(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			transport.Error(w, http.StatusBadRequest, "invalid_amount", ErrInvalidAmount.Error())
			return
		}
		logger.FromCtx(r.Context()).Error("payment initiation failed", zap.Error(err))
		transport.Error(w, http.StatusInternalServerError, "payment_failed", "Payment initiation failed")
		return
	}

	transport.JSON(w, http.StatusOK, result)
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.Error(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	o, err := h.svc.VerifyPayment(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			transport.Error(w, http.StatusBadRequest, "invalid_signature", "Invalid signature, payment verification failed")
		case errors.Is(err, ErrOrderNotFound):
			transport.Error(w, http.StatusNotFound, "order_not_found", "Order not found")
		default:
			logger.FromCtx(r.Context()).Error("payment verification failed", zap.Error(err))
			transport.Error(w, http.StatusInternalServerError, "verification_failed", "Payment verification failed")
		}
		return
	}

	transport.JSON(w, http.StatusOK, verifyResponse{
		Message: "Payment verified successfully",
		Order:   o,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list orders", zap.Error(err))
		transport.Error(w, http.StatusInternalServerError, "list_failed", "Error fetching orders")
		return
	}

	transport.JSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		transport.Error(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}

	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			transport.Error(w, http.StatusNotFound, "order_not_found", "Order not found")
			return
		}
		logger.FromCtx(r.Context()).Error("failed to fetch order", zap.Error(err))
		transport.Error(w, http.StatusInternalServerError, "fetch_failed", "Error fetching order")
		return
	}

	transport.JSON(w, http.StatusOK, o)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		transport.Error(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.Error(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			transport.Error(w, http.StatusBadRequest, "invalid_status", "Unrecognized order status")
		case errors.Is(err, ErrOrderNotFound):
			transport.Error(w, http.StatusNotFound, "order_not_found", "Order not found")
		default:
			logger.FromCtx(r.Context()).Error("failed to update order status", zap.Error(err))
			transport.Error(w, http.StatusInternalServerError, "update_failed", "Error updating order status")
		}
		return
	}

	transport.JSON(w, http.StatusOK, o)
}
