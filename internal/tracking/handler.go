package tracking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"paytrack-be/internal/transport"

	"github.com/gorilla/mux"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tracking-requests", h.List).Methods("GET")
	r.HandleFunc("/tracking-requests", h.Create).Methods("POST")
	r.HandleFunc("/tracking-requests/{id}", h.UpdateStatus).Methods("PATCH")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transport.JSON(w, http.StatusOK, h.repo.List())
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req TrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.Error(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	created := h.repo.Create(&req)
	transport.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		transport.Error(w, http.StatusNotFound, "request_not_found", "Request not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.Error(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	updated, err := h.repo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			transport.Error(w, http.StatusNotFound, "request_not_found", "Request not found")
			return
		}
		transport.Error(w, http.StatusInternalServerError, "update_failed", "Error updating tracking request")
		return
	}

	transport.JSON(w, http.StatusOK, updated)
}
