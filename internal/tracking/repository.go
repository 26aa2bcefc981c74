package tracking

import (
	"sync"
	"time"
)

type Repository interface {
	List() []*TrackingRequest
	Create(req *TrackingRequest) *TrackingRequest
	UpdateStatus(id int64, status string) (*TrackingRequest, error)
}

// memoryRepository holds tracking requests in process memory behind a mutex.
// IDs are sequential from 1 in creation order.
type memoryRepository struct {
	mu       sync.Mutex
	requests []*TrackingRequest
	nextID   int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) List() []*TrackingRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*TrackingRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

func (r *memoryRepository) Create(req *TrackingRequest) *TrackingRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.nextID
	r.nextID++
	if req.Status == "" {
		req.Status = DefaultStatus
	}
	req.CreatedAt = time.Now()

	r.requests = append(r.requests, req)
	return req
}

func (r *memoryRepository) UpdateStatus(id int64, status string) (*TrackingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.requests {
		if req.ID == id {
			req.Status = status
			return req, nil
		}
	}
	return nil, ErrRequestNotFound
}
