package handler

import (
	"github.com/deppfellow/go-qna/internal/validation"
	"github.com/google/uuid"
)

// IDRequest carries the :id path parameter. The value is not parsed here;
// a malformed id is reported by the repository as INVALID_UUID.
type IDRequest struct {
	ID string `param:"id"`
}

func (r *IDRequest) Validate() error {
	if r.ID == "" {
		return validation.CustomValidationErrors{{Field: "id", Message: "is required"}}
	}
	return nil
}

// ListRequest is the empty request of list endpoints.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// IDResponse is returned by create and delete endpoints.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
