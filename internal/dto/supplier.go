package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// CreateSupplierRequest is the payload for registering a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// SupplierResponse is the API representation of a supplier.
type SupplierResponse struct {
	SupplierID string    `json:"supplierID"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToSupplierResponse maps a domain supplier to its API shape.
func ToSupplierResponse(s domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Contact:    s.Contact,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
