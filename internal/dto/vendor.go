package dto

import (
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name          string              `json:"name" binding:"required,max=255"`
	ContactPerson *string             `json:"contactPerson"`
	Email         *string             `json:"email" binding:"omitempty,email"`
	Phone         *string             `json:"phone"`
	Address       *string             `json:"address"`
	City          *string             `json:"city" binding:"omitempty,max=128"`
	Country       *string             `json:"country" binding:"omitempty,max=128"`
	TaxID         *string             `json:"taxID"`
	PaymentTerms  *string             `json:"paymentTerms"`
	Status        domain.VendorStatus `json:"status" binding:"omitempty,oneof=active inactive blocked"`
}

// UpdateVendorRequest defines the data allowed for updating a vendor.
type UpdateVendorRequest struct {
	Name          *string              `json:"name" binding:"omitempty,max=255"`
	ContactPerson *string              `json:"contactPerson"`
	Email         *string              `json:"email" binding:"omitempty,email"`
	Phone         *string              `json:"phone"`
	Address       *string              `json:"address"`
	City          *string              `json:"city" binding:"omitempty,max=128"`
	Country       *string              `json:"country" binding:"omitempty,max=128"`
	TaxID         *string              `json:"taxID"`
	PaymentTerms  *string              `json:"paymentTerms"`
	Status        *domain.VendorStatus `json:"status" binding:"omitempty,oneof=active inactive blocked"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateVendorRequest) ToPatch() domain.VendorPatch {
	return domain.VendorPatch{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Country:       r.Country,
		TaxID:         r.TaxID,
		PaymentTerms:  r.PaymentTerms,
		Status:        r.Status,
	}
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID      string              `json:"vendorID"`
	Name          string              `json:"name"`
	ContactPerson *string             `json:"contactPerson,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Address       *string             `json:"address,omitempty"`
	City          *string             `json:"city,omitempty"`
	Country       *string             `json:"country,omitempty"`
	TaxID         *string             `json:"taxID,omitempty"`
	PaymentTerms  *string             `json:"paymentTerms,omitempty"`
	Status        domain.VendorStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		City:          v.City,
		Country:       v.Country,
		TaxID:         v.TaxID,
		PaymentTerms:  v.PaymentTerms,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// ListVendorsResponse wraps the list of vendors.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

func ToListVendorsResponse(vendors []domain.Vendor) ListVendorsResponse {
	res := make([]VendorResponse, len(vendors))
	for i := range vendors {
		res[i] = ToVendorResponse(&vendors[i])
	}
	return ListVendorsResponse{Vendors: res}
}
