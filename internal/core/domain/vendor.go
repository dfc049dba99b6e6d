package domain

import "time"

// VendorStatus is the state of a supplier record.
type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorInactive VendorStatus = "inactive"
	VendorBlocked  VendorStatus = "blocked"
)

func (s VendorStatus) Valid() bool {
	switch s {
	case VendorActive, VendorInactive, VendorBlocked:
		return true
	}
	return false
}

// Vendor is a supplier the business purchases from.
type Vendor struct {
	VendorID      string       `json:"vendorID"`
	Name          string       `json:"name"`
	ContactPerson *string      `json:"contactPerson,omitempty"`
	Email         *string      `json:"email,omitempty"`
	Phone         *string      `json:"phone,omitempty"`
	Address       *string      `json:"address,omitempty"`
	City          *string      `json:"city,omitempty"`
	Country       *string      `json:"country,omitempty"`
	TaxID         *string      `json:"taxID,omitempty"`
	PaymentTerms  *string      `json:"paymentTerms,omitempty"`
	Status        VendorStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// VendorPatch carries the fields of a partial vendor update.
type VendorPatch struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	City          *string
	Country       *string
	TaxID         *string
	PaymentTerms  *string
	Status        *VendorStatus
}

func (p VendorPatch) IsEmpty() bool {
	return p.Name == nil && p.ContactPerson == nil && p.Email == nil && p.Phone == nil &&
		p.Address == nil && p.City == nil && p.Country == nil && p.TaxID == nil && p.PaymentTerms == nil && p.Status == nil
}
