package models

import "time"

// Vendor is a row of the vendors table.
type Vendor struct {
	VendorID      string    `db:"vendor_id"`
	Name          string    `db:"name"`
	ContactPerson *string   `db:"contact_person"`
	Email         *string   `db:"email"`
	Phone         *string   `db:"phone"`
	Address       *string   `db:"address"`
	City          *string   `db:"city"`
	Country       *string   `db:"country"`
	TaxID         *string   `db:"tax_id"`
	PaymentTerms  *string   `db:"payment_terms"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
