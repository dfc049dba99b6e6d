package forms

import (
	"context"
	"strings"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// VendorForm is the trimmed vendor dialog input.
type VendorForm struct {
	Name          string `form:"name" validate:"required,max=255"`
	ContactPerson string `form:"contactPerson" validate:"max=255"`
	Email         string `form:"email" validate:"omitempty,email"`
	Phone         string `form:"phone" validate:"max=64"`
	Address       string `form:"address"`
	City          string `form:"city" validate:"max=128"`
	Country       string `form:"country" validate:"max=128"`
	TaxID         string `form:"taxID" validate:"max=64"`
	PaymentTerms  string `form:"paymentTerms" validate:"max=255"`
	Status        string `form:"status" validate:"omitempty,oneof=active inactive blocked"`
}

// VendorDraft is the output of the vendor dialog.
type VendorDraft = Draft[dto.CreateVendorRequest, dto.UpdateVendorRequest]

// VendorDialog edits Existing, or creates a new vendor when it is nil.
type VendorDialog struct {
	Existing *domain.Vendor
}

var vendorOptionalKeys = []string{"contactPerson", "email", "phone", "address", "city", "country", "taxID", "paymentTerms"}

func (d VendorDialog) Draft(f Fields) (VendorDraft, error) {
	in := VendorForm{
		Name:          f.get("name"),
		ContactPerson: f.get("contactPerson"),
		Email:         strings.ToLower(f.get("email")),
		Phone:         f.get("phone"),
		Address:       f.get("address"),
		City:          f.get("city"),
		Country:       f.get("country"),
		TaxID:         f.get("taxID"),
		PaymentTerms:  f.get("paymentTerms"),
		Status:        f.get("status"),
	}
	if d.Existing != nil && !f.has("name") {
		in.Name = d.Existing.Name
	}
	if err := check(in); err != nil {
		return VendorDraft{}, err
	}

	if d.Existing == nil {
		return VendorDraft{Create: &dto.CreateVendorRequest{
			Name:          in.Name,
			ContactPerson: optional(in.ContactPerson),
			Email:         optional(in.Email),
			Phone:         optional(in.Phone),
			Address:       optional(in.Address),
			City:          optional(in.City),
			Country:       optional(in.Country),
			TaxID:         optional(in.TaxID),
			PaymentTerms:  optional(in.PaymentTerms),
			Status:        enumOr(in.Status, domain.VendorActive),
		}}, nil
	}

	e := d.Existing
	upd := dto.UpdateVendorRequest{
		Name:   changed(in.Name, e.Name),
		Status: changedEnum(in.Status, e.Status),
	}
	values := map[string]string{
		"contactPerson": in.ContactPerson,
		"email":         in.Email,
		"phone":         in.Phone,
		"address":       in.Address,
		"city":          in.City,
		"country":       in.Country,
		"taxID":         in.TaxID,
		"paymentTerms":  in.PaymentTerms,
	}
	targets := map[string]struct {
		dst     **string
		current *string
	}{
		"contactPerson": {&upd.ContactPerson, e.ContactPerson},
		"email":         {&upd.Email, e.Email},
		"phone":         {&upd.Phone, e.Phone},
		"address":       {&upd.Address, e.Address},
		"city":          {&upd.City, e.City},
		"country":       {&upd.Country, e.Country},
		"taxID":         {&upd.TaxID, e.TaxID},
		"paymentTerms":  {&upd.PaymentTerms, e.PaymentTerms},
	}
	for _, key := range vendorOptionalKeys {
		if !f.has(key) {
			continue
		}
		t := targets[key]
		*t.dst = changedOptional(values[key], t.current)
	}
	return VendorDraft{ID: e.VendorID, Update: &upd}, nil
}

func (d VendorDialog) Submit(ctx context.Context, f Fields, save SaveFunc[dto.CreateVendorRequest, dto.UpdateVendorRequest]) error {
	draft, err := d.Draft(f)
	if err != nil {
		return err
	}
	return submitDraft(ctx, draft, func(u dto.UpdateVendorRequest) bool { return u.ToPatch().IsEmpty() }, save)
}
