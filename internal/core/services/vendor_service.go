package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/querycache"
	"github.com/google/uuid"
)

type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
	cache      *querycache.Cache[[]domain.Vendor]
}

// NewVendorService creates the vendor service.
func NewVendorService(repo portsrepo.VendorRepositoryFacade, options ...ServiceOption) portssvc.VendorSvcFacade {
	base := newBaseService(options...)
	return &vendorService{
		BaseService: base,
		vendorRepo:  repo,
		cache:       newCache[[]domain.Vendor](base),
	}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) invalidate() {
	s.cache.Invalidate(domain.CollectionVendors)
}

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.cache.Fetch(ctx, domain.CollectionVendors, func(ctx context.Context) ([]domain.Vendor, error) {
		vendors, err := s.vendorRepo.ListVendors(ctx)
		if err != nil {
			return nil, err
		}
		if vendors == nil {
			vendors = []domain.Vendor{}
		}
		return vendors, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors from repository")
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	s.LogDebug(ctx, "Vendors listed successfully", slog.Int("count", len(vendors)))
	return vendors, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	var created domain.Vendor
	err := s.runMutation(ctx, mutation{failure: "Failed to create vendor", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		name, err := requireText("name", req.Name)
		if err != nil {
			return "", err
		}
		status := req.Status
		if status == "" {
			status = domain.VendorActive
		}
		if !status.Valid() {
			return "", validationErr("unknown vendor status %q", status)
		}

		now := s.now()
		created = domain.Vendor{
			VendorID:      uuid.NewString(),
			Name:          name,
			ContactPerson: blankToNil(req.ContactPerson),
			Email:         lowerPtr(blankToNil(req.Email)),
			Phone:         blankToNil(req.Phone),
			Address:       blankToNil(req.Address),
			City:          blankToNil(req.City),
			Country:       blankToNil(req.Country),
			TaxID:         blankToNil(req.TaxID),
			PaymentTerms:  blankToNil(req.PaymentTerms),
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.vendorRepo.SaveVendor(ctx, created); err != nil {
			return "", err
		}
		return "Vendor created successfully", nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update vendor", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		patch := req.ToPatch()
		if patch.IsEmpty() {
			return "", validationErr("no fields to update")
		}
		patch.Name = trimPtr(patch.Name)
		if patch.Name != nil && *patch.Name == "" {
			return "", validationErr("name cannot be blank")
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return "", validationErr("unknown vendor status %q", *patch.Status)
		}
		patch.ContactPerson = trimPtr(patch.ContactPerson)
		patch.Email = lowerPtr(trimPtr(patch.Email))
		patch.Phone = trimPtr(patch.Phone)
		patch.Address = trimPtr(patch.Address)
		patch.City = trimPtr(patch.City)
		patch.Country = trimPtr(patch.Country)
		patch.TaxID = trimPtr(patch.TaxID)
		patch.PaymentTerms = trimPtr(patch.PaymentTerms)
		if err := s.vendorRepo.UpdateVendor(ctx, vendorID, patch, s.now()); err != nil {
			return "", err
		}
		return "Vendor updated successfully", nil
	})
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to delete vendor", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
			return "", err
		}
		return "Vendor deleted successfully", nil
	})
}

func (s *vendorService) BulkDeleteVendors(ctx context.Context, vendorIDs []string) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to delete vendors", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		ids, err := uniqueIDs(vendorIDs)
		if err != nil {
			return "", err
		}
		n, err = s.vendorRepo.DeleteVendors(ctx, ids)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d vendor(s) deleted successfully", n), nil
	})
	return n, err
}

func (s *vendorService) BulkUpdateVendorStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to update vendors", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if !status.Valid() {
			return "", validationErr("unknown vendor status %q", status)
		}
		ids, err := uniqueIDs(vendorIDs)
		if err != nil {
			return "", err
		}
		n, err = s.vendorRepo.UpdateVendorsStatus(ctx, ids, status, s.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d vendor(s) updated successfully", n), nil
	})
	return n, err
}

func lowerPtr(v *string) *string {
	if v == nil {
		return nil
	}
	l := strings.ToLower(*v)
	return &l
}
