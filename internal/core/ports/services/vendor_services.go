package services

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// VendorSvcFacade covers vendor reads and mutations.
type VendorSvcFacade interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest) error
	DeleteVendor(ctx context.Context, vendorID string) error
	BulkDeleteVendors(ctx context.Context, vendorIDs []string) (int64, error)
	BulkUpdateVendorStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus) (int64, error)
}
