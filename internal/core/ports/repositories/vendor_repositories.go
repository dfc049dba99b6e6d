package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendor(ctx context.Context, vendorID string, patch domain.VendorPatch, now time.Time) error
	DeleteVendor(ctx context.Context, vendorID string) error
	DeleteVendors(ctx context.Context, vendorIDs []string) (int64, error)
	UpdateVendorsStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus, now time.Time) (int64, error)
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
