package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/models"
	"github.com/SscSPs/bizdesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) *PgxVendorRepository {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorSelectQuery = `
SELECT
	vendor_id, name, contact_person, email, phone, address, city, country, tax_id, payment_terms,
	status, created_at, updated_at
FROM vendors
`

func (r *PgxVendorRepository) getVendors(ctx context.Context, filterQuery string, args ...any) ([]domain.Vendor, error) {
	rows, err := r.Pool.Query(ctx, vendorSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, translateError("query vendors", err)
	}
	vendors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Vendor])
	if err != nil {
		return nil, translateError("collect vendor rows", err)
	}
	return mapping.ToDomainVendorSlice(vendors), nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return r.getVendors(ctx, `ORDER BY name`)
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendors, err := r.getVendors(ctx, `WHERE vendor_id = $1`, vendorID)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &vendors[0], nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendors (
			vendor_id, name, contact_person, email, phone, address, city, country, tax_id, payment_terms,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID, m.Name, m.ContactPerson, m.Email, m.Phone, m.Address, m.City, m.Country, m.TaxID, m.PaymentTerms,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
	return translateError("insert vendor", err)
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendorID string, patch domain.VendorPatch, now time.Time) error {
	var b updateBuilder
	setIf(&b, "name", patch.Name)
	setNullable(&b, "contact_person", patch.ContactPerson)
	setNullable(&b, "email", patch.Email)
	setNullable(&b, "phone", patch.Phone)
	setNullable(&b, "address", patch.Address)
	setNullable(&b, "city", patch.City)
	setNullable(&b, "country", patch.Country)
	setNullable(&b, "tax_id", patch.TaxID)
	setNullable(&b, "payment_terms", patch.PaymentTerms)
	setIf(&b, "status", patch.Status)
	if b.empty() {
		return nil
	}
	b.set("updated_at", now)

	query, args := b.build("vendors", "vendor_id", vendorID)
	tag, err := r.Pool.Exec(ctx, query, args...)
	return expectOne(tag, err, "update vendor")
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1`, vendorID)
	return expectOne(tag, err, "delete vendor")
}

func (r *PgxVendorRepository) DeleteVendors(ctx context.Context, vendorIDs []string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = ANY($1)`, vendorIDs)
	if err != nil {
		return 0, translateError("delete vendors", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxVendorRepository) UpdateVendorsStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus, now time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE vendors SET status = $1, updated_at = $2 WHERE vendor_id = ANY($3)`, string(status), now, vendorIDs)
	if err != nil {
		return 0, translateError("update vendor status", err)
	}
	return tag.RowsAffected(), nil
}
