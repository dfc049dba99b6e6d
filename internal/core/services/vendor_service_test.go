package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/core/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateVendor_DefaultsAndBlankOptionals(t *testing.T) {
	repo := new(MockVendorRepository)
	rec := &notify.Recorder{}
	svc := services.NewVendorService(repo, services.WithNotifier(rec), services.WithClock(fixedClock))

	var saved domain.Vendor
	repo.On("SaveVendor", mock.Anything, mock.AnythingOfType("domain.Vendor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Vendor) }).
		Return(nil).Once()

	created, err := svc.CreateVendor(context.Background(), dto.CreateVendorRequest{
		Name:          " Acme Supplies ",
		ContactPerson: strPtr("   "),
		Email:         strPtr("Sales@Acme.test"),
		City:          strPtr(" Lisbon "),
		Country:       strPtr(" "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Supplies", created.Name)
	assert.Equal(t, domain.VendorActive, created.Status)
	assert.Nil(t, saved.ContactPerson)
	require.NotNil(t, saved.Email)
	assert.Equal(t, "sales@acme.test", *saved.Email)
	require.NotNil(t, saved.City)
	assert.Equal(t, "Lisbon", *saved.City)
	assert.Nil(t, saved.Country)
	assert.Equal(t, fixedNow, saved.CreatedAt)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Vendor created successfully", last.Title)
}

func TestBulkVendorOperations(t *testing.T) {
	repo := new(MockVendorRepository)
	rec := &notify.Recorder{}
	svc := services.NewVendorService(repo, services.WithNotifier(rec), services.WithClock(fixedClock))
	ctx := context.Background()

	repo.On("UpdateVendorsStatus", mock.Anything, []string{"v1", "v2", "v3"}, domain.VendorBlocked, fixedNow).Return(int64(3), nil).Once()
	n, err := svc.BulkUpdateVendorStatus(ctx, []string{"v1", "v2", "v3"}, domain.VendorBlocked)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	last, _ := rec.Last()
	assert.Equal(t, "3 vendor(s) updated successfully", last.Title)

	repo.On("DeleteVendors", mock.Anything, []string{"v1"}).Return(int64(0), apperrors.Backend("delete vendors", errors.New("vendor is referenced"))).Once()
	_, err = svc.BulkDeleteVendors(ctx, []string{"v1"})
	require.Error(t, err)
	last, _ = rec.Last()
	assert.Equal(t, notify.Error, last.Kind)
	assert.Equal(t, "vendor is referenced", last.Detail)

	_, err = svc.BulkUpdateVendorStatus(ctx, []string{"v1"}, domain.VendorStatus("paused"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestUpdateVendor_TrimsLocation(t *testing.T) {
	repo := new(MockVendorRepository)
	svc := services.NewVendorService(repo, services.WithNotifier(&notify.Recorder{}), services.WithClock(fixedClock))

	repo.On("UpdateVendor", mock.Anything, "v1", mock.MatchedBy(func(p domain.VendorPatch) bool {
		return p.City != nil && *p.City == "Porto" && p.Country != nil && *p.Country == "" && p.Name == nil
	}), fixedNow).Return(nil).Once()

	err := svc.UpdateVendor(context.Background(), "v1", dto.UpdateVendorRequest{City: strPtr(" Porto "), Country: strPtr("  ")})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateVendor_BlankNameRejected(t *testing.T) {
	repo := new(MockVendorRepository)
	svc := services.NewVendorService(repo, services.WithNotifier(&notify.Recorder{}))

	err := svc.UpdateVendor(context.Background(), "v1", dto.UpdateVendorRequest{Name: strPtr("  ")})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateVendor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteVendor_ExcludedFromNextList(t *testing.T) {
	repo := new(MockVendorRepository)
	svc := services.NewVendorService(repo, services.WithNotifier(&notify.Recorder{}))
	ctx := context.Background()

	repo.On("ListVendors", mock.Anything).Return([]domain.Vendor{{VendorID: "v1"}, {VendorID: "v2"}}, nil).Once()
	repo.On("DeleteVendor", mock.Anything, "v1").Return(nil).Once()
	repo.On("ListVendors", mock.Anything).Return([]domain.Vendor{{VendorID: "v2"}}, nil).Once()

	before, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, svc.DeleteVendor(ctx, "v1"))

	after, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "v2", after[0].VendorID)
}
