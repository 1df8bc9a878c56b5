package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// vendorService implements the VendorService interface.
type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepository
}

// NewVendorService creates a new vendor service.
func NewVendorService(vendorRepo portsrepo.VendorRepository) portssvc.VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorService = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, userID string) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		VendorID:  uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to create vendor", slog.String("name", vendor.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *vendorService) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.TaxNumber != nil {
		vendor.TaxNumber = *req.TaxNumber
	}

	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = userID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, err
	}

	s.LogInfo(ctx, "Vendor updated", slog.String("vendor_id", vendorID))
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		s.LogError(ctx, err, "Failed to delete vendor", slog.String("vendor_id", vendorID))
		return err
	}
	s.LogInfo(ctx, "Vendor deleted", slog.String("vendor_id", vendorID))
	return nil
}
