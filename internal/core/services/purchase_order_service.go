package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// purchaseOrderService implements the PurchaseOrderService interface.
type purchaseOrderService struct {
	BaseService
	purchaseOrderRepo portsrepo.PurchaseOrderRepository
	vendorRepo        portsrepo.VendorRepository
	vehicleRepo       portsrepo.VehicleRepository
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(
	purchaseOrderRepo portsrepo.PurchaseOrderRepository,
	vendorRepo portsrepo.VendorRepository,
	vehicleRepo portsrepo.VehicleRepository,
) portssvc.PurchaseOrderService {
	return &purchaseOrderService{
		purchaseOrderRepo: purchaseOrderRepo,
		vendorRepo:        vendorRepo,
		vehicleRepo:       vehicleRepo,
	}
}

var _ portssvc.PurchaseOrderService = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	taken, err := s.purchaseOrderRepo.IsNumberTaken(ctx, req.Number, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check purchase order number uniqueness", slog.String("number", req.Number))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateKeyError("Purchase Order", req.Number)
	}

	if err := checkReference(ctx, "Vendor", req.VendorID, s.vendorRepo.Exists); err != nil {
		return nil, err
	}
	if err := checkVehicleRefs(ctx, s.vehicleRepo, req.Items); err != nil {
		return nil, err
	}

	orderDate, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return nil, apperrors.NewValidationError("order date must be formatted as YYYY-MM-DD")
	}
	var deliveryDate *time.Time
	if req.DeliveryDate != nil {
		parsed, err := time.Parse(dateLayout, *req.DeliveryDate)
		if err != nil {
			return nil, apperrors.NewValidationError("delivery date must be formatted as YYYY-MM-DD")
		}
		deliveryDate = &parsed
	}

	items, totals := computeDocumentItems(req.Items)

	now := time.Now()
	order := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		Number:          req.Number,
		OrderDate:       orderDate,
		VendorID:        normalizeRef(req.VendorID),
		DeliveryDate:    deliveryDate,
		Notes:           req.Notes,
		Items:           items,
		Totals:          totals,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.purchaseOrderRepo.CreatePurchaseOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to create purchase order", slog.String("number", order.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order created", slog.String("purchase_order_id", order.PurchaseOrderID), slog.String("number", order.Number))
	return &order, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	return s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, orderID)
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error) {
	orders, err := s.purchaseOrderRepo.ListPurchaseOrders(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders")
		return nil, err
	}
	if orders == nil {
		return []domain.PurchaseOrder{}, nil
	}
	return orders, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(ctx context.Context, orderID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	order, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		taken, err := s.purchaseOrderRepo.IsNumberTaken(ctx, *req.Number, orderID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check purchase order number uniqueness", slog.String("number", *req.Number))
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateKeyError("Purchase Order", *req.Number)
		}
		order.Number = *req.Number
	}
	if req.OrderDate != nil {
		parsed, err := time.Parse(dateLayout, *req.OrderDate)
		if err != nil {
			return nil, apperrors.NewValidationError("order date must be formatted as YYYY-MM-DD")
		}
		order.OrderDate = parsed
	}
	if req.VendorID != nil {
		if err := checkReference(ctx, "Vendor", req.VendorID, s.vendorRepo.Exists); err != nil {
			return nil, err
		}
		order.VendorID = normalizeRef(req.VendorID)
	}
	if req.DeliveryDate != nil {
		if *req.DeliveryDate == "" {
			order.DeliveryDate = nil
		} else {
			parsed, err := time.Parse(dateLayout, *req.DeliveryDate)
			if err != nil {
				return nil, apperrors.NewValidationError("delivery date must be formatted as YYYY-MM-DD")
			}
			order.DeliveryDate = &parsed
		}
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	replaceItems := req.Items != nil
	if replaceItems {
		if err := checkVehicleRefs(ctx, s.vehicleRepo, *req.Items); err != nil {
			return nil, err
		}
		order.Items, order.Totals = computeDocumentItems(*req.Items)
	}

	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.purchaseOrderRepo.UpdatePurchaseOrder(ctx, *order, replaceItems); err != nil {
		s.LogError(ctx, err, "Failed to update purchase order", slog.String("purchase_order_id", orderID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order updated", slog.String("purchase_order_id", orderID))
	return order, nil
}

func (s *purchaseOrderService) DeletePurchaseOrder(ctx context.Context, orderID string) error {
	// No other document references purchase orders by a blocking relation, so
	// no pre-delete scan is needed.
	if err := s.purchaseOrderRepo.DeletePurchaseOrder(ctx, orderID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase order", slog.String("purchase_order_id", orderID))
		return err
	}
	s.LogInfo(ctx, "Purchase order deleted", slog.String("purchase_order_id", orderID))
	return nil
}
