package dto

import "github.com/roadstead/vehicle_rental_app/internal/core/domain"

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	TaxNumber string `json:"taxNumber"`
}

// UpdateCustomerRequest defines a partial customer update.
type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"taxNumber"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string        `json:"customerID"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Address    string        `json:"address"`
	TaxNumber  string        `json:"taxNumber"`
	Audit      AuditResponse `json:"audit"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		TaxNumber:  c.TaxNumber,
		Audit:      ToAuditResponse(c.AuditFields),
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	TaxNumber string `json:"taxNumber"`
}

// UpdateVendorRequest defines a partial vendor update.
type UpdateVendorRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"taxNumber"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID  string        `json:"vendorID"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	Address   string        `json:"address"`
	TaxNumber string        `json:"taxNumber"`
	Audit     AuditResponse `json:"audit"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Phone:     v.Phone,
		Email:     v.Email,
		Address:   v.Address,
		TaxNumber: v.TaxNumber,
		Audit:     ToAuditResponse(v.AuditFields),
	}
}

// ToListVendorResponse converts a slice of vendors to response DTOs.
func ToListVendorResponse(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i := range vendors {
		res[i] = ToVendorResponse(&vendors[i])
	}
	return res
}
