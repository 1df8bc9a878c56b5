package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// vehicleHandler handles HTTP requests for the fleet, its transactions and
// the derived profitability view.
type vehicleHandler struct {
	vehicleService     portssvc.VehicleService
	transactionService portssvc.VehicleTransactionService
}

func newVehicleHandler(vs portssvc.VehicleService, ts portssvc.VehicleTransactionService) *vehicleHandler {
	return &vehicleHandler{vehicleService: vs, transactionService: ts}
}

// registerVehicleRoutes registers routes related to vehicles and their
// transactions.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleService, transactionService portssvc.VehicleTransactionService) {
	h := newVehicleHandler(vehicleService, transactionService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
		vehicles.GET("/:id/summary", h.getVehicleSummary)
		vehicles.GET("/:id/transactions", h.listVehicleTransactions)
	}

	transactions := rg.Group("/vehicle-transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createVehicle godoc
// @Summary Register a vehicle
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate vehicle number"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// getVehicle godoc
// @Summary Get a vehicle by ID
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.VehicleResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVehicleResponse(vehicles))
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	var req dto.UpdateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Description Refused with 409 while quotes still cite the vehicle in their line items
// @Tags vehicles
// @Param   id path string true "Vehicle ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 409 {object} map[string]string "Vehicle referenced by quotes"
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}

// getVehicleSummary godoc
// @Summary Get a vehicle's profitability summary
// @Description Recomputes monthly revenue, expenses and profit from the vehicle's transactions
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} domain.ProfitabilitySummary
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/summary [get]
func (h *vehicleHandler) getVehicleSummary(c *gin.Context) {
	summary, err := h.vehicleService.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to summarize vehicle")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listVehicleTransactions godoc
// @Summary List a vehicle's transactions
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {array} dto.VehicleTransactionResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/transactions [get]
func (h *vehicleHandler) listVehicleTransactions(c *gin.Context) {
	txns, err := h.transactionService.ListTransactionsByVehicleID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicle transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVehicleTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Record a revenue or expense entry for a vehicle
// @Tags vehicle-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateVehicleTransactionRequest true "Transaction details"
// @Success 201 {object} dto.VehicleTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or missing reference"
// @Security BearerAuth
// @Router /vehicle-transactions [post]
func (h *vehicleHandler) createTransaction(c *gin.Context) {
	var req dto.CreateVehicleTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create vehicle transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a vehicle transaction by ID
// @Tags vehicle-transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.VehicleTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /vehicle-transactions/{id} [get]
func (h *vehicleHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve vehicle transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a vehicle transaction
// @Tags vehicle-transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateVehicleTransactionRequest true "Fields to update"
// @Success 200 {object} dto.VehicleTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or missing reference"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /vehicle-transactions/{id} [put]
func (h *vehicleHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateVehicleTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update vehicle transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a vehicle transaction
// @Tags vehicle-transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /vehicle-transactions/{id} [delete]
func (h *vehicleHandler) deleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete vehicle transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
