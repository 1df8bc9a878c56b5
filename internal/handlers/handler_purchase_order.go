package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	purchaseOrderService portssvc.PurchaseOrderService
}

func newPurchaseOrderHandler(ps portssvc.PurchaseOrderService) *purchaseOrderHandler {
	return &purchaseOrderHandler{purchaseOrderService: ps}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, purchaseOrderService portssvc.PurchaseOrderService) {
	h := newPurchaseOrderHandler(purchaseOrderService)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:id", h.getPurchaseOrder)
		orders.PUT("/:id", h.updatePurchaseOrder)
		orders.DELETE("/:id", h.deletePurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a new purchase order
// @Description Creates a purchase order with its line items; totals are computed server-side
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate number or missing reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create purchase order"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase Order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	order, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PurchaseOrderResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.purchaseOrderService.ListPurchaseOrders(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchaseOrderResponse(orders))
}

// updatePurchaseOrder godoc
// @Summary Update a purchase order
// @Description Applies a partial update; submitting items replaces the whole item set and recomputes totals
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase Order ID"
// @Param   order body dto.UpdatePurchaseOrderRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate number or missing reference"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id} [put]
func (h *purchaseOrderHandler) updatePurchaseOrder(c *gin.Context) {
	var req dto.UpdatePurchaseOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.purchaseOrderService.UpdatePurchaseOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// deletePurchaseOrder godoc
// @Summary Delete a purchase order
// @Tags purchase-orders
// @Param   id path string true "Purchase Order ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id} [delete]
func (h *purchaseOrderHandler) deletePurchaseOrder(c *gin.Context) {
	if err := h.purchaseOrderService.DeletePurchaseOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete purchase order")
		return
	}
	c.Status(http.StatusNoContent)
}
