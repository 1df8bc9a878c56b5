package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// payslipHandler handles HTTP requests related to payslips.
type payslipHandler struct {
	payslipService portssvc.PayslipService
}

func newPayslipHandler(ps portssvc.PayslipService) *payslipHandler {
	return &payslipHandler{payslipService: ps}
}

// registerPayslipRoutes registers routes related to payslips.
func registerPayslipRoutes(rg *gin.RouterGroup, payslipService portssvc.PayslipService) {
	h := newPayslipHandler(payslipService)

	payslips := rg.Group("/payslips")
	{
		payslips.POST("", h.createPayslip)
		payslips.GET("", h.listPayslips)
		payslips.GET("/:id", h.getPayslip)
		payslips.PUT("/:id", h.updatePayslip)
		payslips.DELETE("/:id", h.deletePayslip)
	}
}

// createPayslip godoc
// @Summary Create a new payslip
// @Description Net pay is computed server-side from salary, allowances and deductions
// @Tags payslips
// @Accept  json
// @Produce  json
// @Param   payslip body dto.CreatePayslipRequest true "Payslip details"
// @Success 201 {object} dto.PayslipResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate number or missing employee"
// @Security BearerAuth
// @Router /payslips [post]
func (h *payslipHandler) createPayslip(c *gin.Context) {
	var req dto.CreatePayslipRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payslip, err := h.payslipService.CreatePayslip(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create payslip")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayslipResponse(payslip))
}

// getPayslip godoc
// @Summary Get a payslip by ID
// @Tags payslips
// @Produce  json
// @Param   id path string true "Payslip ID"
// @Success 200 {object} dto.PayslipResponse
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payslips/{id} [get]
func (h *payslipHandler) getPayslip(c *gin.Context) {
	payslip, err := h.payslipService.GetPayslipByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payslip")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponse(payslip))
}

// listPayslips godoc
// @Summary List payslips
// @Tags payslips
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PayslipResponse
// @Security BearerAuth
// @Router /payslips [get]
func (h *payslipHandler) listPayslips(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payslips, err := h.payslipService.ListPayslips(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list payslips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayslipResponse(payslips))
}

// updatePayslip godoc
// @Summary Update a payslip
// @Description Net pay is recomputed from the resulting pay components
// @Tags payslips
// @Accept  json
// @Produce  json
// @Param   id path string true "Payslip ID"
// @Param   payslip body dto.UpdatePayslipRequest true "Fields to update"
// @Success 200 {object} dto.PayslipResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate number"
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payslips/{id} [put]
func (h *payslipHandler) updatePayslip(c *gin.Context) {
	var req dto.UpdatePayslipRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payslip, err := h.payslipService.UpdatePayslip(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update payslip")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponse(payslip))
}

// deletePayslip godoc
// @Summary Delete a payslip
// @Tags payslips
// @Param   id path string true "Payslip ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payslips/{id} [delete]
func (h *payslipHandler) deletePayslip(c *gin.Context) {
	if err := h.payslipService.DeletePayslip(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete payslip")
		return
	}
	c.Status(http.StatusNoContent)
}
