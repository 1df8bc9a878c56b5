package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/roadstead/vehicle_rental_app/internal/middleware"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteService
}

func newQuoteHandler(qs portssvc.QuoteService) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteService) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:id", h.getQuote)
		quotes.PUT("/:id", h.updateQuote)
		quotes.DELETE("/:id", h.deleteQuote)
	}
}

// createQuote godoc
// @Summary Create a new quote
// @Description Creates a quote with its line items; totals are computed server-side
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate number or missing reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create quote"
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create quote")
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// getQuote godoc
// @Summary Get a quote by ID
// @Tags quotes
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// listQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.QuoteResponse
// @Security BearerAuth
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

// updateQuote godoc
// @Summary Update a quote
// @Description Applies a partial update; submitting items replaces the whole item set and recomputes totals
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   id path string true "Quote ID"
// @Param   quote body dto.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input, duplicate number or missing reference"
// @Failure 404 {object} map[string]string "Quote not found"
// @Security BearerAuth
// @Router /quotes/{id} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// deleteQuote godoc
// @Summary Delete a quote
// @Description Refused with 409 while invoices still reference the quote
// @Tags quotes
// @Param   id path string true "Quote ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote referenced by invoices"
// @Security BearerAuth
// @Router /quotes/{id} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	quoteID := c.Param("id")
	if err := h.quoteService.DeleteQuote(c.Request.Context(), quoteID); err != nil {
		respondServiceError(c, err, "Failed to delete quote")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Quote deleted via API", slog.String("quote_id", quoteID))
	c.Status(http.StatusNoContent)
}
