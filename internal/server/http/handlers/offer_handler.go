package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/server/http/dto"
)

// OfferHandler manages catalog endpoints.
type OfferHandler struct {
	facade OfferFacade
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(facade OfferFacade) *OfferHandler {
	return &OfferHandler{facade: facade}
}

// List handles GET /api/offers.
func (h *OfferHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	offers, err := h.facade.Offers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		response = append(response, toOfferResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/offers/:id.
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	offer, err := h.facade.Offer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponse(*offer))
}

// Create handles POST /api/offers.
func (h *OfferHandler) Create(c *gin.Context) {
	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	offer, err := h.facade.CreateOffer(c.Request.Context(), model.Offer{
		Title:    req.Title,
		Price:    req.Price,
		Currency: req.Currency,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOfferResponse(*offer))
}

// Update handles PUT /api/offers/:id.
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	offer, err := h.facade.UpdateOffer(c.Request.Context(), model.Offer{
		ID:       id,
		Title:    req.Title,
		Price:    req.Price,
		Currency: req.Currency,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponse(*offer))
}

// Delete handles DELETE /api/offers/:id.
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOffer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPrice handles POST /api/offers/:id/prices.
func (h *OfferHandler) AddPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.PriceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	entry, err := h.facade.AddOfferPrice(c.Request.Context(), id, model.PriceEntry{
		Amount:        req.Amount,
		Currency:      req.Currency,
		EffectiveFrom: req.EffectiveFrom,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPriceEntryResponse(*entry))
}

// Prices handles GET /api/offers/:id/prices.
func (h *OfferHandler) Prices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entries, err := h.facade.OfferPrices(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.PriceEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toPriceEntryResponse(e))
	}
	c.JSON(http.StatusOK, response)
}

func toOfferResponse(offer model.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:        offer.ID,
		Title:     offer.Title,
		Price:     offer.Price,
		Currency:  offer.Currency,
		ImageURL:  offer.ImageURL,
		CreatedAt: offer.CreatedAt,
	}
}

func toPriceEntryResponse(entry model.PriceEntry) dto.PriceEntryResponse {
	return dto.PriceEntryResponse{
		ID:            entry.ID,
		OfferID:       entry.OfferID,
		Amount:        entry.Amount,
		Currency:      entry.Currency,
		EffectiveFrom: entry.EffectiveFrom,
	}
}
