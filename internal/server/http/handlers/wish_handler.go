package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/server/http/dto"
)

// WishHandler manages wish list endpoints.
type WishHandler struct {
	facade WishFacade
}

// NewWishHandler constructs WishHandler.
func NewWishHandler(facade WishFacade) *WishHandler {
	return &WishHandler{facade: facade}
}

// Create handles POST /api/user/wishes.
func (h *WishHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.WishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	wish, err := h.facade.CreateWish(c.Request.Context(), userID, model.Wish{
		Material:   req.Material,
		SizePrice:  req.SizePrice,
		PhotoPrice: req.PhotoPrice,
		Amount:     req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toWishResponse(*wish))
}

// List handles GET /api/user/wishes.
func (h *WishHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	wishes, err := h.facade.Wishes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.WishResponse, 0, len(wishes))
	for _, w := range wishes {
		response = append(response, toWishResponse(w))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/user/wishes/:id.
func (h *WishHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	wish, err := h.facade.Wish(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishResponse(*wish))
}

// Update handles PUT /api/user/wishes/:id.
func (h *WishHandler) Update(c *gin.Context) {
	userID := CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.WishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	wish, err := h.facade.UpdateWish(c.Request.Context(), userID, model.Wish{
		ID:         id,
		Material:   req.Material,
		SizePrice:  req.SizePrice,
		PhotoPrice: req.PhotoPrice,
		Amount:     req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishResponse(*wish))
}

// Delete handles DELETE /api/user/wishes/:id.
func (h *WishHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteWish(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toWishResponse(wish model.Wish) dto.WishResponse {
	return dto.WishResponse{
		ID:         wish.ID,
		Material:   wish.Material,
		SizePrice:  wish.SizePrice,
		PhotoPrice: wish.PhotoPrice,
		Amount:     wish.Amount,
		CreatedAt:  wish.CreatedAt,
	}
}
