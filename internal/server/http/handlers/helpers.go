package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/server/http/dto"
	"github.com/anporsh/printery/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	return limit, offset
}

// respondError maps domain errors onto HTTP responses. Uniqueness
// conflicts keep the offending field and value; any unclassified error
// degrades to an opaque 500 so storage details never leak to clients.
func respondError(c *gin.Context, err error) {
	var dup *domainErrors.DuplicateKeyError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, dto.ConflictResponse{
			Error: "duplicate value",
			Field: dup.Field,
			Value: dup.Value,
		})
	case errors.Is(err, domainErrors.ErrNoWishes):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no wishes found"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrInvalidWish),
		errors.Is(err, domainErrors.ErrInvalidOffer),
		errors.Is(err, domainErrors.ErrInvalidPriceEntry),
		errors.Is(err, domainErrors.ErrInvalidStatusTransition):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
