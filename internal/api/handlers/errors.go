package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Everything
// unrecognized is a 500 with a generic body; internals never leak to the
// caller.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrAuctionClosed):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrArtworkNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrArtworkNotFound.Error()})
	case errors.Is(err, domain.ErrBidConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "please retry, the artwork was updated concurrently"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
