package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Emnet-tes/Art-Auction/internal/services"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

// CronHandler exposes the auction closer to the external scheduler.
type CronHandler struct {
	closer *services.CloserService
	log    logger.Logger
}

func NewCronHandler(closer *services.CloserService, log logger.Logger) *CronHandler {
	return &CronHandler{
		closer: closer,
		log:    log,
	}
}

func (h *CronHandler) CloseAuctions(c echo.Context) error {
	report, err := h.closer.CloseExpired(c.Request().Context())
	if err != nil {
		h.log.Error("Auction close sweep failed", "error", err)
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
