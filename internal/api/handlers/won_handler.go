package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Emnet-tes/Art-Auction/internal/api/middleware"
	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/internal/services"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

type WonHandler struct {
	wins *services.WinService
	log  logger.Logger
}

func NewWonHandler(wins *services.WinService, log logger.Logger) *WonHandler {
	return &WonHandler{
		wins: wins,
		log:  log,
	}
}

func (h *WonHandler) MyWins(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	wins, err := h.wins.WinsForUser(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	if wins == nil {
		wins = []*domain.WonArtwork{}
	}
	return c.JSON(http.StatusOK, wins)
}
