package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/api/middleware"
	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/internal/services"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

type BidHandler struct {
	bids *services.BidService
	log  logger.Logger
}

func NewBidHandler(bids *services.BidService, log logger.Logger) *BidHandler {
	return &BidHandler{
		bids: bids,
		log:  log,
	}
}

type placeBidRequest struct {
	ArtworkID string          `json:"artwork_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (h *BidHandler) PlaceBid(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	bid, err := h.bids.PlaceBid(c.Request().Context(), req.ArtworkID, user, req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, bid)
}

func (h *BidHandler) ListForArtwork(c echo.Context) error {
	bids, err := h.bids.BidsForArtwork(c.Request().Context(), c.Param("artwork_id"))
	if err != nil {
		return writeError(c, err)
	}

	if bids == nil {
		bids = []*domain.Bid{}
	}
	return c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) MyBids(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	bids, err := h.bids.BidsForUser(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	if bids == nil {
		bids = []*domain.UserBid{}
	}
	return c.JSON(http.StatusOK, bids)
}
