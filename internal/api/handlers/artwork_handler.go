package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/internal/services"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

type ArtworkHandler struct {
	catalog *services.CatalogService
	bids    *services.BidService
	log     logger.Logger
}

func NewArtworkHandler(catalog *services.CatalogService, bids *services.BidService, log logger.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		catalog: catalog,
		bids:    bids,
		log:     log,
	}
}

type createArtworkRequest struct {
	Title        string          `json:"title"`
	Artist       string          `json:"artist"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image_url"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	MinIncrement decimal.Decimal `json:"min_increment"`
	EndTime      time.Time       `json:"end_time"`
}

type updateArtworkRequest struct {
	Title        *string          `json:"title"`
	Artist       *string          `json:"artist"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	ImageURL     *string          `json:"image_url"`
	StartingBid  *decimal.Decimal `json:"starting_bid"`
	MinIncrement *decimal.Decimal `json:"min_increment"`
	EndTime      *time.Time       `json:"end_time"`
}

type artworkDetailResponse struct {
	*domain.Artwork
	BidHistory []*domain.Bid `json:"bid_history"`
}

func (h *ArtworkHandler) List(c echo.Context) error {
	artworks, err := h.catalog.List(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list artworks", "error", err)
		return writeError(c, err)
	}

	if artworks == nil {
		artworks = []*domain.Artwork{}
	}
	return c.JSON(http.StatusOK, artworks)
}

func (h *ArtworkHandler) Create(c echo.Context) error {
	var req createArtworkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	artwork, err := h.catalog.Create(c.Request().Context(), services.CreateArtworkInput{
		Title:        req.Title,
		Artist:       req.Artist,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		StartingBid:  req.StartingBid,
		MinIncrement: req.MinIncrement,
		EndTime:      req.EndTime,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, artwork)
}

func (h *ArtworkHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	artwork, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	history, err := h.bids.BidsForArtwork(ctx, artwork.ID.String())
	if err != nil {
		h.log.Error("Failed to load bid history", "artwork_id", artwork.ID, "error", err)
		return writeError(c, err)
	}
	if history == nil {
		history = []*domain.Bid{}
	}

	return c.JSON(http.StatusOK, artworkDetailResponse{
		Artwork:    artwork,
		BidHistory: history,
	})
}

func (h *ArtworkHandler) Update(c echo.Context) error {
	var req updateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	artwork, err := h.catalog.Update(c.Request().Context(), c.Param("id"), services.UpdateArtworkInput{
		Title:        req.Title,
		Artist:       req.Artist,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		StartingBid:  req.StartingBid,
		MinIncrement: req.MinIncrement,
		EndTime:      req.EndTime,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, artwork)
}

func (h *ArtworkHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
