package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the artwork category. Only the four listed values are valid.
type Category string

const (
	CategoryPainting    Category = "Painting"
	CategorySculpture   Category = "Sculpture"
	CategoryDigital     Category = "Digital"
	CategoryPhotography Category = "Photography"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPainting, CategorySculpture, CategoryDigital, CategoryPhotography:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
}

// Artwork is the root entity: an item open for bidding with a fixed end time.
// CurrentBid and HighestBidder are a denormalized cache of the latest
// accepted bid and are only advanced together with the bid insert.
type Artwork struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Artist            string          `json:"artist"`
	Description       string          `json:"description"`
	Category          Category        `json:"category"`
	ImageURL          string          `json:"image_url"`
	StartingBid       decimal.Decimal `json:"starting_bid"`
	CurrentBid        decimal.Decimal `json:"current_bid"`
	MinIncrement      decimal.Decimal `json:"min_increment"`
	EndTime           time.Time       `json:"end_time"`
	HighestBidder     *string         `json:"highest_bidder"`
	HighestBidderName string          `json:"highest_bidder_name,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// MinimumBid is the smallest acceptable next bid.
func (a *Artwork) MinimumBid() decimal.Decimal {
	return a.CurrentBid.Add(a.MinIncrement)
}

// Expired reports whether bidding has ended. The end instant itself counts
// as expired.
func (a *Artwork) Expired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// Bid is an accepted offer against an artwork. Immutable once created.
type Bid struct {
	ID         uuid.UUID       `json:"id"`
	ArtworkID  uuid.UUID       `json:"artwork_id"`
	BidderID   string          `json:"bidder"`
	BidderName string          `json:"bidder_name"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

// UserBid is a bid together with the artwork it was placed on.
type UserBid struct {
	Bid
	Artwork Artwork `json:"artwork"`
}

// Won is the outcome of a closed auction with at least one bid. At most one
// exists per artwork.
type Won struct {
	ID        uuid.UUID       `json:"id"`
	ArtworkID uuid.UUID       `json:"artwork_id"`
	WinnerID  string          `json:"winner"`
	Amount    decimal.Decimal `json:"amount"`
	WonAt     time.Time       `json:"won_at"`
}

// WonArtwork is a won record together with the artwork detail.
type WonArtwork struct {
	Won
	Artwork Artwork `json:"artwork"`
}

// User is the authenticated caller as provided by the external identity
// service.
type User struct {
	ID   string
	Name string
}

// CloseReport summarizes one auction-closer sweep.
type CloseReport struct {
	Status    string   `json:"status"`
	Processed int      `json:"processed"`
	Messages  []string `json:"messages"`
}
