package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

// fakeStore is an in-memory stand-in for the MySQL repositories. It
// implements ArtworkRepository, BidRepository and WonRepository with the
// same contract, including the compare-and-swap in Record.
type fakeStore struct {
	artworks map[uuid.UUID]*domain.Artwork
	bids     map[uuid.UUID][]*domain.Bid
	wons     map[uuid.UUID]*domain.Won

	// beforeRecord runs between the service's read and the CAS write,
	// simulating a concurrent bid landing in that window.
	beforeRecord func()
	// wonErr fails CreateIfAbsent for specific artworks.
	wonErr map[uuid.UUID]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artworks: make(map[uuid.UUID]*domain.Artwork),
		bids:     make(map[uuid.UUID][]*domain.Bid),
		wons:     make(map[uuid.UUID]*domain.Won),
		wonErr:   make(map[uuid.UUID]error),
	}
}

func cloneArtwork(a *domain.Artwork) *domain.Artwork {
	clone := *a
	if a.HighestBidder != nil {
		bidder := *a.HighestBidder
		clone.HighestBidder = &bidder
	}
	return &clone
}

func (f *fakeStore) put(a *domain.Artwork) {
	f.artworks[a.ID] = cloneArtwork(a)
}

func (f *fakeStore) Create(_ context.Context, artwork *domain.Artwork) error {
	f.put(artwork)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Artwork, error) {
	artwork, ok := f.artworks[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	return cloneArtwork(artwork), nil
}

func (f *fakeStore) List(_ context.Context) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for _, artwork := range f.artworks {
		out = append(out, cloneArtwork(artwork))
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, artwork *domain.Artwork) error {
	if _, ok := f.artworks[artwork.ID]; !ok {
		return domain.ErrArtworkNotFound
	}
	f.put(artwork)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.artworks[id]; !ok {
		return domain.ErrArtworkNotFound
	}
	delete(f.artworks, id)
	delete(f.bids, id)
	delete(f.wons, id)
	return nil
}

func (f *fakeStore) ListExpired(_ context.Context, now time.Time) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for _, artwork := range f.artworks {
		if artwork.IsActive && !now.Before(artwork.EndTime) {
			out = append(out, cloneArtwork(artwork))
		}
	}
	return out, nil
}

func (f *fakeStore) Deactivate(_ context.Context, id uuid.UUID) error {
	if artwork, ok := f.artworks[id]; ok {
		artwork.IsActive = false
	}
	return nil
}

func (f *fakeStore) Record(_ context.Context, bid *domain.Bid, priorBid decimal.Decimal) error {
	if f.beforeRecord != nil {
		f.beforeRecord()
	}

	artwork, ok := f.artworks[bid.ArtworkID]
	if !ok {
		return domain.ErrArtworkNotFound
	}
	if !artwork.IsActive || !artwork.CurrentBid.Equal(priorBid) {
		return domain.ErrBidConflict
	}

	artwork.CurrentBid = bid.Amount
	bidder := bid.BidderID
	artwork.HighestBidder = &bidder
	artwork.HighestBidderName = bid.BidderName

	stored := *bid
	f.bids[bid.ArtworkID] = append(f.bids[bid.ArtworkID], &stored)
	return nil
}

func (f *fakeStore) ListForArtwork(_ context.Context, artworkID uuid.UUID) ([]*domain.Bid, error) {
	recorded := f.bids[artworkID]
	out := make([]*domain.Bid, 0, len(recorded))
	for i := len(recorded) - 1; i >= 0; i-- {
		bid := *recorded[i]
		out = append(out, &bid)
	}
	return out, nil
}

func (f *fakeStore) ListForBidder(_ context.Context, bidderID string) ([]*domain.UserBid, error) {
	var out []*domain.UserBid
	for artworkID, recorded := range f.bids {
		artwork := f.artworks[artworkID]
		for i := len(recorded) - 1; i >= 0; i-- {
			if recorded[i].BidderID != bidderID {
				continue
			}
			out = append(out, &domain.UserBid{
				Bid:     *recorded[i],
				Artwork: *cloneArtwork(artwork),
			})
		}
	}
	return out, nil
}

func (f *fakeStore) CreateIfAbsent(_ context.Context, won *domain.Won) (bool, error) {
	if err := f.wonErr[won.ArtworkID]; err != nil {
		return false, err
	}
	if _, ok := f.wons[won.ArtworkID]; ok {
		return false, nil
	}
	stored := *won
	f.wons[won.ArtworkID] = &stored
	return true, nil
}

func (f *fakeStore) ListForWinner(_ context.Context, winnerID string) ([]*domain.WonArtwork, error) {
	var out []*domain.WonArtwork
	for artworkID, won := range f.wons {
		if won.WinnerID != winnerID {
			continue
		}
		out = append(out, &domain.WonArtwork{
			Won:     *won,
			Artwork: *cloneArtwork(f.artworks[artworkID]),
		})
	}
	return out, nil
}

// nopLogger keeps service construction quiet in tests.
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Fatal(string, ...interface{}) {}
