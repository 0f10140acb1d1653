package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

func validCreateInput(t *testing.T, endTime time.Time) CreateArtworkInput {
	t.Helper()
	return CreateArtworkInput{
		Title:        "Blue Horizon",
		Artist:       "M. Chen",
		Description:  "Oil on canvas.",
		Category:     "Painting",
		ImageURL:     "https://images.example.com/blue-horizon.jpg",
		StartingBid:  dec(t, "100.00"),
		MinIncrement: dec(t, "10.00"),
		EndTime:      endTime,
	}
}

func TestCatalogService_Create(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	catalog := NewCatalogService(store, nopLogger{})
	catalog.now = func() time.Time { return now }

	artwork, err := catalog.Create(context.Background(), validCreateInput(t, now.Add(time.Hour)))
	require.NoError(t, err)
	require.True(t, artwork.IsActive)
	require.True(t, artwork.CurrentBid.Equal(dec(t, "100.00")), "current bid starts at the starting bid")
	require.Nil(t, artwork.HighestBidder)
	require.False(t, artwork.CreatedAt.IsZero())

	stored, err := store.GetByID(context.Background(), artwork.ID)
	require.NoError(t, err)
	require.Equal(t, artwork.Title, stored.Title)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(t *testing.T, input *CreateArtworkInput)
	}{
		{
			name: "end_time_in_past",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.EndTime = now.Add(-time.Minute)
			},
		},
		{
			name: "end_time_exactly_now",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.EndTime = now
			},
		},
		{
			name: "missing_title",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.Title = ""
			},
		},
		{
			name: "unknown_category",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.Category = "Performance"
			},
		},
		{
			name: "negative_starting_bid",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.StartingBid = dec(t, "-1.00")
			},
		},
		{
			name: "zero_min_increment",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.MinIncrement = dec(t, "0")
			},
		},
		{
			name: "title_too_long",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.Title = strings.Repeat("x", 101)
			},
		},
		{
			name: "artist_too_long",
			mutate: func(t *testing.T, input *CreateArtworkInput) {
				input.Artist = strings.Repeat("x", 51)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			catalog := NewCatalogService(store, nopLogger{})
			catalog.now = func() time.Time { return now }

			input := validCreateInput(t, now.Add(time.Hour))
			tt.mutate(t, &input)

			_, err := catalog.Create(context.Background(), input)
			require.ErrorIs(t, err, domain.ErrValidation)
			require.Empty(t, store.artworks)
		})
	}
}

func TestCatalogService_Get_AcceptsAlternateEncodings(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	catalog := NewCatalogService(store, nopLogger{})
	catalog.now = func() time.Time { return now }

	artwork, err := catalog.Create(context.Background(), validCreateInput(t, now.Add(time.Hour)))
	require.NoError(t, err)

	canonical := artwork.ID.String()
	bareHex := strings.ReplaceAll(canonical, "-", "")
	base64url := base64.RawURLEncoding.EncodeToString(artwork.ID[:])

	for _, encoded := range []string{canonical, bareHex, base64url} {
		got, err := catalog.Get(context.Background(), encoded)
		require.NoError(t, err, "encoding %q", encoded)
		require.Equal(t, artwork.ID, got.ID)
		require.Equal(t, artwork.Title, got.Title)
	}

	_, err = catalog.Get(context.Background(), "nonsense-value")
	require.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestCatalogService_Update_Partial(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	catalog := NewCatalogService(store, nopLogger{})
	catalog.now = func() time.Time { return now }

	artwork, err := catalog.Create(context.Background(), validCreateInput(t, now.Add(time.Hour)))
	require.NoError(t, err)

	newTitle := "Blue Horizon II"
	updated, err := catalog.Update(context.Background(), artwork.ID.String(), UpdateArtworkInput{
		Title: &newTitle,
	})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.Equal(t, artwork.Artist, updated.Artist, "untouched fields keep their values")
	require.True(t, updated.CurrentBid.Equal(artwork.CurrentBid))

	badCategory := "Graffiti"
	_, err = catalog.Update(context.Background(), artwork.ID.String(), UpdateArtworkInput{
		Category: &badCategory,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = catalog.Update(context.Background(), "ffffffff-ffff-4fff-8fff-ffffffffffff", UpdateArtworkInput{
		Title: &newTitle,
	})
	require.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestCatalogService_Delete(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	catalog := NewCatalogService(store, nopLogger{})
	catalog.now = func() time.Time { return now }

	artwork, err := catalog.Create(context.Background(), validCreateInput(t, now.Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(context.Background(), artwork.ID.String()))

	_, err = catalog.Get(context.Background(), artwork.ID.String())
	require.ErrorIs(t, err, domain.ErrArtworkNotFound)

	err = catalog.Delete(context.Background(), artwork.ID.String())
	require.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestCatalogService_List(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	catalog := NewCatalogService(store, nopLogger{})
	catalog.now = func() time.Time { return now }

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)

	for i := 0; i < 3; i++ {
		_, err := catalog.Create(context.Background(), validCreateInput(t, now.Add(time.Hour)))
		require.NoError(t, err)
	}

	listed, err = catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
}
