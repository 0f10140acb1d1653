package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"Painting", "Sculpture", "Digital", "Photography"} {
		category, err := ParseCategory(valid)
		require.NoError(t, err)
		require.Equal(t, Category(valid), category)
	}

	for _, invalid := range []string{"", "painting", "Video", "PAINTING"} {
		_, err := ParseCategory(invalid)
		require.ErrorIs(t, err, ErrValidation, "category %q", invalid)
	}
}

func TestArtwork_MinimumBid_ExactDecimal(t *testing.T) {
	artwork := Artwork{
		CurrentBid:   decimal.RequireFromString("0.10"),
		MinIncrement: decimal.RequireFromString("0.20"),
	}

	// 0.10 + 0.20 must be exactly 0.30, not 0.30000000000000004.
	require.True(t, artwork.MinimumBid().Equal(decimal.RequireFromString("0.30")))
	require.Equal(t, "0.30", artwork.MinimumBid().StringFixed(2))
}

func TestArtwork_Expired(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	artwork := Artwork{EndTime: end}

	require.False(t, artwork.Expired(end.Add(-time.Nanosecond)))
	require.True(t, artwork.Expired(end), "the end instant counts as expired")
	require.True(t, artwork.Expired(end.Add(time.Second)))
}

func TestMonetaryFieldsSerializeAsDecimalStrings(t *testing.T) {
	bid := Bid{
		Amount: decimal.RequireFromString("110.50"),
	}

	data, err := json.Marshal(bid)
	require.NoError(t, err)
	require.Contains(t, string(data), `"amount":"110.5"`)

	var decoded Bid
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Amount.Equal(bid.Amount))

	// Bare JSON numbers are accepted on input as well.
	require.NoError(t, json.Unmarshal([]byte(`{"amount":110.50}`), &decoded))
	require.True(t, decoded.Amount.Equal(bid.Amount))
}
