package mysql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

type MySQLBidRepository struct {
	db *sql.DB
}

func NewMySQLBidRepository(db *sql.DB) *MySQLBidRepository {
	return &MySQLBidRepository{db: db}
}

// Record writes the bid and the artwork's denormalized bid state in one
// transaction. The artwork update is a compare-and-swap on current_bid, so
// two bids that raced on the same read cannot both land: the loser sees zero
// affected rows and gets ErrBidConflict.
func (r *MySQLBidRepository) Record(ctx context.Context, bid *domain.Bid, priorBid decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
        UPDATE artworks
        SET current_bid = ?, highest_bidder = ?, highest_bidder_name = ?
        WHERE id = ? AND current_bid = ? AND is_active = 1
    `, bid.Amount, bid.BidderID, bid.BidderName, bid.ArtworkID, priorBid)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBidConflict
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO bids (id, artwork_id, bidder_id, bidder_name, amount, bid_time)
        VALUES (?, ?, ?, ?, ?, ?)
    `, bid.ID, bid.ArtworkID, bid.BidderID, bid.BidderName, bid.Amount, bid.Timestamp)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MySQLBidRepository) ListForArtwork(ctx context.Context, artworkID uuid.UUID) ([]*domain.Bid, error) {
	query := `
        SELECT id, artwork_id, bidder_id, bidder_name, amount, bid_time
        FROM bids
        WHERE artwork_id = ?
        ORDER BY bid_time DESC, id DESC
    `

	rows, err := r.db.QueryContext(ctx, query, artworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []*domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.ArtworkID, &bid.BidderID,
			&bid.BidderName, &bid.Amount, &bid.Timestamp)
		if err != nil {
			return nil, err
		}
		bids = append(bids, &bid)
	}

	return bids, rows.Err()
}

func (r *MySQLBidRepository) ListForBidder(ctx context.Context, bidderID string) ([]*domain.UserBid, error) {
	query := `
        SELECT b.id, b.artwork_id, b.bidder_id, b.bidder_name, b.amount, b.bid_time,
               ` + prefixedArtworkColumns("a") + `
        FROM bids b
        JOIN artworks a ON a.id = b.artwork_id
        WHERE b.bidder_id = ?
        ORDER BY b.bid_time DESC, b.id DESC
    `

	rows, err := r.db.QueryContext(ctx, query, bidderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userBids []*domain.UserBid
	for rows.Next() {
		var entry domain.UserBid
		var category string
		var highestBidder, highestBidderName sql.NullString

		err := rows.Scan(
			&entry.Bid.ID, &entry.Bid.ArtworkID, &entry.Bid.BidderID,
			&entry.Bid.BidderName, &entry.Bid.Amount, &entry.Bid.Timestamp,
			&entry.Artwork.ID, &entry.Artwork.Title, &entry.Artwork.Artist,
			&entry.Artwork.Description, &category, &entry.Artwork.ImageURL,
			&entry.Artwork.StartingBid, &entry.Artwork.CurrentBid,
			&entry.Artwork.MinIncrement, &entry.Artwork.EndTime,
			&highestBidder, &highestBidderName,
			&entry.Artwork.IsActive, &entry.Artwork.CreatedAt)
		if err != nil {
			return nil, err
		}

		entry.Artwork.Category = domain.Category(category)
		if highestBidder.Valid {
			entry.Artwork.HighestBidder = &highestBidder.String
		}
		entry.Artwork.HighestBidderName = highestBidderName.String
		userBids = append(userBids, &entry)
	}

	return userBids, rows.Err()
}

func prefixedArtworkColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.artist, ` +
		alias + `.description, ` + alias + `.category, ` + alias + `.image_url, ` +
		alias + `.starting_bid, ` + alias + `.current_bid, ` + alias + `.min_increment, ` +
		alias + `.end_time, ` + alias + `.highest_bidder, ` + alias + `.highest_bidder_name, ` +
		alias + `.is_active, ` + alias + `.created_at`
}
