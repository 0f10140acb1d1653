package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

const artworkColumns = `id, title, artist, description, category, image_url,
        starting_bid, current_bid, min_increment, end_time,
        highest_bidder, highest_bidder_name, is_active, created_at`

type MySQLArtworkRepository struct {
	db *sql.DB
}

func NewMySQLArtworkRepository(db *sql.DB) *MySQLArtworkRepository {
	return &MySQLArtworkRepository{db: db}
}

func (r *MySQLArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) error {
	query := `
        INSERT INTO artworks (` + artworkColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		artwork.ID, artwork.Title, artwork.Artist, artwork.Description,
		string(artwork.Category), artwork.ImageURL,
		artwork.StartingBid, artwork.CurrentBid, artwork.MinIncrement,
		artwork.EndTime, artwork.HighestBidder, artwork.HighestBidderName,
		artwork.IsActive, artwork.CreatedAt)
	return err
}

func (r *MySQLArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = ?`

	artwork, err := scanArtwork(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, err
	}
	return artwork, nil
}

func (r *MySQLArtworkRepository) List(ctx context.Context) ([]*domain.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks ORDER BY created_at DESC`
	return r.queryArtworks(ctx, query)
}

func (r *MySQLArtworkRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks
        WHERE is_active = 1 AND end_time <= ?
        ORDER BY end_time ASC`
	return r.queryArtworks(ctx, query, now)
}

func (r *MySQLArtworkRepository) Update(ctx context.Context, artwork *domain.Artwork) error {
	query := `
        UPDATE artworks
        SET title = ?, artist = ?, description = ?, category = ?, image_url = ?,
            starting_bid = ?, current_bid = ?, min_increment = ?, end_time = ?,
            highest_bidder = ?, highest_bidder_name = ?, is_active = ?
        WHERE id = ?
    `
	result, err := r.db.ExecContext(ctx, query,
		artwork.Title, artwork.Artist, artwork.Description,
		string(artwork.Category), artwork.ImageURL,
		artwork.StartingBid, artwork.CurrentBid, artwork.MinIncrement,
		artwork.EndTime, artwork.HighestBidder, artwork.HighestBidderName,
		artwork.IsActive, artwork.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// An update that changes nothing also reports zero rows; tell the
		// cases apart before declaring the artwork missing.
		if _, err := r.GetByID(ctx, artwork.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *MySQLArtworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *MySQLArtworkRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE artworks SET is_active = 0 WHERE id = ? AND is_active = 1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *MySQLArtworkRepository) queryArtworks(ctx context.Context, query string, args ...interface{}) ([]*domain.Artwork, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artworks []*domain.Artwork
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, artwork)
	}

	return artworks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtwork(row rowScanner) (*domain.Artwork, error) {
	var artwork domain.Artwork
	var category string
	var highestBidder sql.NullString
	var highestBidderName sql.NullString

	err := row.Scan(
		&artwork.ID, &artwork.Title, &artwork.Artist, &artwork.Description,
		&category, &artwork.ImageURL,
		&artwork.StartingBid, &artwork.CurrentBid, &artwork.MinIncrement,
		&artwork.EndTime, &highestBidder, &highestBidderName,
		&artwork.IsActive, &artwork.CreatedAt)
	if err != nil {
		return nil, err
	}

	artwork.Category = domain.Category(category)
	if highestBidder.Valid {
		artwork.HighestBidder = &highestBidder.String
	}
	artwork.HighestBidderName = highestBidderName.String
	return &artwork, nil
}
