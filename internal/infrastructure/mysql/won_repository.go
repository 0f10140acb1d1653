package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
)

const mysqlErrDuplicateEntry = 1062

type MySQLWonRepository struct {
	db *sql.DB
}

func NewMySQLWonRepository(db *sql.DB) *MySQLWonRepository {
	return &MySQLWonRepository{db: db}
}

// CreateIfAbsent is the closer's get-or-create. The NOT EXISTS guard covers
// repeated sweeps; the unique key on artwork_id covers two sweeps racing
// past the guard at the same moment.
func (r *MySQLWonRepository) CreateIfAbsent(ctx context.Context, won *domain.Won) (bool, error) {
	query := `
        INSERT INTO wons (id, artwork_id, winner_id, amount, won_at)
        SELECT ?, ?, ?, ?, ?
        FROM DUAL
        WHERE NOT EXISTS (SELECT 1 FROM wons WHERE artwork_id = ?)
    `
	result, err := r.db.ExecContext(ctx, query,
		won.ID, won.ArtworkID, won.WinnerID, won.Amount, won.WonAt,
		won.ArtworkID)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return false, nil
		}
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *MySQLWonRepository) ListForWinner(ctx context.Context, winnerID string) ([]*domain.WonArtwork, error) {
	query := `
        SELECT w.id, w.artwork_id, w.winner_id, w.amount, w.won_at,
               ` + prefixedArtworkColumns("a") + `
        FROM wons w
        JOIN artworks a ON a.id = w.artwork_id
        WHERE w.winner_id = ?
        ORDER BY w.won_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query, winnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wins []*domain.WonArtwork
	for rows.Next() {
		var entry domain.WonArtwork
		var category string
		var highestBidder, highestBidderName sql.NullString

		err := rows.Scan(
			&entry.Won.ID, &entry.Won.ArtworkID, &entry.Won.WinnerID,
			&entry.Won.Amount, &entry.Won.WonAt,
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
		wins = append(wins, &entry)
	}

	return wins, rows.Err()
}
