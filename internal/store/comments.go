package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Comment references its restaurant by name rather than by id; the
// comments table is written by a separate submission flow and only
// read here.
type Comment struct {
	ID             int64     `json:"id"`
	Author         string    `json:"author"`
	RestoName      string    `json:"resto_name"`
	Content        string    `json:"content"`
	FoodRating     int       `json:"food_rating"`
	ServiceRating  int       `json:"service_rating"`
	AmbianceRating int       `json:"ambiance_rating"`
	OverallRating  int       `json:"overall_rating"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentsStore struct {
	db *pgxpool.Pool
}

const commentColumns = `id, author, resto_name, content,
	food_rating, service_rating, ambiance_rating, overall_rating, created_at`

func (s *CommentsStore) ListForRestaurant(ctx context.Context, restoName string) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE resto_name = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, restoName)
}

func (s *CommentsStore) ListByAuthor(ctx context.Context, author string) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE author = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, author)
}

func (s *CommentsStore) list(ctx context.Context, query string, arg any) ([]Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		err := rows.Scan(
			&c.ID,
			&c.Author,
			&c.RestoName,
			&c.Content,
			&c.FoodRating,
			&c.ServiceRating,
			&c.AmbianceRating,
			&c.OverallRating,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
