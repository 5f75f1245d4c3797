package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Restaurant is read-only from this service's perspective; rows are
// provisioned out of band (see cmd/seed).
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	MainRating  int    `json:"main_rating"` // 1-5
}

// EstablishmentFilter narrows the restaurant listing. A zero filter
// matches everything. Query matches name or description as a
// case-insensitive substring; Stars matches the main rating against a
// set of values. When both are set the two conditions are ANDed.
type EstablishmentFilter struct {
	Query string
	Stars []int
}

// Compile renders the filter as a WHERE clause with positional args.
// Returns an empty clause for a zero filter.
func (f EstablishmentFilter) Compile() (string, []any) {
	var conds []string
	var args []any

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(resto_name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if len(f.Stars) > 0 {
		args = append(args, f.Stars)
		conds = append(conds, fmt.Sprintf("main_rating = ANY($%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

type RestaurantsStore struct {
	db *pgxpool.Pool
}

func (s *RestaurantsStore) List(ctx context.Context, f EstablishmentFilter) ([]Restaurant, error) {
	where, args := f.Compile()
	query := fmt.Sprintf(`
		SELECT id, resto_name, description, resto_pic, main_rating
		FROM restaurants %s
		ORDER BY id
	`, where)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Picture, &r.MainRating); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}
