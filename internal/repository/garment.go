package repository

import (
	"context"
	"fmt"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// GetGarmentsByUser returns every garment a user owns, with the
// precomputed embedding and dominant colors the image pipeline stored.
func (r *Repository) GetGarmentsByUser(ctx context.Context, userID int64) ([]domain.Garment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, category, season, brand, price, image_url, colors, embedding, created_at
		FROM garments
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query garments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over garments: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner) (domain.Garment, error) {
	var g domain.Garment
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Category, &g.Season, &g.Brand,
		&g.Price, &g.ImageURL, &g.Colors, &g.Embedding, &g.CreatedAt)
	if err != nil {
		return domain.Garment{}, fmt.Errorf("scan garment: %w", err)
	}
	return g, nil
}

// CreateGarment stores a garment and returns its assigned id.
func (r *Repository) CreateGarment(ctx context.Context, g domain.Garment) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO garments (user_id, name, category, season, brand, price, image_url, colors, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		g.UserID, g.Name, g.Category, g.Season, g.Brand, g.Price, g.ImageURL, g.Colors, g.Embedding,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert garment for user %d: %w", g.UserID, err)
	}
	return id, nil
}
