package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/closetcraft/wardrobe-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

// GetOutfitsByUser returns the user's outfits with their member
// garments attached.
func (r *Repository) GetOutfitsByUser(ctx context.Context, userID int64) ([]domain.Outfit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, created_at
		FROM outfits
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outfits for user %d: %w", userID, err)
	}
	defer rows.Close()

	var outfits []domain.Outfit
	index := make(map[int64]int)
	for rows.Next() {
		var o domain.Outfit
		if err := rows.Scan(&o.ID, &o.UserID, &o.Name, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outfit: %w", err)
		}
		index[o.ID] = len(outfits)
		outfits = append(outfits, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over outfits: %w", err)
	}
	if len(outfits) == 0 {
		return nil, nil
	}

	itemRows, err := r.pool.Query(ctx,
		`SELECT oi.outfit_id,
			g.id, g.user_id, g.name, g.category, g.season, g.brand, g.price, g.image_url, g.colors, g.embedding, g.created_at
		FROM outfit_items oi
		JOIN garments g ON g.id = oi.garment_id
		JOIN outfits o ON o.id = oi.outfit_id
		WHERE o.user_id = $1
		ORDER BY oi.outfit_id, oi.position`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outfit items for user %d: %w", userID, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var outfitID int64
		var g domain.Garment
		err := itemRows.Scan(&outfitID, &g.ID, &g.UserID, &g.Name, &g.Category, &g.Season,
			&g.Brand, &g.Price, &g.ImageURL, &g.Colors, &g.Embedding, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan outfit item: %w", err)
		}
		if i, ok := index[outfitID]; ok {
			outfits[i].Items = append(outfits[i].Items, g)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over outfit items: %w", err)
	}

	return outfits, nil
}

// GetOutfitByID returns one outfit with its member garments.
func (r *Repository) GetOutfitByID(ctx context.Context, outfitID int64) (*domain.Outfit, error) {
	o := &domain.Outfit{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, created_at FROM outfits WHERE id = $1`,
		outfitID,
	).Scan(&o.ID, &o.UserID, &o.Name, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutfitNotFound
		}
		return nil, fmt.Errorf("query outfit id=%d: %w", outfitID, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT g.id, g.user_id, g.name, g.category, g.season, g.brand, g.price, g.image_url, g.colors, g.embedding, g.created_at
		FROM outfit_items oi
		JOIN garments g ON g.id = oi.garment_id
		WHERE oi.outfit_id = $1
		ORDER BY oi.position`,
		outfitID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items for outfit %d: %w", outfitID, err)
	}
	defer rows.Close()

	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over outfit items: %w", err)
	}

	return o, nil
}
