package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	userCount       = 20
	garmentsPerUser = 12
	outfitsPerUser  = 3
	embeddingDim    = 8
)

// garmentTemplate drives deterministic sampling. The style index
// selects the embedding cluster so garments that belong together in
// real wardrobes land near each other in vector space.
type garmentTemplate struct {
	name     string
	category string
	season   string
	colors   []string
	style    int
}

var styleBases = [][embeddingDim]float64{
	{0.9, 0.1, 0.2, 0.7, 0.1, 0.3, 0.5, 0.2}, // casual
	{0.1, 0.9, 0.8, 0.2, 0.6, 0.1, 0.3, 0.7}, // formal
	{0.5, 0.2, 0.1, 0.9, 0.8, 0.6, 0.1, 0.4}, // sporty
}

// Categories use the same grouping the idea generator and gap
// analysis operate on.
var garmentCatalog = []garmentTemplate{
	{"White T-Shirt", "Tops", "Summer", []string{"#FFFFFF"}, 0},
	{"Black T-Shirt", "Tops", "Summer", []string{"#1A1A1A"}, 0},
	{"Blue Jeans", "Bottoms", "All Season", []string{"#3B5998"}, 0},
	{"Black Jeans", "Bottoms", "All Season", []string{"#1A1A1A"}, 0},
	{"Gray Hoodie", "Tops", "Autumn", []string{"#808080"}, 0},
	{"Denim Jacket", "Outerwear", "Spring", []string{"#4A6FA5"}, 0},
	{"White Sneakers", "Shoes", "All Season", []string{"#FAFAFA"}, 0},
	{"Navy Chinos", "Bottoms", "All Season", []string{"#2C3E50"}, 0},
	{"White Dress Shirt", "Tops", "All Season", []string{"#FFFFFF"}, 1},
	{"Light Blue Dress Shirt", "Tops", "All Season", []string{"#AED6F1"}, 1},
	{"Charcoal Blazer", "Outerwear", "All Season", []string{"#36454F"}, 1},
	{"Navy Suit Trousers", "Bottoms", "All Season", []string{"#1B2A41"}, 1},
	{"Black Oxford Shoes", "Shoes", "All Season", []string{"#101010"}, 1},
	{"Burgundy Tie", "Accessories", "All Season", []string{"#800020"}, 1},
	{"Black Cocktail Dress", "Formal Wear", "All Season", []string{"#0A0A0A"}, 1},
	{"Wool Overcoat", "Outerwear", "Winter", []string{"#4B4B4B"}, 1},
	{"Running Shorts", "Bottoms", "Summer", []string{"#2E86C1"}, 2},
	{"Performance Tee", "Tops", "Summer", []string{"#E74C3C"}, 2},
	{"Track Jacket", "Outerwear", "Spring", []string{"#27AE60", "#FFFFFF"}, 2},
	{"Running Shoes", "Shoes", "All Season", []string{"#F39C12", "#1A1A1A"}, 2},
	{"Puffer Jacket", "Winter Coat", "Winter", []string{"#2C3E50"}, 2},
	{"Wool Beanie", "Accessories", "Winter", []string{"#808080"}, 2},
	{"Leather Boots", "Boots", "Winter", []string{"#5D4037"}, 0},
	{"Knit Sweater", "Tops", "Winter", []string{"#B5651D"}, 0},
}

var firstNames = []string{
	"Ava", "Liam", "Mia", "Noah", "Zoe", "Ethan", "Ivy", "Lucas",
	"Nora", "Owen", "Ruby", "Felix", "Cleo", "Jonas", "Lena", "Marco",
	"Dana", "Theo", "Iris", "Hugo",
}

var brands = []string{"Everlane", "Uniqlo", "Arket", "COS", "Patagonia", "Levi's", ""}

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE outfit_items, outfits, garments, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool, userCount); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting garments")
	garmentIDs, err := seedGarments(ctx, pool, rng, userCount)
	if err != nil {
		return fmt.Errorf("seed garments: %w", err)
	}

	log.Println("[seed] inserting outfits")
	if err := seedOutfits(ctx, pool, rng, garmentIDs); err != nil {
		return fmt.Errorf("seed outfits: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, n int) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		name := firstNames[i%len(firstNames)]
		email := fmt.Sprintf("%s%d@example.com", strings.ToLower(name), i+1)
		createdAt := time.Now().AddDate(0, 0, -(i * 11 % 365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, email, name, createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO users (email, name, created_at) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// seedGarments gives every user a sampled slice of the catalog and
// returns the inserted garment ids grouped by user.
func seedGarments(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users int) (map[int64][]int64, error) {
	ids := make(map[int64][]int64, users)

	for u := 1; u <= users; u++ {
		userID := int64(u)
		picks := rng.Perm(len(garmentCatalog))[:garmentsPerUser]

		for _, p := range picks {
			t := garmentCatalog[p]
			price := 20.0 + float64(rng.Intn(180))
			brand := brands[rng.Intn(len(brands))]
			emb := embeddingFor(rng, t.style)

			var id int64
			err := pool.QueryRow(ctx,
				`INSERT INTO garments (user_id, name, category, season, brand, price, image_url, colors, embedding)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				RETURNING id`,
				userID, t.name, t.category, t.season, brand, price, "", t.colors, emb,
			).Scan(&id)
			if err != nil {
				return nil, fmt.Errorf("insert garment %q for user %d: %w", t.name, userID, err)
			}
			ids[userID] = append(ids[userID], id)
		}
	}

	return ids, nil
}

func seedOutfits(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, garmentIDs map[int64][]int64) error {
	for userID := int64(1); userID <= userCount; userID++ {
		owned := garmentIDs[userID]
		if len(owned) < 3 {
			continue
		}

		for o := 0; o < outfitsPerUser; o++ {
			var outfitID int64
			err := pool.QueryRow(ctx,
				`INSERT INTO outfits (user_id, name) VALUES ($1, $2) RETURNING id`,
				userID, fmt.Sprintf("Look %d", o+1),
			).Scan(&outfitID)
			if err != nil {
				return fmt.Errorf("insert outfit for user %d: %w", userID, err)
			}

			perm := rng.Perm(len(owned))[:3]
			for pos, idx := range perm {
				if _, err := pool.Exec(ctx,
					`INSERT INTO outfit_items (outfit_id, garment_id, position) VALUES ($1, $2, $3)`,
					outfitID, owned[idx], pos,
				); err != nil {
					return fmt.Errorf("insert outfit item: %w", err)
				}
			}
		}
	}

	return nil
}

// embeddingFor jitters the cluster base so wardrobes stay coherent but
// not degenerate.
func embeddingFor(rng *rand.Rand, style int) []float64 {
	base := styleBases[style%len(styleBases)]
	emb := make([]float64, embeddingDim)
	for i, v := range base {
		emb[i] = v + (rng.Float64()-0.5)*0.1
	}
	return emb
}
