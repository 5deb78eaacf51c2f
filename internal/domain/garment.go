package domain

import "time"

type Garment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Season    string    `json:"season,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Colors    []string  `json:"colors"`
	Embedding []float64 `json:"embedding,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HasFeatures reports whether the garment carries everything the
// combinatorial generator needs. Items without features still count
// for gap analysis.
func (g Garment) HasFeatures() bool {
	return len(g.Embedding) > 0 && len(g.Colors) > 0 && g.Category != ""
}
