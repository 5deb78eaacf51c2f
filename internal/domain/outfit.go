package domain

import "time"

type Outfit struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Items     []Garment `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// MeanEmbedding returns the elementwise mean of the member embeddings.
// Members without an embedding are skipped; nil when none remain.
func (o Outfit) MeanEmbedding() []float64 {
	var sum []float64
	var n int
	for _, item := range o.Items {
		if len(item.Embedding) == 0 {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(item.Embedding))
		}
		if len(item.Embedding) != len(sum) {
			continue
		}
		for i, v := range item.Embedding {
			sum[i] += v
		}
		n++
	}
	if n == 0 {
		return nil
	}
	for i := range sum {
		sum[i] /= float64(n)
	}
	return sum
}
