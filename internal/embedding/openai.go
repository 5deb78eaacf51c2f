package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ProviderError marks an embedding-provider failure so callers can
// degrade gracefully instead of failing the request.
type ProviderError struct {
	Msg string
}

func (e *ProviderError) Error() string {
	return e.Msg
}

func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}

// OpenAIProvider embeds occasion text via the OpenAI embeddings API.
// Garment embeddings are produced by the image pipeline upstream and
// must come from the same vector space for cosine comparison to mean
// anything, so the model is fixed per deployment.
type OpenAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

func (p *OpenAIProvider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model,
	})
	if err != nil {
		return nil, &ProviderError{Msg: fmt.Sprintf("create embedding: %v", err)}
	}
	if len(resp.Data) == 0 {
		return nil, &ProviderError{Msg: "embedding response contained no data"}
	}

	raw := resp.Data[0].Embedding
	vector := make([]float64, len(raw))
	for i, v := range raw {
		vector[i] = float64(v)
	}
	return vector, nil
}
