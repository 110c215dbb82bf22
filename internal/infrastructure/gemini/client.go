package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *zap.Logger
}

// NewGeminiClient creates the optional AI fallback answerer. It is consulted
// only when the price catalog has no match for a question.
func NewGeminiClient(apiKey string, log *zap.Logger) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`أنت مساعد جمارك يمني. المستخدم سأل عن صنف غير موجود في قائمة الأسعار.
أجب بجملة أو جملتين قصيرتين بالعربية: اقترح عليه اسمًا أدق للصنف أو انصحه بمراجعة قائمة الأسعار في التطبيق الأساسي.
لا تذكر أي أرقام أو مبالغ جمركية، لأنك لا تملك الأسعار.`),
		},
	}

	return &geminiClient{client: client, model: model, log: log}, nil
}

// GenerateFallback asks the model for a short advisory reply.
func (g *geminiClient) GenerateFallback(ctx context.Context, question string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response")
	}
	g.log.Debug("gemini fallback answered", zap.Int("len", len(text)))
	return strings.TrimSpace(text), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
