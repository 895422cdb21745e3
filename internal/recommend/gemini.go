package recommend

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiRecommender struct {
	model *genai.GenerativeModel
}

func NewGeminiRecommender(ctx context.Context, apiKey string) (*GeminiRecommender, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecommender{
		model: client.GenerativeModel("models/gemini-1.5-flash"),
	}, nil
}

const promptDE = `Du bist ein Experte für Premium-Autoaufbereitung bei F1RST-WASH in Berlin.
Ein Kunde fragt nach einer Empfehlung.
Fahrzeugtyp: %s
Zustand: %s
Letzte Reinigung: %s

Biete eine kurze, professionelle und überzeugende Empfehlung an, welches Paket am besten passt:
- Außenwäsche (49€)
- Innenreinigung (69€)
- Kombi-Paket (ab 100€)
- Premium Detailing (Individuell)

Antworte kurz auf DEUTSCH, max 3 Sätze. Sei exklusiv und höflich.`

const promptEN = `You are an expert for premium car detailing at F1RST-WASH in Berlin.
A customer is asking for a recommendation.
Vehicle type: %s
Condition: %s
Last cleaning: %s

Offer a short, professional, and convincing recommendation on which package fits best:
- Exterior Wash (from 49€)
- Interior Cleaning (from 69€)
- Combo Package (from 100€)
- Premium Detailing (Individual)

Respond briefly in ENGLISH, max 3 sentences. Be exclusive and polite.`

func (g *GeminiRecommender) Recommend(
	ctx context.Context,
	carType, condition, lastWash, lang string,
) (string, error) {

	tmpl := promptEN
	if lang == "de" {
		tmpl = promptDE
	}
	prompt := fmt.Sprintf(tmpl, carType, condition, lastWash)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

var _ Recommender = (*GeminiRecommender)(nil)
