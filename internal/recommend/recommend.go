package recommend

import "context"

// Recommender is the external text-generation collaborator: three answers
// about the vehicle in, one short package recommendation out.
type Recommender interface {
	Recommend(ctx context.Context, carType, condition, lastWash, lang string) (string, error)
}

// Fallback copy used whenever the collaborator is unavailable or errors.
func Fallback(lang string) string {
	if lang == "de" {
		return "Wir empfehlen unser beliebtes Kombi-Paket für eine Rundum-Erneuerung Ihres Fahrzeugs. Besuchen Sie uns in der Mall of Berlin!"
	}
	return "We recommend our popular Combo Package for a complete renewal of your vehicle. Visit us at the Mall of Berlin!"
}
