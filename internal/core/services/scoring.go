package services

import (
	"strings"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Scoring weights. The four text components sum to at most 1.0.
const (
	weightNameExact        = 0.35
	weightNameToken        = 0.25
	weightNameSimilarity   = 0.20
	weightKeywords         = 0.25
	weightDescription      = 0.20
	weightDescriptionToken = 0.15
	weightFeatures         = 0.20

	// starsSaturation is the star count at which the stars signal maxes out.
	starsSaturation = 10000.0

	// maxRank is the lowest leaderboard position that still earns a rank signal.
	maxRank = 10
)

// SignalWeights scales the remote index signals added on top of the text score.
type SignalWeights struct {
	// Stars scales min(stars/10000, 1).
	Stars float64

	// Rank scales (11 - rank) / 10 for ranks 1..10.
	Rank float64
}

// Scorer computes the relevance of one entry against one query.
// The same formula serves every source; remote index entries additionally
// earn weighted stars and rank signals. Scorer is stateless and safe for
// concurrent use.
type Scorer struct {
	signals SignalWeights
}

// NewScorer creates a scorer with the given signal weights.
func NewScorer(signals SignalWeights) *Scorer {
	return &Scorer{signals: signals}
}

// NewScorerFromSettings creates a scorer from scoring settings.
func NewScorerFromSettings(s domain.ScoringSettings) *Scorer {
	return NewScorer(SignalWeights{Stars: s.StarsWeight, Rank: s.RankWeight})
}

// Score returns the weighted breakdown for entry against the query text.
// The result is deterministic and its Total lies in [0, 1].
func (s *Scorer) Score(entry domain.CatalogEntry, text string) domain.ScoreBreakdown {
	text = strings.ToLower(strings.TrimSpace(text))
	tokens := domain.Tokenize(text)

	b := domain.ScoreBreakdown{
		Name:        nameScore(strings.ToLower(entry.Name), text, tokens),
		Keywords:    keywordScore(entry.Keywords, tokens),
		Description: descriptionScore(strings.ToLower(entry.Description), text, tokens),
		Features:    featureScore(entry.Features, tokens),
	}
	if entry.Source.IsRemote() {
		b.Signals = s.signalScore(entry.Metrics)
	}
	return b
}

func nameScore(name, text string, tokens []string) float64 {
	if strings.Contains(name, text) {
		return weightNameExact
	}
	if containsAny(name, tokens) {
		return weightNameToken
	}
	return similarityRatio(name, text) * weightNameSimilarity
}

func keywordScore(keywords, tokens []string) float64 {
	if len(tokens) == 0 || len(keywords) == 0 {
		return 0
	}
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(kw)] = true
	}
	overlap := 0
	for _, tok := range tokens {
		if set[tok] {
			overlap++
		}
	}
	return weightKeywords * float64(overlap) / float64(len(tokens))
}

func descriptionScore(description, text string, tokens []string) float64 {
	switch {
	case strings.Contains(description, text):
		return weightDescription
	case containsAny(description, tokens):
		return weightDescriptionToken
	default:
		return 0
	}
}

func featureScore(features, tokens []string) float64 {
	if len(features) == 0 {
		return 0
	}
	joined := strings.ToLower(strings.Join(features, " "))
	if containsAny(joined, tokens) {
		return weightFeatures
	}
	return 0
}

func (s *Scorer) signalScore(m domain.Metrics) float64 {
	var total float64
	if m.Stars > 0 && s.signals.Stars > 0 {
		total += min(float64(m.Stars)/starsSaturation, 1) * s.signals.Stars
	}
	if m.Rank >= 1 && m.Rank <= maxRank && s.signals.Rank > 0 {
		total += float64(maxRank+1-m.Rank) / maxRank * s.signals.Rank
	}
	return total
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
