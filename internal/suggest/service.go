// Package suggest generates role-based bullet point suggestions for
// experience descriptions from a built-in lookup table.
package suggest

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const suggestionCount = 3

// Scoring weights for matching a role against a category.
const (
	exactTitleScore = 100
	partialScore    = 50
	keywordScore    = 10
)

// Service matches free-form role text against the category table and picks
// suggestion bullets. The random source only influences which bullets of the
// winning category come back, never which category wins. A Service is safe
// for concurrent use; *rand.Rand is not, so draws are serialized.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewService returns a Service seeded from the clock.
func NewService() *Service {
	return &Service{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewServiceWithSeed returns a Service with a fixed seed.
func NewServiceWithSeed(seed int64) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed))}
}

// Suggest returns three bullet suggestions for the given role. A blank role
// or one that matches no category falls back to the generic bullets.
func (s *Service) Suggest(role string) []string {
	role = strings.TrimSpace(role)

	// An empty role would substring-match every title; send it straight to
	// the fallback instead of letting the first category win.
	var best *Category
	if role != "" {
		best = bestCategory(role)
	}
	if best == nil {
		out := make([]string, suggestionCount)
		copy(out, defaultBullets[:suggestionCount])
		return out
	}

	// Sample without replacement so repeated requests vary.
	s.mu.Lock()
	picked := s.rng.Perm(len(best.Bullets))[:suggestionCount]
	s.mu.Unlock()

	out := make([]string, 0, suggestionCount)
	for _, i := range picked {
		out = append(out, best.Bullets[i])
	}
	return out
}

// bestCategory returns the highest-scoring category, or nil when nothing
// scores. Ties keep the earlier entry in the table.
func bestCategory(role string) *Category {
	normalized := strings.ToLower(role)
	words := strings.Split(normalized, " ")

	var best *Category
	maxScore := 0
	for i := range categories {
		cat := &categories[i]
		score := scoreCategory(cat, normalized, words)
		if score > maxScore {
			maxScore = score
			best = cat
		}
	}
	return best
}

func scoreCategory(cat *Category, normalized string, words []string) int {
	score := 0
	exact := false
	for _, t := range cat.Titles {
		if strings.ToLower(t) == normalized {
			score += exactTitleScore
			exact = true
			break
		}
	}
	if !exact {
		for _, t := range cat.Titles {
			lower := strings.ToLower(t)
			if strings.Contains(lower, normalized) || strings.Contains(normalized, lower) {
				score += partialScore
				break
			}
		}
	}
	for _, word := range words {
		for _, kw := range cat.Keywords {
			if kw == word {
				score += keywordScore
				break
			}
		}
	}
	return score
}

// Apply appends suggestions to an existing description, one per line, with a
// separating newline when the description already has content.
func Apply(description string, suggestions []string) string {
	if len(suggestions) == 0 {
		return description
	}
	block := strings.Join(suggestions, "\n")
	if description == "" {
		return block
	}
	return description + "\n" + block
}
