package query

import (
	"fmt"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// Mode selects which scorer answers questions.
type Mode string

const (
	// ModeAuto uses the vector scorer when one is available, otherwise lexical.
	ModeAuto Mode = "auto"
	// ModeLexical always uses the lexical scorer.
	ModeLexical Mode = "lexical"
	// ModeVector requires the vector scorer.
	ModeVector Mode = "vector"
	// ModeHybrid fuses vector and lexical rankings when a vector scorer is available.
	ModeHybrid Mode = "hybrid"
)

// ParseMode parses a configured mode. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeLexical, ModeVector, ModeHybrid:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown retrieval mode %q: %w", s, domain.ErrInvalidInput)
	}
}

// Strategy names the scorer that produced an answer.
type Strategy string

const (
	StrategyLexical         Strategy = "lexical"
	StrategyVector          Strategy = "vector"
	StrategyHybrid          Strategy = "hybrid"
	StrategyLexicalFallback Strategy = "lexical_fallback"
)
