// Package tone implements the rule-based tone classifier. It scores an
// inbound message across four independent axes and selects one tone label
// with a confidence score.
package tone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/domain/models"
)

// scoreThreshold is the minimum axis score that lets an axis decide the tone.
const scoreThreshold = 0.3

// priorityCritical is the context priority value that forces the direct tone.
const priorityCritical = "critical"

// Classifier scores messages against a compiled pattern table. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	patterns map[string][]*regexp.Regexp
}

// NewClassifier compiles the default pattern table.
func NewClassifier() (*Classifier, error) {
	return NewClassifierWithTable(DefaultPatterns())
}

// NewClassifierWithTable compiles the given pattern table. All four axes
// must be present with at least one pattern each; a malformed table fails
// fast at startup rather than at request time.
func NewClassifierWithTable(table PatternTable) (*Classifier, error) {
	compiled := make(map[string][]*regexp.Regexp, len(axisOrder))
	for _, axis := range axisOrder {
		raw, ok := table[axis]
		if !ok || len(raw) == 0 {
			return nil, fmt.Errorf("pattern table is missing axis %q", axis)
		}
		exprs := make([]*regexp.Regexp, 0, len(raw))
		for _, pattern := range raw {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q for axis %q: %w", pattern, axis, err)
			}
			exprs = append(exprs, re)
		}
		compiled[axis] = exprs
	}
	return &Classifier{patterns: compiled}, nil
}

// score returns the fraction of an axis's patterns matching anywhere in the
// message, capped at 1.0.
func (c *Classifier) score(message string, exprs []*regexp.Regexp) float64 {
	matches := 0
	for _, re := range exprs {
		if re.MatchString(message) {
			matches++
		}
	}
	score := float64(matches) / float64(len(exprs))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// analyze computes the full four-axis score vector for a message.
func (c *Classifier) analyze(message string) map[string]float64 {
	scores := make(map[string]float64, len(axisOrder))
	for _, axis := range axisOrder {
		scores[axis] = c.score(message, c.patterns[axis])
	}
	return scores
}

// Detect selects the response tone for a message, optionally informed by a
// context map carrying a "priority" hint. Deterministic and side-effect free
// beyond logging.
//
// The decision rules are ordered and first-match-wins: urgency outranks
// complaint, complaint outranks formality, formality outranks positivity.
// When priority is "critical" the direct tone wins even with a zero urgency
// score, and the reported confidence is still the urgency score.
func (c *Classifier) Detect(message string, context map[string]string) models.ToneDetection {
	scores := c.analyze(message)
	log.Debug().
		Float64(AxisUrgency, scores[AxisUrgency]).
		Float64(AxisComplaint, scores[AxisComplaint]).
		Float64(AxisFormality, scores[AxisFormality]).
		Float64(AxisPositivity, scores[AxisPositivity]).
		Msg("tone detection scores")

	priority := "normal"
	if p, ok := context["priority"]; ok && p != "" {
		priority = strings.ToLower(p)
	}

	var detected models.ToneLabel
	var confidence float64
	switch {
	case scores[AxisUrgency] > scoreThreshold || priority == priorityCritical:
		detected = models.ToneDirect
		confidence = scores[AxisUrgency]
	case scores[AxisComplaint] > scoreThreshold:
		detected = models.ToneEmpathetic
		confidence = scores[AxisComplaint]
	case scores[AxisFormality] > scoreThreshold:
		detected = models.ToneFormal
		confidence = scores[AxisFormality]
	case scores[AxisPositivity] > scoreThreshold:
		detected = models.ToneFriendly
		confidence = scores[AxisPositivity]
	default:
		detected = models.ToneProfessional
		confidence = meanOfPositive(scores)
	}

	if !detected.IsValid() {
		// Unreachable with the fixed rule set, but the contract guarantees
		// an in-enum label.
		detected = models.ToneProfessional
	}

	log.Info().
		Str("tone", string(detected)).
		Float64("confidence", confidence).
		Msg("detected tone")

	return models.ToneDetection{
		DetectedTone: detected,
		Confidence:   confidence,
		Factors:      scores,
	}
}

// meanOfPositive averages the strictly-positive axis scores, or returns 0.5
// when every axis scored zero.
func meanOfPositive(scores map[string]float64) float64 {
	sum := 0.0
	count := 0
	for _, s := range scores {
		if s > 0 {
			sum += s
			count++
		}
	}
	if count == 0 {
		return 0.5
	}
	return sum / float64(count)
}
