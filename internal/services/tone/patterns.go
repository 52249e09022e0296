package tone

// Axis names for the score vector. Every detection reports exactly these
// four keys.
const (
	AxisUrgency    = "urgency"
	AxisComplaint  = "complaint"
	AxisFormality  = "formality"
	AxisPositivity = "positivity"
)

// axisOrder fixes iteration order for scoring and decision rules.
var axisOrder = []string{AxisUrgency, AxisComplaint, AxisFormality, AxisPositivity}

// PatternTable maps an axis name to its ordered list of regular-expression
// patterns. A message's axis score is the fraction of patterns that match.
type PatternTable map[string][]string

// DefaultPatterns returns the built-in pattern table. Each axis mixes
// case-insensitive keyword groups with punctuation or emoji signals where
// those carry the strongest signal (stacked exclamation marks for urgency,
// positive emoji for positivity).
func DefaultPatterns() PatternTable {
	return PatternTable{
		AxisUrgency: {
			`\b(?:URGENT|ASAP|EMERGENCY|CRITICAL|IMMEDIATE)\b`,
			`(?i)urgent|emergency|asap|right away|immediately|right now`,
			`!{2,}`,
		},
		AxisComplaint: {
			`(?i)disappointed|frustrated|angry|upset|terrible|worst`,
			`(?i)not acceptable|unacceptable|poor|bad experience`,
			`(?i)third time|again|still not|yet to|never`,
			`(?i)complaint|issue|problem|error|bug|failed|failure`,
		},
		AxisFormality: {
			`(?i)dear|sincerely|regards|pursuant|accordingly`,
			`(?i)request|inquire|regarding|concerning|matter`,
			`(?i)documentation|legal|compliance|policy|regulation`,
		},
		AxisPositivity: {
			`(?i)thank|appreciate|great|good|excellent|wonderful`,
			`(?i)love|enjoy|pleased|happy|satisfied|helpful`,
			`(?i)feature request|suggestion|idea|feedback`,
			`😊|👍|🙏`,
		},
	}
}
