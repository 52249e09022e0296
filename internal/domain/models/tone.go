// Package models contains domain models for the Communication Agent Service.
package models

// ToneLabel identifies the register a generated response should use.
type ToneLabel string

const (
	// ToneProfessional is the default, business-appropriate register.
	ToneProfessional ToneLabel = "professional"
	// ToneFriendly is warm and approachable.
	ToneFriendly ToneLabel = "friendly"
	// ToneFormal is traditional and keeps appropriate distance.
	ToneFormal ToneLabel = "formal"
	// ToneEmpathetic is understanding and supportive.
	ToneEmpathetic ToneLabel = "empathetic"
	// ToneDirect is concise and gets to the point quickly.
	ToneDirect ToneLabel = "direct"
)

// AllTones lists every recognized tone label.
var AllTones = []ToneLabel{
	ToneProfessional,
	ToneFriendly,
	ToneFormal,
	ToneEmpathetic,
	ToneDirect,
}

// IsValid reports whether the label is a member of the fixed enumeration.
func (t ToneLabel) IsValid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneFormal, ToneEmpathetic, ToneDirect:
		return true
	}
	return false
}

// ToneDetection is the result of a single tone classification.
type ToneDetection struct {
	DetectedTone ToneLabel          `json:"detected_tone"`
	Confidence   float64            `json:"confidence"`
	Factors      map[string]float64 `json:"factors"`
}
