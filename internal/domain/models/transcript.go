package models

import "time"

// Turn roles in a conversation transcript.
const (
	// RoleHuman marks a turn written by the user.
	RoleHuman = "human"
	// RoleAssistant marks a turn generated by the model.
	RoleAssistant = "assistant"
)

// Turn is one role-tagged entry in a conversation transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered history of turns for one session.
type Transcript struct {
	SessionID string    `json:"sessionId"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTranscript creates an empty transcript for a session.
func NewTranscript(sessionID string) *Transcript {
	now := time.Now().UTC()
	return &Transcript{
		SessionID: sessionID,
		Turns:     []Turn{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a turn and bumps the update timestamp.
func (t *Transcript) Append(role, content string) {
	t.Turns = append(t.Turns, Turn{Role: role, Content: content})
	t.UpdatedAt = time.Now().UTC()
}
