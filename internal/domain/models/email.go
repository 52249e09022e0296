package models

import (
	"strconv"
	"time"
)

// EmailContext carries optional structured information about the customer
// and situation. Zero values mean "unknown", not "empty".
type EmailContext struct {
	CustomerName         string `json:"customer_name,omitempty"`
	CustomerHistory      string `json:"customer_history,omitempty"`
	AccountType          string `json:"account_type,omitempty"`
	PreviousInteractions *int   `json:"previous_interactions,omitempty"`
	Priority             string `json:"priority,omitempty"`
	Department           string `json:"department,omitempty"`
	AdditionalNotes      string `json:"additional_notes,omitempty"`
}

// ContextField is one present field of an EmailContext, with its
// human-readable label.
type ContextField struct {
	Label string
	Value string
}

// Fields returns the present context fields in declaration order with
// title-cased, space-separated labels. Unset fields are omitted.
func (c *EmailContext) Fields() []ContextField {
	if c == nil {
		return nil
	}
	var fields []ContextField
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, ContextField{Label: label, Value: value})
		}
	}
	add("Customer Name", c.CustomerName)
	add("Customer History", c.CustomerHistory)
	add("Account Type", c.AccountType)
	if c.PreviousInteractions != nil {
		fields = append(fields, ContextField{Label: "Previous Interactions", Value: strconv.Itoa(*c.PreviousInteractions)})
	}
	add("Priority", c.Priority)
	add("Department", c.Department)
	add("Additional Notes", c.AdditionalNotes)
	return fields
}

// Map converts the context to a plain map for the tone classifier,
// omitting unset fields.
func (c *EmailContext) Map() map[string]string {
	if c == nil {
		return nil
	}
	m := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	put("customer_name", c.CustomerName)
	put("customer_history", c.CustomerHistory)
	put("account_type", c.AccountType)
	if c.PreviousInteractions != nil {
		m["previous_interactions"] = strconv.Itoa(*c.PreviousInteractions)
	}
	put("priority", c.Priority)
	put("department", c.Department)
	put("additional_notes", c.AdditionalNotes)
	return m
}

// GenerationSettings is the fixed process-wide model sampling configuration.
type GenerationSettings struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

// EmailResponseMetadata describes how an email response was produced.
type EmailResponseMetadata struct {
	ToneUsed ToneLabel `json:"tone_used"`
	// ContextLength is the character length of the fully assembled prompt,
	// not of the raw customer message.
	ContextLength      int                `json:"context_length"`
	GenerationSettings GenerationSettings `json:"generation_settings"`
	// ToneDetection is present only when the tone was auto-detected.
	ToneDetection *ToneDetection `json:"tone_detection,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// EmailResponse is the structured result of an email-response generation.
type EmailResponse struct {
	Message         string                `json:"message"`
	StatusCode      int                   `json:"status_code"`
	ExecutionTimeMs float64               `json:"execution_time_ms"`
	Metadata        EmailResponseMetadata `json:"metadata"`
}
