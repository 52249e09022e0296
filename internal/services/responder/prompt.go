package responder

import (
	"fmt"
	"strings"

	"github.com/josephmowjew/communication-agent/internal/domain/models"
)

// noContextText is emitted when a request carries no structured context.
const noContextText = "No additional context provided."

// emailTemplate is the fixed instructional template for the support-agent
// persona. Slots, in order: context block, tone guideline, customer message,
// max length.
const emailTemplate = `System: You are a customer support agent responding to customer inquiries. You must follow these rules strictly:
1. Respond AS A SUPPORT AGENT addressing the customer's concerns
2. Output ONLY the email response
3. Do not include any explanations or thinking process
4. Do not use XML-like tags
5. Start with "Dear [Customer's Name],"
6. End with an appropriate signature
7. Stay within character limits
8. Maintain the specified tone

SUPPORT AGENT GUIDELINES:
- Immediately acknowledge the urgency/priority of the issue
- Provide SPECIFIC, ACTIONABLE steps the customer can take
- If it's a known issue, provide the current status and ETA
- Include CONCRETE next steps (e.g., specific phone numbers, links, or procedures)
- For urgent issues, provide immediate workarounds if available
- Include your direct contact information and availability
- Specify when the customer can expect updates or resolution
- Sign off with your department name and case reference number

RESPONSE STRUCTURE:
1. Acknowledgment of the specific issue
2. Immediate action items or workarounds
3. Next steps and timeline
4. Your contact information and availability
5. Case reference or ticket number

CONTEXT INFORMATION:
%s

TONE GUIDELINES:
%s

CUSTOMER MESSAGE:
%s

REQUIREMENTS:
1. Provide SPECIFIC, ACTIONABLE solutions
2. Maintain the specified tone
3. Be clear and well-structured
4. Stay within %d characters
5. Include concrete next steps
6. Reference relevant documentation
7. Provide timeline expectations
8. Include case/ticket reference

Generate the support agent's email response below:`

// formatContext renders the optional structured context into a
// human-readable block for the prompt.
func formatContext(ctx *models.EmailContext) string {
	fields := ctx.Fields()
	if len(fields) == 0 {
		return noContextText
	}

	var b strings.Builder
	b.WriteString("Customer Information:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s: %s\n", f.Label, f.Value)
	}
	return b.String()
}

// buildPrompt assembles the full generation prompt.
func buildPrompt(contextBlock, guideline, customerMessage string, maxLength int) string {
	return fmt.Sprintf(emailTemplate, contextBlock, guideline, customerMessage, maxLength)
}

// stripThinking removes a leaked chain-of-thought segment from reasoning
// models: everything up to and including the last closing think marker is
// discarded.
func stripThinking(message string) string {
	if !strings.Contains(message, "<think>") {
		return message
	}
	const closer = "</think>"
	if i := strings.LastIndex(message, closer); i != -1 {
		return strings.TrimSpace(message[i+len(closer):])
	}
	return message
}
