package conversation

import (
	"fmt"
	"strings"

	"github.com/josephmowjew/communication-agent/internal/domain/models"
)

// chatTemplate is the conversation prompt. Slots: formatted history, new
// user input.
const chatTemplate = `You are an AI assistant powered by DeepScaleR, a state-of-the-art language model trained using distributed reinforcement learning. You excel at:
- Mathematical reasoning and problem-solving
- Precise and accurate responses
- Handling complex queries with structured thinking
- Maintaining context in long conversations

Current conversation context:
%s
Human: %s
Assistant: Let me provide a clear and structured response.`

// formatHistory renders prior turns as alternating Human/Assistant lines.
func formatHistory(turns []models.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		label := "Human"
		if t.Role == models.RoleAssistant {
			label = "Assistant"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, t.Content))
	}
	return strings.Join(lines, "\n")
}

// buildChatPrompt assembles the history+input prompt for one chat turn.
func buildChatPrompt(turns []models.Turn, input string) string {
	return fmt.Sprintf(chatTemplate, formatHistory(turns), input)
}
