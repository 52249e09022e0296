package tone

import (
	"fmt"

	"github.com/josephmowjew/communication-agent/internal/domain/models"
)

// guidelines maps each tone label to the guideline sentence injected into
// the generation prompt.
var guidelines = map[models.ToneLabel]string{
	models.ToneProfessional: "Use a professional and polished tone. Be clear, concise, and business-appropriate.",
	models.ToneFriendly:     "Use a warm and approachable tone. Be personable while maintaining professionalism.",
	models.ToneFormal:       "Use a formal and traditional tone. Be respectful and maintain appropriate distance.",
	models.ToneEmpathetic:   "Use an understanding and supportive tone. Show compassion and acknowledge feelings.",
	models.ToneDirect:       "Use a clear and straightforward tone. Be concise and get to the point quickly.",
}

// Guideline returns the guideline sentence for a tone label.
func Guideline(t models.ToneLabel) string {
	return guidelines[t]
}

// ValidateGuidelines verifies the guideline table covers every tone label.
// Called at startup so a misconfigured table fails fast instead of at
// request time.
func ValidateGuidelines() error {
	for _, t := range models.AllTones {
		if guidelines[t] == "" {
			return fmt.Errorf("missing tone guideline for %q", t)
		}
	}
	return nil
}
