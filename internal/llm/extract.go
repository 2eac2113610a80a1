package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/quiz"
)

// ExtractJSON isolates a JSON object from model output: code-fence markers
// are stripped, then everything outside the first '{' and last '}' is
// discarded. The result is still untrusted and must be unmarshalled by the
// caller.
func ExtractJSON(text string) string {
	clean := strings.TrimSpace(text)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start != -1 && end != -1 && end > start {
		clean = clean[start : end+1]
	}
	return strings.TrimSpace(clean)
}

type quizPayload struct {
	Questions []quiz.Question `json:"questions"`
}

// ParseQuiz decodes generated quiz text into questions.
func ParseQuiz(text string) ([]quiz.Question, error) {
	var payload quizPayload
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("quiz response not parseable: %w", err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("quiz response contained no questions")
	}
	return payload.Questions, nil
}

// ParseCourseDraft decodes a generated course outline.
func ParseCourseDraft(text string) (*models.CourseDraft, error) {
	var draft models.CourseDraft
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &draft); err != nil {
		return nil, fmt.Errorf("course response not parseable: %w", err)
	}
	if draft.Title == "" || len(draft.Topics) == 0 {
		return nil, fmt.Errorf("course response missing title or topics")
	}
	return &draft, nil
}
