package llm

import (
	"fmt"
	"strings"
)

var programmingHints = []string{
	"programming", "code", "development", "javascript", "python",
	"java", "c++", "html", "css", "react", "web",
}

// IsProgrammingCourse guesses from the title whether lessons should carry
// code examples.
func IsProgrammingCourse(courseTitle string) bool {
	lower := strings.ToLower(courseTitle)
	for _, hint := range programmingHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// BuildCoursePrompt asks for a structured course outline as JSON.
func BuildCoursePrompt(userPrompt string) string {
	return fmt.Sprintf(`Create a structured learning course from this request: %q.

You must respond with ONLY a valid JSON object in this exact format:
{
  "title": "Concise course title",
  "description": "One or two sentence course description",
  "icon": "A single emoji that represents the course",
  "topics": ["Topic 1", "Topic 2", "Topic 3", "Topic 4", "Topic 5", "Topic 6", "Topic 7", "Topic 8"]
}

Requirements:
- Generate 6 to 8 topics ordered from fundamentals to advanced concepts
- Topics should be short, specific lesson titles
- Return ONLY the JSON object with no additional text or formatting.`, userPrompt)
}

// BuildLessonPrompt asks for textbook-chapter style markdown for one topic.
func BuildLessonPrompt(topic, courseTitle string) string {
	syntaxSection := "Provide practical examples and demonstrations of the concepts in action."
	if IsProgrammingCourse(courseTitle) {
		syntaxSection = fmt.Sprintf(`Provide detailed syntax examples and code snippets with proper formatting:

### Basic Syntax
`+"```javascript"+`
// Example: Basic %[1]s syntax
const example = "%[1]s";
console.log(example);
`+"```"+`

### Advanced Usage
`+"```javascript"+`
// Example: Advanced %[1]s implementation
function advanced%[2]s() {
    // Implementation details
    return "Advanced usage demonstration";
}
`+"```"+`

Explain each code example line by line and demonstrate multiple use cases.`, topic, strings.ReplaceAll(topic, " ", ""))
	}

	return fmt.Sprintf(`Create comprehensive educational content about %[1]q for the course %[2]q.

Structure the content like a textbook chapter with proper formatting:

# %[1]s

Generate content with the following structure:

## Introduction
Write an engaging introduction paragraph explaining what %[1]s is and its importance in %[2]s.

## Core Concepts
Explain the fundamental concepts with clear definitions and explanations.

## Syntax and Examples
%[3]s

## Practical Applications
Discuss real-world usage and practical applications with specific examples.

## Best Practices
Cover important best practices, common pitfalls, and professional tips.

## Key Takeaways
Summarize the most important points and actionable insights.

## Next Steps
Explain how this topic connects to other topics in %[2]s and what to learn next.

FORMATTING REQUIREMENTS:
- Use proper markdown headers
- For code examples, use triple backticks with language specification
- Keep code blocks properly formatted with syntax highlighting
- Use single backticks for inline code mentions
- Each section should be well-structured and informative
- Include practical, working code examples that users can copy and use
- Maintain proper spacing and readability`, topic, courseTitle, syntaxSection)
}

// BuildQuizPrompt asks for exactly five multiple-choice questions as JSON.
func BuildQuizPrompt(courseTitle string, topics []string) string {
	topicList := strings.Join(topics, ", ")
	return fmt.Sprintf(`Create a comprehensive quiz for the course %[1]q covering these topics: %[2]s.

Generate exactly 5 multiple-choice questions that test understanding of the key concepts from these topics.

You must respond with ONLY a valid JSON object in this exact format:
{
  "questions": [
    {
      "question": "Clear, specific question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Clear explanation of why this answer is correct"
    }
  ]
}

Requirements for each question:
- Make questions specific and directly related to the course topics: %[2]s
- Each question should test practical understanding, not just memorization
- Options should be plausible but only one clearly correct
- Explanations should be educational and help reinforce learning
- Questions should progress from basic to more advanced concepts
- Avoid overly technical jargon - keep it accessible but accurate

Generate exactly 5 questions and return ONLY the JSON object with no additional text or formatting.`, courseTitle, topicList)
}
