package llm

import (
	"fmt"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/quiz"
)

// FallbackQuiz is the single-question placeholder shown when generation
// fails or its output cannot be parsed.
func FallbackQuiz(reason string) []quiz.Question {
	return []quiz.Question{
		{
			Question:      fmt.Sprintf("Quiz generation failed: %s. Using fallback quiz.", reason),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("Error: %s. Please check the generation service and try again.", reason),
		},
	}
}

// FallbackCourse produces a generic outline when the generator is
// unavailable. The user can still edit topics before saving.
func FallbackCourse(userPrompt string) *models.CourseDraft {
	return &models.CourseDraft{
		Title:       userPrompt,
		Description: fmt.Sprintf("A structured course about %s.", userPrompt),
		Icon:        "📚",
		Topics: []string{
			"Introduction and Overview",
			"Core Concepts",
			"Fundamental Techniques",
			"Practical Applications",
			"Common Pitfalls",
			"Advanced Topics",
			"Putting It All Together",
		},
	}
}

// FallbackLesson is the canned chapter shown when content generation fails.
func FallbackLesson(topic, courseTitle string) string {
	syntaxSection := "## Practical Examples\nLet's explore how these concepts work in practice with real-world scenarios and applications."
	if IsProgrammingCourse(courseTitle) {
		syntaxSection = fmt.Sprintf(`## Syntax and Examples
Here are some basic examples related to %[1]s:

`+"```"+`
// Example code structure for %[1]s
// This is a basic template to get you started
function example() {
    // Implementation details would go here
    return "Understanding %[1]s";
}
`+"```"+`

Key syntax points:
- Use proper indentation for readability
- Follow naming conventions
- Include comments for clarity`, topic)
	}

	return fmt.Sprintf(`# %[1]s

## Introduction
Welcome to learning about %[1]s! This is a crucial concept in %[2]s that will significantly enhance your understanding and skills in this field.

## Core Concepts
%[1]s represents fundamental principles that form the backbone of %[2]s. These concepts are essential building blocks that will support your learning journey and practical applications.

%[3]s

## Practical Applications
Understanding %[1]s opens up numerous possibilities for real-world problem-solving and implementation. These skills are directly applicable to professional scenarios you'll encounter.

## Advanced Concepts
As you progress, %[1]s becomes the foundation for more sophisticated techniques and methodologies. Master these basics to unlock advanced capabilities.

## Key Takeaways
- %[1]s is fundamental to success in %[2]s
- Practice these concepts regularly to build proficiency
- Apply these principles to real-world projects
- Connect this knowledge to other course topics

## Connection to Course
%[1]s integrates seamlessly with other topics in %[2]s, creating a comprehensive learning experience that builds upon itself progressively.`, topic, courseTitle, syntaxSection)
}
