package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"vlearn-backend/internal/llm"
	"vlearn-backend/internal/models"
	"vlearn-backend/internal/quiz"
)

const lessonCacheTTL = 24 * time.Hour

type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Generator wraps the text-generation service. Provider output is untrusted:
// every failure path resolves to static fallback content, never an error the
// user can't act on.
type Generator struct {
	client *llm.Client
	cache  CacheStore
}

func NewGenerator(client *llm.Client, cache CacheStore) *Generator {
	return &Generator{client: client, cache: cache}
}

// GenerateCourse turns a free-text prompt into a course outline.
func (g *Generator) GenerateCourse(ctx context.Context, prompt string) (*models.CourseDraft, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("course prompt is required")
	}

	text, err := g.client.Generate(llm.BuildCoursePrompt(prompt), llm.Options{
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.9,
	})
	if err != nil {
		log.Printf("Course generation failed, using fallback outline: %v", err)
		return llm.FallbackCourse(prompt), nil
	}

	draft, err := llm.ParseCourseDraft(text)
	if err != nil {
		log.Printf("Course response not usable, using fallback outline: %v", err)
		return llm.FallbackCourse(prompt), nil
	}
	return draft, nil
}

// GenerateLesson produces markdown chapter content for one topic, cached per
// course and topic.
func (g *Generator) GenerateLesson(ctx context.Context, course *models.Course, topicIndex int) (string, error) {
	if topicIndex < 0 || topicIndex >= len(course.Topics) {
		return "", fmt.Errorf("topic index %d out of range", topicIndex)
	}
	topic := course.Topics[topicIndex]

	key := "lesson:" + course.ID + ":" + strconv.Itoa(topicIndex)
	if cached, err := g.cache.Get(ctx, key); err == nil && cached != "" {
		return cached, nil
	}

	content, err := g.client.Generate(llm.BuildLessonPrompt(topic, course.Title), llm.Options{
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		log.Printf("Lesson generation failed for %q, using fallback content: %v", topic, err)
		content = llm.FallbackLesson(topic, course.Title)
	}

	if err := g.cache.Set(ctx, key, content, lessonCacheTTL); err != nil {
		log.Printf("Failed to cache lesson content: %v", err)
	}
	return content, nil
}

// GenerateQuiz produces the five-question quiz for a course. A generation or
// parse failure yields the single-question placeholder quiz instead.
func (g *Generator) GenerateQuiz(ctx context.Context, course *models.Course) []quiz.Question {
	text, err := g.client.Generate(llm.BuildQuizPrompt(course.Title, course.Topics), llm.Options{
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.9,
	})
	if err != nil {
		log.Printf("Quiz generation failed: %v", err)
		return llm.FallbackQuiz(err.Error())
	}

	questions, err := llm.ParseQuiz(text)
	if err != nil {
		log.Printf("Quiz response not parseable: %v", err)
		return llm.FallbackQuiz(err.Error())
	}
	return questions
}
