package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"vlearn-backend/internal/llm"
	"vlearn-backend/internal/models"
)

// completionServer fakes the chat-completions endpoint with a fixed reply.
func completionServer(t *testing.T, reply string) (*httptest.Server, *int) {
	t.Helper()
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func TestGenerateCourseFromModelOutput(t *testing.T) {
	srv, _ := completionServer(t, "```json\n"+`{"title":"Go Basics","description":"d","icon":"🐹","topics":["Slices","Maps","Goroutines","Channels","Interfaces","Errors"]}`+"\n```")
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	draft, err := g.GenerateCourse(context.Background(), "teach me go")
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if draft.Title != "Go Basics" || len(draft.Topics) != 6 {
		t.Errorf("draft = %+v", draft)
	}
}

func TestGenerateCourseFallsBackOnServerError(t *testing.T) {
	srv := failingServer(t)
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	draft, err := g.GenerateCourse(context.Background(), "quantum computing")
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if draft.Title != "quantum computing" || len(draft.Topics) == 0 {
		t.Errorf("fallback draft = %+v", draft)
	}
}

func TestGenerateCourseFallsBackOnGarbage(t *testing.T) {
	srv, _ := completionServer(t, "I'd be happy to help, but not with JSON")
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	draft, err := g.GenerateCourse(context.Background(), "gardening")
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if draft.Title != "gardening" {
		t.Errorf("fallback draft = %+v", draft)
	}
}

func TestGenerateCourseEmptyPrompt(t *testing.T) {
	g := NewGenerator(llm.NewClient("http://unused", "", "m"), newMemoryCache())
	if _, err := g.GenerateCourse(context.Background(), "   "); err == nil {
		t.Error("expected error for blank prompt")
	}
}

func TestGenerateLessonCaches(t *testing.T) {
	srv, calls := completionServer(t, "# Slices\n\nLesson body.")
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	course := &models.Course{ID: "c1", Title: "Go Basics", Topics: []string{"Slices", "Maps"}}
	ctx := context.Background()

	first, err := g.GenerateLesson(ctx, course, 0)
	if err != nil {
		t.Fatalf("GenerateLesson: %v", err)
	}
	second, err := g.GenerateLesson(ctx, course, 0)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("cached lesson differs from generated one")
	}
	if *calls != 1 {
		t.Errorf("model called %d times, want 1 (second read from cache)", *calls)
	}

	// A different topic is a different cache key.
	if _, err := g.GenerateLesson(ctx, course, 1); err != nil {
		t.Fatal(err)
	}
	if *calls != 2 {
		t.Errorf("model called %d times, want 2", *calls)
	}
}

func TestGenerateLessonFallsBack(t *testing.T) {
	srv := failingServer(t)
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	course := &models.Course{ID: "c1", Title: "JavaScript Fundamentals", Topics: []string{"Closures"}}
	content, err := g.GenerateLesson(context.Background(), course, 0)
	if err != nil {
		t.Fatalf("GenerateLesson: %v", err)
	}
	if !strings.Contains(content, "# Closures") {
		t.Errorf("fallback lesson = %q", content)
	}
}

func TestGenerateLessonIndexOutOfRange(t *testing.T) {
	g := NewGenerator(llm.NewClient("http://unused", "", "m"), newMemoryCache())
	course := &models.Course{ID: "c1", Title: "Go", Topics: []string{"A"}}
	if _, err := g.GenerateLesson(context.Background(), course, 5); err == nil {
		t.Error("expected error for out of range index")
	}
}

func TestGenerateQuizFallsBack(t *testing.T) {
	srv := failingServer(t)
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	questions := g.GenerateQuiz(context.Background(), &models.Course{ID: "c1", Title: "Go", Topics: []string{"A"}})
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1 fallback question", len(questions))
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("fallback question = %+v", questions[0])
	}
}

func TestGenerateQuizParsesModelOutput(t *testing.T) {
	srv, _ := completionServer(t, `{"questions":[
		{"question":"q1","options":["a","b","c","d"],"correctAnswer":1,"explanation":"e"},
		{"question":"q2","options":["a","b","c","d"],"correctAnswer":2,"explanation":"e"}
	]}`)
	g := NewGenerator(llm.NewClient(srv.URL, "", "test-model"), newMemoryCache())

	questions := g.GenerateQuiz(context.Background(), &models.Course{ID: "c1", Title: "Go", Topics: []string{"A"}})
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[1].CorrectAnswer != 2 {
		t.Errorf("question = %+v", questions[1])
	}
}
