package quiz

import (
	"errors"
	"testing"
)

func fiveQuestions() []Question {
	questions := make([]Question, 5)
	for i := range questions {
		questions[i] = Question{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   "e",
		}
	}
	return questions
}

func answer(t *testing.T, e *Engine, option int) {
	t.Helper()
	if err := e.SelectAnswer(option); err != nil {
		t.Fatalf("SelectAnswer(%d): %v", option, err)
	}
	if err := e.CheckAnswer(); err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if err := e.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

func TestEngineFullRunAllCorrect(t *testing.T) {
	e := NewEngine(fiveQuestions())

	for i := 0; i < 5; i++ {
		if e.Index() != i {
			t.Fatalf("index = %d, want %d", e.Index(), i)
		}
		q, err := e.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		answer(t, e, q.CorrectAnswer)
	}

	if e.State() != StateCompleted {
		t.Fatalf("state = %v, want StateCompleted", e.State())
	}
	if e.Score() != 5 {
		t.Errorf("score = %d, want 5", e.Score())
	}
	if e.Percent() != 100 {
		t.Errorf("percent = %d, want 100", e.Percent())
	}
	passed, err := e.Passed()
	if err != nil || !passed {
		t.Errorf("Passed() = %v, %v, want true, nil", passed, err)
	}
}

func TestEnginePassThreshold(t *testing.T) {
	tests := []struct {
		correct int
		want    bool
	}{
		{3, false}, // 60%
		{4, true},  // 80%
		{5, true},
	}

	for _, tt := range tests {
		questions := fiveQuestions()
		e := NewEngine(questions)
		for i := 0; i < 5; i++ {
			option := questions[i].CorrectAnswer
			if i >= tt.correct {
				option = (option + 1) % len(questions[i].Options)
			}
			answer(t, e, option)
		}
		passed, err := e.Passed()
		if err != nil {
			t.Fatalf("Passed: %v", err)
		}
		if passed != tt.want {
			t.Errorf("%d/5 correct: passed = %v, want %v", tt.correct, passed, tt.want)
		}
	}
}

func TestEngineScoreCountedAtAdvance(t *testing.T) {
	e := NewEngine(fiveQuestions())
	q, _ := e.Current()

	if err := e.SelectAnswer(q.CorrectAnswer); err != nil {
		t.Fatal(err)
	}
	if err := e.CheckAnswer(); err != nil {
		t.Fatal(err)
	}
	if e.Score() != 0 {
		t.Errorf("score after check = %d, want 0", e.Score())
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if e.Score() != 1 {
		t.Errorf("score after advance = %d, want 1", e.Score())
	}
}

func TestEngineStateErrors(t *testing.T) {
	e := NewEngine(fiveQuestions())

	if err := e.CheckAnswer(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("CheckAnswer with no selection = %v, want ErrNoSelection", err)
	}
	if err := e.Advance(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Advance before check = %v, want ErrWrongState", err)
	}
	if err := e.SelectAnswer(99); !errors.Is(err, ErrBadOption) {
		t.Errorf("SelectAnswer(99) = %v, want ErrBadOption", err)
	}
	if err := e.SelectAnswer(-1); !errors.Is(err, ErrBadOption) {
		t.Errorf("SelectAnswer(-1) = %v, want ErrBadOption", err)
	}
	if _, err := e.Passed(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("Passed mid-quiz = %v, want ErrNotCompleted", err)
	}

	// After checking, the selection is locked.
	if err := e.SelectAnswer(0); err != nil {
		t.Fatal(err)
	}
	if err := e.CheckAnswer(); err != nil {
		t.Fatal(err)
	}
	if err := e.SelectAnswer(1); !errors.Is(err, ErrWrongState) {
		t.Errorf("SelectAnswer after check = %v, want ErrWrongState", err)
	}
	if err := e.CheckAnswer(); !errors.Is(err, ErrWrongState) {
		t.Errorf("second CheckAnswer = %v, want ErrWrongState", err)
	}
}

func TestEngineSelectionResetsBetweenQuestions(t *testing.T) {
	e := NewEngine(fiveQuestions())
	answer(t, e, 2)
	if e.Selected() != -1 {
		t.Errorf("selected after advance = %d, want -1", e.Selected())
	}
}

func TestEngineAnswersLog(t *testing.T) {
	e := NewEngine(fiveQuestions())
	picks := []int{0, 3, 1, 2, 0}
	for _, p := range picks {
		answer(t, e, p)
	}
	got := e.Answers()
	if len(got) != len(picks) {
		t.Fatalf("answers = %v, want %v", got, picks)
	}
	for i := range picks {
		if got[i] != picks[i] {
			t.Errorf("answers[%d] = %d, want %d", i, got[i], picks[i])
		}
	}
}

func TestEngineEmpty(t *testing.T) {
	e := NewEngine(nil)

	if !e.Empty() {
		t.Error("Empty() = false, want true")
	}
	if e.State() != StateCompleted {
		t.Errorf("state = %v, want StateCompleted", e.State())
	}
	if _, err := e.Current(); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Current = %v, want ErrNoQuestions", err)
	}
	if err := e.SelectAnswer(0); !errors.Is(err, ErrWrongState) {
		t.Errorf("SelectAnswer = %v, want ErrWrongState", err)
	}
	if e.Percent() != 0 {
		t.Errorf("percent = %d, want 0", e.Percent())
	}
	passed, err := e.Passed()
	if err != nil {
		t.Fatalf("Passed: %v", err)
	}
	if passed {
		t.Error("empty quiz passed = true, want false")
	}
}

func TestEngineAdvanceAfterCompletion(t *testing.T) {
	e := NewEngine(fiveQuestions())
	for i := 0; i < 5; i++ {
		answer(t, e, 0)
	}
	if err := e.Advance(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Advance after completion = %v, want ErrWrongState", err)
	}
}
