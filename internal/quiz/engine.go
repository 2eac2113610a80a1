// Package quiz drives a generated multiple-choice quiz from first question
// to scored completion.
package quiz

import "errors"

// PassThreshold is the fraction of correct answers required to pass.
const PassThreshold = 0.70

type Question struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type State int

const (
	StateAwaitingAnswer State = iota
	StateAnswerChecked
	StateCompleted
)

var (
	ErrNoSelection  = errors.New("quiz: no answer selected")
	ErrBadOption    = errors.New("quiz: option index out of range")
	ErrWrongState   = errors.New("quiz: operation not valid in current state")
	ErrNoQuestions  = errors.New("quiz: no questions available")
	ErrNotCompleted = errors.New("quiz: quiz not completed")
)

const noSelection = -1

// Engine is the quiz state machine. A generation contract says quizzes have
// exactly five questions, but the engine accepts any count, including zero:
// an empty engine starts completed so the caller can show a retry prompt
// instead of crashing.
type Engine struct {
	questions []Question
	index     int
	selected  int
	state     State
	score     int
	answers   []int
}

func NewEngine(questions []Question) *Engine {
	e := &Engine{
		questions: questions,
		selected:  noSelection,
		state:     StateAwaitingAnswer,
	}
	if len(questions) == 0 {
		e.state = StateCompleted
	}
	return e
}

// Empty reports whether the engine was built without questions, e.g. after a
// failed generation.
func (e *Engine) Empty() bool {
	return len(e.questions) == 0
}

func (e *Engine) State() State {
	return e.state
}

// Index returns the current question position.
func (e *Engine) Index() int {
	return e.index
}

// Current returns the question awaiting an answer.
func (e *Engine) Current() (Question, error) {
	if e.state == StateCompleted {
		return Question{}, ErrNoQuestions
	}
	return e.questions[e.index], nil
}

// Selected returns the tentative choice for the current question, or -1.
func (e *Engine) Selected() int {
	return e.selected
}

// SelectAnswer records a tentative choice without advancing.
func (e *Engine) SelectAnswer(option int) error {
	if e.state != StateAwaitingAnswer {
		return ErrWrongState
	}
	if option < 0 || option >= len(e.questions[e.index].Options) {
		return ErrBadOption
	}
	e.selected = option
	return nil
}

// CheckAnswer reveals the result for the current selection. The score is not
// touched until Advance.
func (e *Engine) CheckAnswer() error {
	if e.state != StateAwaitingAnswer {
		return ErrWrongState
	}
	if e.selected == noSelection {
		return ErrNoSelection
	}
	e.state = StateAnswerChecked
	return nil
}

// Advance logs the checked answer, scores it, and moves to the next question
// or to completion.
func (e *Engine) Advance() error {
	if e.state != StateAnswerChecked {
		return ErrWrongState
	}

	e.answers = append(e.answers, e.selected)
	if e.selected == e.questions[e.index].CorrectAnswer {
		e.score++
	}

	if e.index == len(e.questions)-1 {
		e.state = StateCompleted
		return nil
	}
	e.index++
	e.selected = noSelection
	e.state = StateAwaitingAnswer
	return nil
}

func (e *Engine) Score() int {
	return e.score
}

// Answers returns the answer log in question order.
func (e *Engine) Answers() []int {
	return e.answers
}

// Percent returns the final score as a whole percentage.
func (e *Engine) Percent() int {
	if len(e.questions) == 0 {
		return 0
	}
	return int(float64(e.score)/float64(len(e.questions))*100 + 0.5)
}

// Passed reports whether the finished quiz met the pass threshold.
func (e *Engine) Passed() (bool, error) {
	if e.state != StateCompleted {
		return false, ErrNotCompleted
	}
	if len(e.questions) == 0 {
		return false, nil
	}
	return float64(e.score)/float64(len(e.questions)) >= PassThreshold, nil
}
