// Package assistant turns free-text user input into in-app navigation
// actions. Matching is a fixed ordered list of keyword rules, first match
// wins; every call is independent of previous turns.
package assistant

import (
	"fmt"
	"strings"

	"vlearn-backend/internal/models"
)

const (
	ActionOpenCourse = "open_course"
	ActionOpenTab    = "open_tab"
)

type Action struct {
	Type     string `json:"type"`
	CourseID string `json:"courseId,omitempty"`
	Tab      string `json:"tab,omitempty"`
	Label    string `json:"label"`
}

type Response struct {
	Text    string   `json:"text"`
	Actions []Action `json:"actions,omitempty"`
}

type input struct {
	raw     string
	lower   string
	courses []models.Course
}

func (in input) has(words ...string) bool {
	for _, w := range words {
		if strings.Contains(in.lower, w) {
			return true
		}
	}
	return false
}

type rule struct {
	match   func(in input) bool
	respond func(in input) Response
}

// Rules are evaluated in order; keep list-courses before search and search
// before open-course so "show my courses" never falls through to a course
// title match.
var rules = []rule{
	{matchListCourses, respondListCourses},
	{matchSearch, respondSearch},
	{matchOpenCourse, respondOpenCourse},
	{func(in input) bool { return in.has("dashboard", "home") }, func(in input) Response {
		return Response{
			Text:    "Taking you to the dashboard!",
			Actions: []Action{{Type: ActionOpenTab, Tab: "dashboard", Label: "Go to Dashboard"}},
		}
	}},
	{func(in input) bool { return in.has("create") && in.has("course") }, func(in input) Response {
		return Response{
			Text:    "Let's create a new course!",
			Actions: []Action{{Type: ActionOpenTab, Tab: "create-course", Label: "Create Course"}},
		}
	}},
	{func(in input) bool { return in.has("notes") }, func(in input) Response {
		return Response{
			Text:    "Opening your notes section!",
			Actions: []Action{{Type: ActionOpenTab, Tab: "notes", Label: "View Notes"}},
		}
	}},
	{func(in input) bool { return in.has("profile") }, func(in input) Response {
		return Response{
			Text:    "Opening your profile!",
			Actions: []Action{{Type: ActionOpenTab, Tab: "profile", Label: "View Profile"}},
		}
	}},
	{func(in input) bool { return in.has("certificate") }, respondCertificates},
	{func(in input) bool { return in.has("analytics", "progress", "stats") }, func(in input) Response {
		return Response{
			Text:    "Opening your learning analytics!",
			Actions: []Action{{Type: ActionOpenTab, Tab: "analytics", Label: "View Analytics"}},
		}
	}},
	{func(in input) bool { return in.has("quiz", "test") }, respondQuiz},
	{func(in input) bool { return in.has("help", "what can you do", "commands") }, func(in input) Response {
		return Response{Text: helpText}
	}},
}

// Interpret matches user input against the rule list and builds a reply.
func Interpret(text string, courses []models.Course) Response {
	in := input{raw: text, lower: strings.ToLower(text), courses: courses}
	for _, r := range rules {
		if r.match(in) {
			return r.respond(in)
		}
	}
	return defaultResponse()
}

func matchListCourses(in input) bool {
	if in.has("show") && (in.has("course") || in.has("my")) {
		return true
	}
	return in.has("list courses", "my courses")
}

func respondListCourses(in input) Response {
	if len(in.courses) == 0 {
		return Response{
			Text:    "You don't have any courses yet. Would you like me to help you create one?",
			Actions: []Action{{Type: ActionOpenTab, Tab: "create-course", Label: "Create Course"}},
		}
	}

	return Response{
		Text:    fmt.Sprintf("Here are your courses:\n\n%s\n\nClick below to open any course:", courseLines(in.courses)),
		Actions: openActions(in.courses),
	}
}

func matchSearch(in input) bool {
	return in.has("search", "find course")
}

// searchReplacer strips the command words before matching; "find course"
// must be listed before "course" so it is removed as a unit.
var searchReplacer = strings.NewReplacer("search", "", "find course", "", "course", "")

func respondSearch(in input) Response {
	term := strings.TrimSpace(searchReplacer.Replace(in.lower))
	if term == "" {
		return Response{Text: "What would you like to search for? Try: 'search javascript' or 'find course react'"}
	}

	var matches []models.Course
	for _, course := range in.courses {
		if courseMatchesTerm(course, term) {
			matches = append(matches, course)
		}
	}

	if len(matches) == 0 {
		return Response{
			Text:    fmt.Sprintf("No courses found matching %q. Try searching with different keywords or create a new course!", term),
			Actions: []Action{{Type: ActionOpenTab, Tab: "create-course", Label: "Create Course"}},
		}
	}

	return Response{
		Text:    fmt.Sprintf("Found %d course(s) matching %q:\n\n%s", len(matches), term, courseLines(matches)),
		Actions: openActions(matches),
	}
}

func courseMatchesTerm(course models.Course, term string) bool {
	if strings.Contains(strings.ToLower(course.Title), term) ||
		strings.Contains(strings.ToLower(course.Description), term) {
		return true
	}
	for _, topic := range course.Topics {
		if strings.Contains(strings.ToLower(topic), term) {
			return true
		}
	}
	return false
}

var openReplacer = strings.NewReplacer("open", "", "start", "", "course", "")

func matchOpenCourse(in input) bool {
	if !in.has("open", "start", "course") {
		return false
	}
	return findCourse(in) != nil
}

func findCourse(in input) *models.Course {
	clean := strings.TrimSpace(openReplacer.Replace(in.lower))
	for i := range in.courses {
		course := &in.courses[i]
		title := strings.ToLower(course.Title)
		if strings.Contains(title, clean) || strings.Contains(clean, title) {
			return course
		}
		for _, topic := range course.Topics {
			if strings.Contains(strings.ToLower(topic), clean) {
				return course
			}
		}
		if first, _, _ := strings.Cut(title, " "); first != "" && strings.Contains(clean, first) {
			return course
		}
	}
	return nil
}

func respondOpenCourse(in input) Response {
	course := findCourse(in)

	actions := []Action{
		{Type: ActionOpenCourse, CourseID: course.ID, Tab: "learn", Label: "Learn"},
		{Type: ActionOpenCourse, CourseID: course.ID, Tab: "quiz", Label: "Take Quiz"},
	}
	if course.Completed {
		actions = append(actions, Action{Type: ActionOpenCourse, CourseID: course.ID, Tab: "certificate", Label: "View Certificate"})
	}

	return Response{
		Text: fmt.Sprintf("Opening %s! %s\n\nProgress: %d%%\n%s\n\nWhat would you like to do?",
			course.Title, course.Icon, course.Progress, course.Description),
		Actions: actions,
	}
}

func respondCertificates(in input) Response {
	completed := 0
	for _, course := range in.courses {
		if course.Completed {
			completed++
		}
	}
	if completed == 0 {
		return Response{Text: "You haven't earned any certificates yet. Complete a course to earn your first certificate!"}
	}
	return Response{
		Text:    "Opening your certificates section!",
		Actions: []Action{{Type: ActionOpenTab, Tab: "certificates", Label: "View Certificates"}},
	}
}

func respondQuiz(in input) Response {
	if len(in.courses) == 0 {
		return Response{Text: "You need to create a course first to take quizzes!"}
	}

	actions := make([]Action, 0, len(in.courses))
	for _, course := range in.courses {
		actions = append(actions, Action{
			Type:     ActionOpenCourse,
			CourseID: course.ID,
			Tab:      "quiz",
			Label:    "Quiz: " + course.Title,
		})
	}
	return Response{Text: "Which course quiz would you like to take?", Actions: actions}
}

func courseLines(courses []models.Course) string {
	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		lines = append(lines, fmt.Sprintf("• %s %s (%d%% complete)", course.Icon, course.Title, course.Progress))
	}
	return strings.Join(lines, "\n")
}

func openActions(courses []models.Course) []Action {
	actions := make([]Action, 0, len(courses))
	for _, course := range courses {
		actions = append(actions, Action{
			Type:     ActionOpenCourse,
			CourseID: course.ID,
			Label:    "Open " + course.Title,
		})
	}
	return actions
}

const helpText = "I can help you with:\n\n" +
	"📚 Course Management:\n" +
	"• 'Show my courses' - Display all courses\n" +
	"• 'Search [keyword]' - Find courses by topic\n" +
	"• 'Open [course name]' - Open specific course\n" +
	"• 'Create course' - Start new course\n\n" +
	"🎯 Navigation:\n" +
	"• 'Dashboard' - Go to main dashboard\n" +
	"• 'Notes' - Access your notes\n" +
	"• 'Profile' - View your profile\n" +
	"• 'Certificates' - See earned certificates\n" +
	"• 'Analytics' - View learning progress\n\n" +
	"🧪 Learning:\n" +
	"• 'Quiz' - Take course quizzes\n" +
	"• 'Progress' - Check your progress\n\n" +
	"Just type naturally what you want to do!"

func defaultResponse() Response {
	suggestions := []string{
		"Show my courses",
		"Search javascript",
		"Open course",
		"Create course",
		"Dashboard",
		"Help",
	}
	var b strings.Builder
	b.WriteString("I'm not sure how to help with that. Here are some things you can try:\n\n")
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %q", s)
	}
	b.WriteString("\n\nOr just type 'help' to see all available commands!")
	return Response{Text: b.String()}
}
