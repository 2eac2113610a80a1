package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/markdown"
	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

// LearningHandler serves generated content: course outlines, lesson chapters
// and quizzes.
type LearningHandler struct {
	courses   *service.CourseService
	generator *service.Generator
}

func NewLearningHandler(courses *service.CourseService, generator *service.Generator) *LearningHandler {
	return &LearningHandler{courses: courses, generator: generator}
}

type generateCourseRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateCourse returns a draft outline. The client reviews it and saves it
// through the course create endpoint.
func (h *LearningHandler) GenerateCourse(c *gin.Context) {
	var req generateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	draft, err := h.generator.GenerateCourse(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Course outline generated", draft)
}

// Lesson returns the markdown content for one topic together with its parsed
// block structure.
func (h *LearningHandler) Lesson(c *gin.Context) {
	topicIndex, err := strconv.Atoi(c.Param("topicIndex"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid topic index")
		return
	}

	course, err := h.courses.GetCourse(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Course not found")
		return
	}

	content, err := h.generator.GenerateLesson(c.Request.Context(), course, topicIndex)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, "Lesson content", gin.H{
		"topic":   course.Topics[topicIndex],
		"content": content,
		"blocks":  markdown.Render(content),
	})
}

// Quiz returns the question set for a course. Answer checking happens on the
// client; the result comes back through the quiz submit endpoint.
func (h *LearningHandler) Quiz(c *gin.Context) {
	course, err := h.courses.GetCourse(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Course not found")
		return
	}

	questions := h.generator.GenerateQuiz(c.Request.Context(), course)
	utils.SuccessResponse(c, "Quiz generated", gin.H{
		"courseId":  course.ID,
		"questions": questions,
	})
}
