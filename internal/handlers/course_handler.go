package handlers

import (
	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

type CourseHandler struct {
	courses *service.CourseService
}

func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var draft models.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	course, err := h.courses.CreateCourse(c.Request.Context(), currentUserID(c), &draft)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Course created", course)
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.ListCourses(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list courses", err)
		return
	}
	utils.SuccessResponse(c, "Courses retrieved", courses)
}

func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.GetCourse(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Course not found")
		return
	}
	utils.SuccessResponse(c, "Course retrieved", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.DeleteCourse(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.NotFoundResponse(c, "Course not found")
		return
	}
	utils.SuccessResponse(c, "Course deleted", nil)
}

type completeTopicRequest struct {
	TopicIndex *int `json:"topicIndex" binding:"required"`
}

func (h *CourseHandler) CompleteTopic(c *gin.Context) {
	var req completeTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	course, err := h.courses.MarkTopicComplete(c.Request.Context(), currentUserID(c), c.Param("id"), *req.TopicIndex)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Topic marked complete", course)
}

type completeCourseRequest struct {
	Score int `json:"score"`
}

func (h *CourseHandler) CompleteCourse(c *gin.Context) {
	var req completeCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	course, err := h.courses.MarkCourseComplete(c.Request.Context(), currentUserID(c), c.Param("id"), req.Score)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Course completed", course)
}

type quizResultRequest struct {
	CorrectCount   *int `json:"correctCount" binding:"required"`
	TotalQuestions *int `json:"totalQuestions" binding:"required"`
}

func (h *CourseHandler) SubmitQuiz(c *gin.Context) {
	var req quizResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.courses.SubmitQuizResult(c.Request.Context(), currentUserID(c), c.Param("id"), *req.CorrectCount, *req.TotalQuestions)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Quiz result recorded", result)
}

func (h *CourseHandler) Certificates(c *gin.Context) {
	certs, err := h.courses.ListCertificates(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list certificates", err)
		return
	}
	utils.SuccessResponse(c, "Certificates retrieved", certs)
}
