package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/pkg/response"
	"github.com/qaboard/qa-backend/pkg/validation"
)

type QuestionHandler struct {
	Svc    *application.QuestionService
	Logger *logrus.Logger
}

func NewQuestionHandler(svc *application.QuestionService, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{Svc: svc, Logger: logger}
}

type questionNewRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type questionTitleRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type questionDescriptionRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	q, err := h.Svc.FindQuestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, q, "question", nil)
}

func (h *QuestionHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	questions, err := h.Svc.FindQuestions(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, questions, "questions", map[string]any{"limit": limit, "offset": offset})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !application.Authorize(subject(c), req.UserID) {
		forbidden(c)
		return
	}
	q, err := h.Svc.CreateQuestion(c.Request.Context(), req.UserID, req.Title, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, q, "question created", nil)
}

func (h *QuestionHandler) UpdateTitle(c *gin.Context) {
	var req questionTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.FindQuestion(c.Request.Context(), req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), q.UserID) {
		forbidden(c)
		return
	}
	updated, err := h.Svc.UpdateTitle(c.Request.Context(), req.ID, req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, "title updated", nil)
}

func (h *QuestionHandler) UpdateDescription(c *gin.Context) {
	var req questionDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.FindQuestion(c.Request.Context(), req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), q.UserID) {
		forbidden(c)
		return
	}
	updated, err := h.Svc.UpdateDescription(c.Request.Context(), req.ID, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, "description updated", nil)
}

// IncrementView is open to any caller; views are a crowd signal, not
// owner-gated.
func (h *QuestionHandler) IncrementView(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	views, err := h.Svc.IncrementView(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "view counted", nil)
}

func (h *QuestionHandler) Upvote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rating, err := h.Svc.UpvoteRating(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating, "rating updated", nil)
}

func (h *QuestionHandler) Downvote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rating, err := h.Svc.DownvoteRating(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating, "rating updated", nil)
}

// SetCorrectAnswer is gated on the question owner: only the asker picks the
// accepted answer.
func (h *QuestionHandler) SetCorrectAnswer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	answerID, ok := idParam(c, "answerId")
	if !ok {
		return
	}
	q, err := h.Svc.FindQuestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), q.UserID) {
		forbidden(c)
		return
	}
	updated, err := h.Svc.SetCorrectAnswer(c.Request.Context(), id, answerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, "correct answer set", nil)
}

func (h *QuestionHandler) Count(c *gin.Context) {
	userID := c.Query("id")
	count, err := h.Svc.GetCount(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, count, "question count", nil)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	q, err := h.Svc.FindQuestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), q.UserID) {
		forbidden(c)
		return
	}
	if err := h.Svc.RemoveQuestion(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "question deleted", nil)
}
