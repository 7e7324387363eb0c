package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/pkg/response"
	"github.com/qaboard/qa-backend/pkg/validation"
)

type AnswerHandler struct {
	Svc    *application.AnswerService
	Logger *logrus.Logger
}

func NewAnswerHandler(svc *application.AnswerService, logger *logrus.Logger) *AnswerHandler {
	return &AnswerHandler{Svc: svc, Logger: logger}
}

type answerNewRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	QuestionID  int64  `json:"question_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type answerDescriptionRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *AnswerHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, err := h.Svc.FindAnswer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a, "answer", nil)
}

func (h *AnswerHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	answers, err := h.Svc.FindAnswers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answers, "answers", map[string]any{"limit": limit, "offset": offset})
}

func (h *AnswerHandler) ListByQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "questionId")
	if !ok {
		return
	}
	limit, offset := pageParams(c)
	answers, err := h.Svc.FindAnswersByQuestionID(c.Request.Context(), questionID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answers, "answers", map[string]any{"limit": limit, "offset": offset})
}

func (h *AnswerHandler) Create(c *gin.Context) {
	var req answerNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !application.Authorize(subject(c), req.UserID) {
		forbidden(c)
		return
	}
	a, err := h.Svc.CreateAnswer(c.Request.Context(), req.UserID, req.QuestionID, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a, "answer created", nil)
}

func (h *AnswerHandler) UpdateDescription(c *gin.Context) {
	var req answerDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.FindAnswer(c.Request.Context(), req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), a.UserID) {
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

func (h *AnswerHandler) Upvote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rating, err := h.Svc.IncrementRating(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating, "rating updated", nil)
}

func (h *AnswerHandler) Downvote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rating, err := h.Svc.DecrementRating(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating, "rating updated", nil)
}

func (h *AnswerHandler) SetCorrect(c *gin.Context) {
	h.setCorrectFlag(c, true)
}

func (h *AnswerHandler) UnsetCorrect(c *gin.Context) {
	h.setCorrectFlag(c, false)
}

func (h *AnswerHandler) setCorrectFlag(c *gin.Context, correct bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, err := h.Svc.FindAnswer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), a.UserID) {
		forbidden(c)
		return
	}
	var updated = a
	if correct {
		updated, err = h.Svc.SetCorrectAnswer(c.Request.Context(), id)
	} else {
		updated, err = h.Svc.UnsetCorrectAnswer(c.Request.Context(), id)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, "correct flag updated", nil)
}

func (h *AnswerHandler) CountByUser(c *gin.Context) {
	count, err := h.Svc.CountNumberOfAnswersOfUser(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, count, "answer count", nil)
}

func (h *AnswerHandler) CountByQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "questionId")
	if !ok {
		return
	}
	count, err := h.Svc.CountNumberOfAnswersOfQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, count, "answer count", nil)
}

// Delete removes the answer and cascades to its comments.
func (h *AnswerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, err := h.Svc.FindAnswer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), a.UserID) {
		forbidden(c)
		return
	}
	if err := h.Svc.RemoveAnswer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "answer deleted", nil)
}
