package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/pkg/response"
	"github.com/qaboard/qa-backend/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

// commentNewRequest carries at most one parent id; the service rejects both
// or neither.
type commentNewRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	QuestionID  *int64 `json:"question_id"`
	AnswerID    *int64 `json:"answer_id"`
	Description string `json:"description" binding:"required"`
}

type commentDescriptionRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	comment, err := h.Svc.FindComment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment, "comment", nil)
}

func (h *CommentHandler) ListByQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "questionId")
	if !ok {
		return
	}
	limit, offset := pageParams(c)
	comments, err := h.Svc.ListCommentsPaginatedByQuestionID(c.Request.Context(), questionID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", map[string]any{"limit": limit, "offset": offset})
}

func (h *CommentHandler) ListByAnswer(c *gin.Context) {
	answerID, ok := idParam(c, "answerId")
	if !ok {
		return
	}
	limit, offset := pageParams(c)
	comments, err := h.Svc.ListCommentsPaginatedByAnswerID(c.Request.Context(), answerID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", map[string]any{"limit": limit, "offset": offset})
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req commentNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !application.Authorize(subject(c), req.UserID) {
		forbidden(c)
		return
	}
	comment, err := h.Svc.CreateComment(c.Request.Context(), req.UserID, req.QuestionID, req.AnswerID, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment, "comment created", nil)
}

func (h *CommentHandler) UpdateDescription(c *gin.Context) {
	var req commentDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.FindComment(c.Request.Context(), req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), comment.UserID) {
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

func (h *CommentHandler) Upvote(c *gin.Context) {
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

func (h *CommentHandler) Downvote(c *gin.Context) {
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

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	comment, err := h.Svc.FindComment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !application.Authorize(subject(c), comment.UserID) {
		forbidden(c)
		return
	}
	if err := h.Svc.RemoveComment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "comment deleted", nil)
}
