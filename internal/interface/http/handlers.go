package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
	"github.com/qaboard/qa-backend/pkg/response"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
)

// pageParams reads limit/offset query params. Limit is capped at 50; offset
// counts pages.
func pageParams(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func subject(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// respondServiceError maps service errors onto status codes: validation to
// 400, any aggregate not-found to 404, everything else to 500. Access denial
// never travels as an error; handlers branch to forbidden directly.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrQuestionNotFound),
		errors.Is(err, application.ErrAnswerNotFound),
		errors.Is(err, application.ErrCommentNotFound),
		errors.Is(err, application.ErrProfileNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

func forbidden(c *gin.Context) {
	response.Error[any](c, http.StatusForbidden, "not the resource owner", nil)
}
