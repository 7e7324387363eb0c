package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/pkg/response"
	"github.com/qaboard/qa-backend/pkg/validation"
)

// tokenIssuer is the slice of helpers.JWTManager the handler needs.
type tokenIssuer interface {
	GenerateAccessToken(userID string) (string, time.Time, error)
	GenerateRefreshToken(userID string) (string, time.Time, error)
	ParseRefreshToken(token string) (string, error)
}

// TokenHandler mints token pairs for a given subject. Identity verification
// is an external concern; this endpoint stands in for the IdP in development
// and is not registered in production.
type TokenHandler struct {
	JWT    tokenIssuer
	Logger *logrus.Logger
}

func NewTokenHandler(jwt tokenIssuer, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{JWT: jwt, Logger: logger}
}

type tokenRequest struct {
	Subject string `json:"subject" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenPairResponse struct {
	AccessToken   string    `json:"access_token"`
	AccessExpiry  time.Time `json:"access_expires_at"`
	RefreshToken  string    `json:"refresh_token"`
	RefreshExpiry time.Time `json:"refresh_expires_at"`
}

func (h *TokenHandler) Issue(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pair, err := h.issuePair(req.Subject)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("token generation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	response.Success(c, http.StatusOK, pair, "token issued", nil)
}

func (h *TokenHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sub, err := h.JWT.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	pair, err := h.issuePair(sub)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("token generation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	response.Success(c, http.StatusOK, pair, "token refreshed", nil)
}

func (h *TokenHandler) issuePair(subject string) (*tokenPairResponse, error) {
	access, aexp, err := h.JWT.GenerateAccessToken(subject)
	if err != nil {
		return nil, err
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(subject)
	if err != nil {
		return nil, err
	}
	return &tokenPairResponse{
		AccessToken:   access,
		AccessExpiry:  aexp,
		RefreshToken:  refresh,
		RefreshExpiry: rexp,
	}, nil
}
