package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/pkg/response"
	"github.com/qaboard/qa-backend/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type profileNewRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
}

type profileFieldRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// Image travels base64-encoded in JSON; []byte unmarshals it transparently.
type profileImageRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Image []byte `json:"image" binding:"required"`
}

type profileReputationRequest struct {
	ID    int64 `json:"id" binding:"required"`
	Delta int64 `json:"delta" binding:"required"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.FindProfile(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

// Me resolves the caller's own profile from the verified subject.
func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.Svc.FindProfileByUserID(c.Request.Context(), subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

func (h *ProfileHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	profiles, err := h.Svc.ListProfiles(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profiles, "profiles", map[string]any{"limit": limit, "offset": offset})
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req profileNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !application.Authorize(subject(c), req.UserID) {
		forbidden(c)
		return
	}
	p, err := h.Svc.CreateProfile(c.Request.Context(), req.UserID, req.FirstName, req.LastName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "profile created", nil)
}

func (h *ProfileHandler) UpdateFirstName(c *gin.Context) {
	h.updateField(c, h.Svc.UpdateFirstName, "first name updated")
}

func (h *ProfileHandler) UpdateLastName(c *gin.Context) {
	h.updateField(c, h.Svc.UpdateLastName, "last name updated")
}

func (h *ProfileHandler) UpdateDescription(c *gin.Context) {
	h.updateField(c, h.Svc.UpdateDescription, "description updated")
}

// updateField handles the common single-field updates: bind, ownership check
// against the stored profile, then delegate.
func (h *ProfileHandler) updateField(c *gin.Context, update func(context.Context, int64, string) (*entity.Profile, error), msg string) {
	var req profileFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !h.ownerGate(c, req.ID) {
		return
	}
	p, err := update(c.Request.Context(), req.ID, req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}

func (h *ProfileHandler) UpdateImage(c *gin.Context) {
	var req profileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !h.ownerGate(c, req.ID) {
		return
	}
	p, err := h.Svc.UpdateImage(c.Request.Context(), req.ID, req.Image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "image updated", nil)
}

func (h *ProfileHandler) UpdateReputation(c *gin.Context) {
	var req profileReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !h.ownerGate(c, req.ID) {
		return
	}
	reputation, err := h.Svc.UpdateReputation(c.Request.Context(), req.ID, req.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reputation, "reputation updated", nil)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !h.ownerGate(c, id) {
		return
	}
	if err := h.Svc.RemoveProfile(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "profile deleted", nil)
}

// ownerGate loads the profile and verifies the caller owns it. It writes the
// response on failure and reports whether the handler may continue.
func (h *ProfileHandler) ownerGate(c *gin.Context, id int64) bool {
	p, err := h.Svc.FindProfile(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return false
	}
	if !application.Authorize(subject(c), p.UserID) {
		forbidden(c)
		return false
	}
	return true
}
