package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glowcheck-backend/internal/shared/server/middleware"
	"glowcheck-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
	rg.DELETE("/profile", h.delete)
}

type putProfileRequest struct {
	SkinType    string   `json:"skinType"`
	Concerns    []string `json:"concerns"`
	Allergies   []string `json:"allergies"`
	Preferences []string `json:"preferences"`
	Age         int      `json:"age"`
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no skin profile yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, profile)
}

func (h *Handler) put(c *gin.Context) {
	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	profile := Profile{
		UserID:      middleware.UserIDFromContext(c),
		SkinType:    req.SkinType,
		Concerns:    req.Concerns,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
		Age:         req.Age,
	}
	saved, err := h.Svc.Save(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, ErrInvalidSkinType) {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "skinType must be one of oily, dry, combination, sensitive, normal", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no skin profile yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
