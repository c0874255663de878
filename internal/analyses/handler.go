package analyses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowcheck-backend/internal/labels"
	"glowcheck-backend/internal/scoring"
	"glowcheck-backend/internal/shared/server/middleware"
	"glowcheck-backend/internal/shared/server/respond"
	"glowcheck-backend/internal/usage"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
}

type createAnalysisRequest struct {
	ProductName string             `json:"productName"`
	Brand       string             `json:"brand"`
	BrandInfo   *scoring.BrandInfo `json:"brandInfo"`
	Price       float64            `json:"price"`
	Mode        string             `json:"mode"`
	Ingredients []string           `json:"ingredients"`
	LabelID     string             `json:"labelId"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.Create(ctx, userID, CreateInput{
		ProductName: req.ProductName,
		Brand:       req.Brand,
		BrandInfo:   req.BrandInfo,
		Price:       req.Price,
		Mode:        req.Mode,
		Ingredients: req.Ingredients,
		LabelID:     req.LabelID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, labels.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "label document not found", nil)
		case errors.Is(err, labels.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your analysis limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"analysisId": analysis.ID,
		"status":     analysis.Status,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")

	analysis, err := h.Svc.Get(c.Request.Context(), userID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	resp := gin.H{
		"id":          analysis.ID,
		"productName": analysis.ProductName,
		"mode":        analysis.Mode,
		"status":      analysis.Status,
		"createdAt":   analysis.CreatedAt,
	}
	switch analysis.Status {
	case StatusCompleted:
		resp["result"] = analysis.Result
		if analysis.Insight != "" {
			resp["insight"] = analysis.Insight
		}
	case StatusFailed:
		resp["error"] = analysis.Error
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	analyses, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]gin.H, 0, len(analyses))
	for _, a := range analyses {
		item := gin.H{
			"analysisId":  a.ID,
			"productName": a.ProductName,
			"mode":        a.Mode,
			"status":      a.Status,
			"createdAt":   a.CreatedAt,
		}
		if a.Status == StatusCompleted && a.Result != nil {
			switch {
			case a.Result.Advanced != nil:
				item["overall"] = a.Result.Advanced.Overall
				item["recommendation"] = a.Result.Advanced.Recommendation
			case a.Result.Score != nil:
				item["overall"] = a.Result.Score.Overall
				item["recommendation"] = a.Result.Score.Recommendation
			}
		}
		resp = append(resp, item)
	}

	respond.JSON(c, http.StatusOK, resp)
}
