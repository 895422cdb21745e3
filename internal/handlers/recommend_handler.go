package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/logger"
	"github.com/f1rstwash/booking-api/internal/recommend"
)

const recommendTimeout = 10 * time.Second

type RecommendHandler struct {
	recommender recommend.Recommender
}

// NewRecommendHandler accepts a nil recommender; every request then gets
// the static fallback copy.
func NewRecommendHandler(recommender recommend.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

type RecommendRequest struct {
	CarType   string `json:"carType"`
	Condition string `json:"condition"`
	LastWash  string `json:"lastWash"`
	Lang      string `json:"lang"`
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	if req.CarType == "" || req.Condition == "" || req.LastWash == "" {
		httperr.BadRequest(c, "Missing fields.")
		return
	}

	lang := req.Lang
	if lang != "en" {
		lang = "de"
	}

	if h.recommender == nil {
		c.JSON(http.StatusOK, gin.H{"recommendation": recommend.Fallback(lang)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recommendTimeout)
	defer cancel()

	text, err := h.recommender.Recommend(ctx, req.CarType, req.Condition, req.LastWash, lang)
	if err != nil {
		logger.L().Warn("recommendation generation failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"recommendation": recommend.Fallback(lang)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": text})
}
