package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/infrastructure/catalog"
	"github.com/laptopfinder/backend/internal/logging"
	"github.com/laptopfinder/backend/internal/usecase"
	"github.com/laptopfinder/backend/internal/validation"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

const noMatchMessage = "No laptops match these criteria, even with a slightly higher budget. " +
	"Try raising the budget or relaxing the requirements."

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chatService *usecase.ChatService
	engine      *usecase.RecommendationEngine
	extractor   *usecase.PreferenceExtractor
	catalog     *catalog.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(
	chatService *usecase.ChatService,
	engine *usecase.RecommendationEngine,
	extractor *usecase.PreferenceExtractor,
	store *catalog.Store,
) *Handler {
	return &Handler{
		chatService: chatService,
		engine:      engine,
		extractor:   extractor,
		catalog:     store,
	}
}

// ChatRequest is the body of POST /api/v1/chat
type ChatRequest struct {
	Message        string `json:"message" validate:"required,min=1,max=2000"`
	ConversationID string `json:"conversation_id" validate:"omitempty,max=128"`
}

// RecommendRequest is the body of POST /api/v1/recommendations
type RecommendRequest struct {
	Budget          float64 `json:"budget" validate:"gt=0"`
	UseCategory     string  `json:"use_category" validate:"omitempty,oneof=gaming business student creative programming general"`
	BrandPreference string  `json:"brand_preference" validate:"omitempty,max=64"`
	MinRAMGB        *int    `json:"min_ram" validate:"omitempty,min=4"`
	MinStorageGB    *int    `json:"min_storage" validate:"omitempty,min=128"`
	PreferGPU       bool    `json:"prefer_gpu"`
	Limit           int     `json:"limit" validate:"omitempty,min=1,max=50"`
}

// ExtractRequest is the body of POST /api/v1/extract
type ExtractRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// RecommendResponse is returned by POST /api/v1/recommendations
type RecommendResponse struct {
	Recommendations []domain.ScoredProduct `json:"recommendations"`
	Count           int                    `json:"count"`
	Relaxed         bool                   `json:"relaxed"`
	Message         string                 `json:"message,omitempty"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "laptopfinder-backend",
		"version":  "1.0.0",
		"products": h.catalog.Len(),
	})
}

// Chat handles one conversational turn
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if !bindAndValidate(c, &req) {
		return
	}

	reply, err := h.chatService.HandleMessage(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// Recommend runs the engine on an explicit preference record
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category := domain.UseGeneral
	if req.UseCategory != "" {
		category = domain.UseCategory(req.UseCategory)
	}

	rec := h.engine.Recommend(domain.RecommendRequest{
		Budget:          req.Budget,
		UseCategory:     category,
		BrandPreference: req.BrandPreference,
		MinRAMGB:        req.MinRAMGB,
		MinStorageGB:    req.MinStorageGB,
		PreferGPU:       req.PreferGPU,
		Limit:           req.Limit,
	})

	resp := RecommendResponse{
		Recommendations: rec.Items,
		Count:           len(rec.Items),
		Relaxed:         rec.Relaxed,
	}
	if len(rec.Items) == 0 {
		resp.Message = noMatchMessage
	}

	c.JSON(http.StatusOK, resp)
}

// Extract returns the preferences found in a single utterance
func (h *Handler) Extract(c *gin.Context) {
	var req ExtractRequest
	if !bindAndValidate(c, &req) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preferences": h.extractor.Extract(req.Message),
		"is_greeting": h.extractor.IsGreeting(req.Message),
	})
}

// ListLaptops lists catalog products, optionally filtered by brand
func (h *Handler) ListLaptops(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = clamp(n, 1, maxListLimit)
	}

	laptops := h.catalog.FilterByBrand(c.Query("brand"), limit)
	c.JSON(http.StatusOK, gin.H{
		"laptops": laptops,
		"count":   len(laptops),
	})
}

// GetLaptop returns one product by id
func (h *Handler) GetLaptop(c *gin.Context) {
	product, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		respondError(c, domain.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListBrands returns the distinct catalog brands
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.catalog.Brands()})
}

// ListUseCategories returns every use category with its requirement profile
func (h *Handler) ListUseCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"use_categories": usecase.Profiles()})
}

// ConversationHistory returns the transcript and preferences of a conversation
func (h *Handler) ConversationHistory(c *gin.Context) {
	conv, err := h.chatService.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	messages := conv.Messages
	if messages == nil {
		messages = []domain.Message{}
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": conv.ID,
		"stage":           conv.Stage,
		"preferences":     conv.Preferences,
		"messages":        messages,
	})
}

// EndConversation discards a conversation
func (h *Handler) EndConversation(c *gin.Context) {
	if err := h.chatService.EndConversation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindAndValidate decodes the JSON body and runs struct validation.
// It writes a 400 response and returns false on failure.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return false
	}

	if err := validation.ValidateStruct(req); err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   verr.Error(),
				"details": verr.Fields,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrConversationNotFound), errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSessionUnavailable), errors.Is(err, domain.ErrCatalogUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
