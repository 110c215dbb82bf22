package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
	"github.com/yourusername/customs-ai-bot/internal/usecase"
)

// Handler exposes the assistant over the JSON API used by the web chat.
type Handler struct {
	assist  usecase.AssistUseCase
	catalog repository.CatalogRepository
	log     *zap.Logger
}

func NewHandler(assist usecase.AssistUseCase, catalog repository.CatalogRepository, log *zap.Logger) *Handler {
	return &Handler{assist: assist, catalog: catalog, log: log}
}

type assistRequest struct {
	SessionID string         `json:"sessionId"`
	Text      string         `json:"text"`
	Slots     entity.SlotSet `json:"slots"`
}

type assistResponse struct {
	SessionID string `json:"sessionId"`
	entity.Reply
}

// Assist handles one dialogue turn. A missing sessionId opens a new session;
// the returned sessionId must be echoed back on the next turn.
func (h *Handler) Assist(c *gin.Context) {
	var req assistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.New().String()
	}

	reply, err := h.assist.Advance(c.Request.Context(), req.SessionID, req.Text, req.Slots)
	if err != nil {
		h.log.Error("assist turn failed", zap.String("session", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, assistResponse{SessionID: req.SessionID, Reply: reply})
}

type askRequest struct {
	Q string `json:"q"`
}

// Ask answers a single question without a session, pricing one unit of the
// matched item.
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Q) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	reply, err := h.assist.Ask(c.Request.Context(), req.Q)
	if err != nil {
		h.log.Error("ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Ping reports liveness and the size of the loaded catalog.
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"items": h.catalog.Count(c.Request.Context()),
	})
}
