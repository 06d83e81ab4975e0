package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/snowflake-service/internal/generator"
	"github.com/weiawesome/snowflake-service/internal/service"
	"github.com/weiawesome/snowflake-service/pkg/apperror"
	"github.com/weiawesome/snowflake-service/pkg/response"
)

// Handler handles HTTP requests for the id service.
type Handler struct {
	idService *service.IDService
}

// NewHandler creates a new HTTP handler.
func NewHandler(idService *service.IDService) *Handler {
	return &Handler{idService: idService}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.GET("", h.ListSchemes)
			ids.POST("/:scheme", h.GenerateID)
			ids.POST("/:scheme/batch", h.GenerateBatch)
			ids.GET("/:scheme/:id", h.ParseID)
			ids.GET("/:scheme/:id/validate", h.ValidateID)
		}
	}
}

type idResponse struct {
	ID string `json:"id"`
}

type batchResponse struct {
	IDs []string `json:"ids"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type parseResponse struct {
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`
	NodeID        *int64 `json:"node_id,omitempty"`
	Sequence      *int64 `json:"sequence,omitempty"`
	UUIDVersion   int32  `json:"uuid_version,omitempty"`
	UUIDVariant   string `json:"uuid_variant,omitempty"`
	RandomPayload string `json:"random_payload,omitempty"`
	IDLength      int32  `json:"id_length,omitempty"`
	Alphabet      string `json:"alphabet,omitempty"`
}

// ListSchemes returns the registered scheme names.
func (h *Handler) ListSchemes(c *gin.Context) {
	response.Success(c, gin.H{"schemes": h.idService.Schemes()})
}

// GenerateID issues one id.
func (h *Handler) GenerateID(c *gin.Context) {
	id, err := h.idService.Generate(c.Request.Context(), c.Param("scheme"))
	if err != nil {
		_ = c.Error(translate(err))
		return
	}
	response.Created(c, idResponse{ID: id})
}

// GenerateBatch issues ?count= ids (default 1).
func (h *Handler) GenerateBatch(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		_ = c.Error(apperror.BadRequest("count must be an integer", err))
		return
	}

	ids, err := h.idService.GenerateBatch(c.Request.Context(), c.Param("scheme"), count)
	if err != nil {
		_ = c.Error(translate(err))
		return
	}
	response.Created(c, batchResponse{IDs: ids})
}

// ValidateID reports whether :id is well formed for :scheme.
func (h *Handler) ValidateID(c *gin.Context) {
	valid, reason, err := h.idService.Validate(c.Request.Context(), c.Param("scheme"), c.Param("id"))
	if err != nil {
		_ = c.Error(translate(err))
		return
	}
	response.Success(c, validateResponse{Valid: valid, Reason: reason})
}

// ParseID decodes :id into its components.
func (h *Handler) ParseID(c *gin.Context) {
	scheme := c.Param("scheme")
	result, err := h.idService.Parse(c.Request.Context(), scheme, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownScheme) {
			_ = c.Error(translate(err))
			return
		}
		_ = c.Error(apperror.BadRequest(err.Error(), err))
		return
	}

	resp := parseResponse{
		TimestampMs:   result.TimestampMs,
		UUIDVersion:   result.UUIDVersion,
		UUIDVariant:   result.UUIDVariant,
		RandomPayload: result.RandomPayload,
		IDLength:      result.IDLength,
		Alphabet:      result.Alphabet,
	}
	// Node 0 and sequence 0 are meaningful for snowflake ids.
	if scheme == service.SchemeSnowflake {
		resp.NodeID = &result.NodeID
		resp.Sequence = &result.Sequence
	}
	response.Success(c, resp)
}

// translate maps service and generator errors onto HTTP errors.
func translate(err error) *apperror.Error {
	switch {
	case errors.Is(err, service.ErrUnknownScheme):
		return apperror.NotFound(err.Error(), err)
	case errors.Is(err, service.ErrInvalidCount):
		return apperror.BadRequest(err.Error(), err)
	case errors.Is(err, generator.ErrClockMovedBackwards):
		return apperror.Unavailable("clock moved backwards, retry later", err)
	case errors.Is(err, generator.ErrTimestampOutOfRange):
		return apperror.Unavailable("clock is outside the generator's timestamp range", err)
	default:
		return apperror.Internal("failed to generate id", err)
	}
}
