package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/cube-packer/internal/packing"
	"github.com/eugenenazirov/cube-packer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires packing and storage dependencies into HTTP handlers.
type Handler struct {
	packer  packing.Packer
	storage storage.Storage

	clock func() time.Time

	mu                 sync.RWMutex
	containerUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(packer packing.Packer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:  packer,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.containerUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetContainer(w http.ResponseWriter, r *http.Request) {
	_ = r
	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := containerResponse{
		Length:    settings.Length,
		Width:     settings.Width,
		Height:    settings.Height,
		Order:     settings.Order.String(),
		UpdatedAt: h.currentContainerUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutContainer(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	order := packing.Ascending
	if req.Order != "" {
		parsed, err := packing.ParseSortOrder(req.Order)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sort order", err.Error())
			return
		}
		order = parsed
	}

	settings := storage.Settings{
		Length: req.Length,
		Width:  req.Width,
		Height: req.Height,
		Order:  order,
	}
	if err := h.storage.SetSettings(settings); err != nil {
		if errors.Is(err, storage.ErrInvalidDimensions) {
			writeError(w, http.StatusBadRequest, "Invalid container", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markContainerUpdated()

	resp := containerResponse{
		Length:    settings.Length,
		Width:     settings.Width,
		Height:    settings.Height,
		Order:     settings.Order.String(),
		UpdatedAt: h.currentContainerUpdatedAt(),
		Message:   "Container settings updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	length, width, height := req.Length, req.Width, req.Height
	if length == 0 && width == 0 && height == 0 {
		length, width, height = settings.Length, settings.Width, settings.Height
	}

	order := settings.Order
	if req.Order != "" {
		parsed, err := packing.ParseSortOrder(req.Order)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sort order", err.Error())
			return
		}
		order = parsed
	}

	box, err := packing.NewContainer(length, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid container", err.Error())
		return
	}

	cubes, err := packing.BuildCubes(req.CubeCounts, order)
	if err != nil {
		switch {
		case errors.Is(err, packing.ErrInvalidCubeCounts), errors.Is(err, packing.ErrDescriptorTooLarge):
			writeError(w, http.StatusBadRequest, "Invalid cube counts", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	start := time.Now()
	result := h.packer.Pack(box, cubes)
	elapsed := time.Since(start)

	placed := box.Placed()
	placements := make([]placementInfo, 0, len(placed))
	for _, c := range placed {
		at, _ := c.Position()
		placements = append(placements, placementInfo{
			Dim: c.Dim(),
			X:   at.X,
			Y:   at.Y,
			Z:   at.Z,
		})
	}

	resp := packResponse{
		Length:          length,
		Width:           width,
		Height:          height,
		Order:           order.String(),
		ContainerVolume: box.Volume(),
		TotalCubes:      len(cubes),
		PlacedCubes:     result.PlacedCubes,
		FilledVolume:    result.FilledVolume,
		UnfilledVolume:  result.UnfilledVolume,
		FullyPacked:     result.UnfilledVolume == 0,
		PackTimeMs:      elapsed.Milliseconds(),
		Placements:      placements,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentContainerUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.containerUpdatedAt
}

func (h *Handler) markContainerUpdated() {
	h.mu.Lock()
	h.containerUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type containerRequest struct {
	Length int    `json:"length"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Order  string `json:"order,omitempty"`
}

type packRequest struct {
	Length     int    `json:"length"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CubeCounts []int  `json:"cubeCounts"`
	Order      string `json:"order,omitempty"`
}

type placementInfo struct {
	Dim int `json:"dim"`
	X   int `json:"x"`
	Y   int `json:"y"`
	Z   int `json:"z"`
}

type packResponse struct {
	Length          int             `json:"length"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	Order           string          `json:"order"`
	ContainerVolume int             `json:"containerVolume"`
	TotalCubes      int             `json:"totalCubes"`
	PlacedCubes     int             `json:"placedCubes"`
	FilledVolume    int             `json:"filledVolume"`
	UnfilledVolume  int             `json:"unfilledVolume"`
	FullyPacked     bool            `json:"fullyPacked"`
	PackTimeMs      int64           `json:"packTimeMs"`
	Placements      []placementInfo `json:"placements"`
}

type containerResponse struct {
	Length    int       `json:"length"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Order     string    `json:"order"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
