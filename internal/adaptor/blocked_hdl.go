package adaptor

import (
	"encoding/json"
	"net/http"

	"studio-booking/internal/dto/request"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlockedSlotHandler struct {
	service usecase.BlockedSlotService
	log     *zap.Logger
}

func NewBlockedSlotHandler(service usecase.BlockedSlotService, log *zap.Logger) *BlockedSlotHandler {
	return &BlockedSlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "blocked_slot")),
	}
}

// ListBlockedSlots handles GET /api/admin/blocked (admin only)
func (h *BlockedSlotHandler) ListBlockedSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list blocked slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateBlockedSlot handles POST /api/admin/blocked (admin only)
func (h *BlockedSlotHandler) CreateBlockedSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlockedSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create blocked slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// DeleteBlockedSlot handles DELETE /api/admin/blocked/{id} (admin only)
func (h *BlockedSlotHandler) DeleteBlockedSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Blocked slot ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		respondServiceError(w, h.log, err, "delete blocked slot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
