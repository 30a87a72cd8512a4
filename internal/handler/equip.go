package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/equipment"
	"github.com/yjsong/item-simulator/internal/logger"
)

type EquipRequest struct {
	CharacterID      int    `json:"characterId" validate:"required,min=1"`
	ItemID           int    `json:"itemId" validate:"required,min=1"`
	MountingLocation string `json:"mountingLocation,omitempty" validate:"omitempty,mountinglocation"`
}

type UnequipRequest struct {
	CharacterID int `json:"characterId" validate:"required,min=1"`
	ItemID      int `json:"itemId" validate:"required,min=1"`
}

// HandleEquip equips an item from the character's inventory
// @Summary Equip item
// @Description Equip an item into its mounting location, auto-unequipping any current occupant
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Equip details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /equip [post]
func HandleEquip(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		result, err := svc.Equip(r.Context(), req.CharacterID, req.ItemID, domain.MountingLocation(req.MountingLocation))
		if err != nil {
			log.Error("Failed to equip item", "error", err, "characterId", req.CharacterID, "itemId", req.ItemID)
			respondServiceError(w, err)
			return
		}

		log.Info("Item equipped",
			"characterId", req.CharacterID,
			"itemId", req.ItemID,
			"mountingLocation", result.MountingLocation)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemEquipped, Data: result})
	}
}

// HandleUnequip removes an equipped item back into the inventory
// @Summary Unequip item
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body UnequipRequest true "Unequip details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /unequip [post]
func HandleUnequip(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnequipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unequip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid unequip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		result, err := svc.Unequip(r.Context(), req.CharacterID, req.ItemID)
		if err != nil {
			log.Error("Failed to unequip item", "error", err, "characterId", req.CharacterID, "itemId", req.ItemID)
			respondServiceError(w, err)
			return
		}

		log.Info("Item unequipped", "characterId", req.CharacterID, "itemId", req.ItemID)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemUnequipped, Data: result})
	}
}
