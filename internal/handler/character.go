package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yjsong/item-simulator/internal/character"
	"github.com/yjsong/item-simulator/internal/logger"
)

type CreateCharacterRequest struct {
	Name   string `json:"name" validate:"required,max=50"`
	SkinID *int   `json:"skinId,omitempty" validate:"omitempty,min=0"`
}

type UpdateCharacterRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=50"`
	SkinID *int    `json:"skinId,omitempty" validate:"omitempty,min=0"`
}

// characterIDParam parses the characterId path parameter
func characterIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "characterId"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// HandleCreateCharacter creates a character with starter items and gold
// @Summary Create character
// @Description Create a new character with default stats, starting gold and starter items
// @Tags character
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /character [post]
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCharacterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		char, err := svc.Create(r.Context(), req.Name, req.SkinID)
		if err != nil {
			log.Error("Failed to create character", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		log.Info("Character created", "characterId", char.ID, "name", char.Name)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgCharacterCreated, Data: char})
	}
}

// HandleListCharacters lists all characters
// @Summary List characters
// @Tags character
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /character [get]
func HandleListCharacters(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		chars, err := svc.List(r.Context())
		if err != nil {
			log.Error("Failed to list characters", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: chars})
	}
}

// HandleGetCharacter returns one character with its equipment and inventory
// @Summary Get character detail
// @Tags character
// @Produce json
// @Param characterId path int true "Character ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /character/{characterId} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		detail, err := svc.Get(r.Context(), id)
		if err != nil {
			log.Error("Failed to get character", "error", err, "characterId", id)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: detail})
	}
}

// HandleUpdateCharacter renames or reskins a character
// @Summary Update character
// @Tags character
// @Accept json
// @Produce json
// @Param characterId path int true "Character ID"
// @Param request body UpdateCharacterRequest true "Fields to update"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /character/{characterId} [patch]
func HandleUpdateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		var req UpdateCharacterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode update character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if req.Name == nil && req.SkinID == nil {
			respondError(w, http.StatusBadRequest, ErrMsgNothingToUpdate)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid update character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		char, err := svc.Update(r.Context(), id, req.Name, req.SkinID)
		if err != nil {
			log.Error("Failed to update character", "error", err, "characterId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Character updated", "characterId", id)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgCharacterUpdated, Data: char})
	}
}

// HandleDeleteCharacter deletes a character and its inventory
// @Summary Delete character
// @Tags character
// @Produce json
// @Param characterId path int true "Character ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /character/{characterId} [delete]
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			log.Error("Failed to delete character", "error", err, "characterId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Character deleted", "characterId", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}
