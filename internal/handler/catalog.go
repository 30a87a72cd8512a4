package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yjsong/item-simulator/internal/catalog"
	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/logger"
)

type CreateItemRequest struct {
	Name             string           `json:"name" validate:"required,max=100"`
	Description      string           `json:"description,omitempty" validate:"max=500"`
	Price            int              `json:"price" validate:"required,min=0"`
	Stats            domain.StatBlock `json:"stats"`
	MountingLocation string           `json:"mountingLocation" validate:"required,mountinglocation"`
}

type CreateSkinRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	ImgURL      string `json:"imgurl,omitempty" validate:"omitempty,url"`
}

func itemIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "itemId"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func skinIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "skinId"))
	// Skin 0 is the default skin and addressable
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// HandleCreateItem adds an item to the catalog
// @Summary Create catalog item
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item definition"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /item [post]
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		item, err := svc.CreateItem(r.Context(), &domain.Item{
			Name:             req.Name,
			Description:      req.Description,
			Price:            req.Price,
			Stats:            req.Stats,
			MountingLocation: domain.MountingLocation(req.MountingLocation),
		})
		if err != nil {
			log.Error("Failed to create item", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		log.Info("Item created", "itemId", item.ID, "name", item.Name)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemCreated, Data: item})
	}
}

// HandleListItems lists the item catalog
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items, err := svc.ListItems(r.Context())
		if err != nil {
			log.Error("Failed to list items", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetItem returns one catalog item
// @Summary Get catalog item
// @Tags catalog
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /item/{itemId} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := itemIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		item, err := svc.GetItemByID(r.Context(), id)
		if err != nil {
			log.Error("Failed to get item", "error", err, "itemId", id)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}

// HandleUpdateItem applies a partial catalog item update
// @Summary Update catalog item
// @Tags catalog
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param request body catalog.ItemPatch true "Fields to update"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /item/{itemId} [patch]
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := itemIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		var patch catalog.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Error("Failed to decode update item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		item, err := svc.UpdateItem(r.Context(), id, patch)
		if err != nil {
			log.Error("Failed to update item", "error", err, "itemId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Item updated", "itemId", id)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemUpdated, Data: item})
	}
}

// HandleDeleteItem removes an item from the catalog
// @Summary Delete catalog item
// @Tags catalog
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /item/{itemId} [delete]
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := itemIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		if err := svc.DeleteItem(r.Context(), id); err != nil {
			log.Error("Failed to delete item", "error", err, "itemId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Item deleted", "itemId", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

// HandleCreateSkin adds a skin to the catalog
// @Summary Create skin
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateSkinRequest true "Skin definition"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /skin [post]
func HandleCreateSkin(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateSkinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create skin request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create skin request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		skin, err := svc.CreateSkin(r.Context(), &domain.Skin{
			Name:        req.Name,
			Description: req.Description,
			ImgURL:      req.ImgURL,
		})
		if err != nil {
			log.Error("Failed to create skin", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		log.Info("Skin created", "skinId", skin.ID, "name", skin.Name)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgSkinCreated, Data: skin})
	}
}

// HandleListSkins lists all skins
// @Summary List skins
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /skins [get]
func HandleListSkins(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		skins, err := svc.ListSkins(r.Context())
		if err != nil {
			log.Error("Failed to list skins", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: skins})
	}
}

// HandleGetSkin returns one skin
// @Summary Get skin
// @Tags catalog
// @Produce json
// @Param skinId path int true "Skin ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /skin/{skinId} [get]
func HandleGetSkin(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := skinIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSkinID)
			return
		}

		skin, err := svc.GetSkinByID(r.Context(), id)
		if err != nil {
			log.Error("Failed to get skin", "error", err, "skinId", id)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: skin})
	}
}

// HandleUpdateSkin applies a partial skin update
// @Summary Update skin
// @Tags catalog
// @Accept json
// @Produce json
// @Param skinId path int true "Skin ID"
// @Param request body catalog.SkinPatch true "Fields to update"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /skin/{skinId} [patch]
func HandleUpdateSkin(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := skinIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSkinID)
			return
		}

		var patch catalog.SkinPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Error("Failed to decode update skin request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		skin, err := svc.UpdateSkin(r.Context(), id, patch)
		if err != nil {
			log.Error("Failed to update skin", "error", err, "skinId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Skin updated", "skinId", id)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSkinUpdated, Data: skin})
	}
}

// HandleDeleteSkin removes a skin; the default skin cannot be deleted
// @Summary Delete skin
// @Tags catalog
// @Produce json
// @Param skinId path int true "Skin ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /skin/{skinId} [delete]
func HandleDeleteSkin(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := skinIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSkinID)
			return
		}

		if err := svc.DeleteSkin(r.Context(), id); err != nil {
			log.Error("Failed to delete skin", "error", err, "skinId", id)
			respondServiceError(w, err)
			return
		}

		log.Info("Skin deleted", "skinId", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSkinDeleted})
	}
}
