package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/shop"
)

type TradeRequest struct {
	ItemID int `json:"itemId" validate:"required,min=1"`
	Count  int `json:"count" validate:"required,min=1,max=10000"`
}

// HandlePurchase buys items from the shop at catalog price
// @Summary Purchase items
// @Description Buy count copies of an item, deducting price*count gold
// @Tags shop
// @Accept json
// @Produce json
// @Param characterId path int true "Character ID"
// @Param request body TradeRequest true "Item and count"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/purchase/{characterId} [patch]
func HandlePurchase(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode purchase request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid purchase request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		result, err := svc.Purchase(r.Context(), id, req.ItemID, req.Count)
		if err != nil {
			log.Error("Failed to purchase item", "error", err, "characterId", id, "itemId", req.ItemID)
			respondServiceError(w, err)
			return
		}

		log.Info("Item purchased",
			"characterId", id,
			"itemId", req.ItemID,
			"count", req.Count,
			"gold", result.Gold)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemPurchased, Data: result})
	}
}

// HandleSell sells items back to the shop at the reduced rate
// @Summary Sell items
// @Description Sell count copies of an item for 60% of catalog price
// @Tags shop
// @Accept json
// @Produce json
// @Param characterId path int true "Character ID"
// @Param request body TradeRequest true "Item and count"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/sell/{characterId} [delete]
func HandleSell(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		result, err := svc.Sell(r.Context(), id, req.ItemID, req.Count)
		if err != nil {
			log.Error("Failed to sell item", "error", err, "characterId", id, "itemId", req.ItemID)
			respondServiceError(w, err)
			return
		}

		log.Info("Item sold",
			"characterId", id,
			"itemId", req.ItemID,
			"count", req.Count,
			"gold", result.Gold)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemSold, Data: result})
	}
}
