package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/equipment"
)

func TestHandleEquip(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockEquipmentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: EquipRequest{CharacterID: 1, ItemID: 2, MountingLocation: "모자"},
			setupMock: func(m *MockEquipmentService) {
				m.On("Equip", mock.Anything, 1, 2, domain.SlotHat).Return(&equipment.EquipResult{
					CharacterID:      1,
					ItemID:           2,
					ItemName:         "강철 투구",
					MountingLocation: domain.SlotHat,
					Stats:            domain.StatBlock{HP: 500, Power: 100, Defense: 75, Speed: 30},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"itemName":"강철 투구"`,
		},
		{
			name:        "Omitted mounting location",
			requestBody: EquipRequest{CharacterID: 1, ItemID: 2},
			setupMock: func(m *MockEquipmentService) {
				m.On("Equip", mock.Anything, 1, 2, domain.MountingLocation("")).Return(&equipment.EquipResult{
					CharacterID:      1,
					ItemID:           2,
					MountingLocation: domain.SlotHat,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgItemEquipped,
		},
		{
			name:           "Unknown mounting location",
			requestBody:    EquipRequest{CharacterID: 1, ItemID: 2, MountingLocation: "신발"},
			setupMock:      func(m *MockEquipmentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
		{
			name:        "Slot mismatch",
			requestBody: EquipRequest{CharacterID: 1, ItemID: 2, MountingLocation: "로브"},
			setupMock: func(m *MockEquipmentService) {
				m.On("Equip", mock.Anything, 1, 2, domain.SlotRobe).Return(nil, domain.ErrSlotMismatch)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSlotMismatchError,
		},
		{
			name:        "Not in inventory",
			requestBody: EquipRequest{CharacterID: 1, ItemID: 2, MountingLocation: "모자"},
			setupMock: func(m *MockEquipmentService) {
				m.On("Equip", mock.Anything, 1, 2, domain.SlotHat).Return(nil, domain.ErrInsufficientInventory)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInsufficientItemsError,
		},
		{
			name:        "Unknown character",
			requestBody: EquipRequest{CharacterID: 9, ItemID: 2, MountingLocation: "모자"},
			setupMock: func(m *MockEquipmentService) {
				m.On("Equip", mock.Anything, 9, 2, domain.SlotHat).Return(nil, domain.ErrCharacterNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgCharacterNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEquipmentService)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/equip", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleEquip(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleUnequip(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockEquipmentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: UnequipRequest{CharacterID: 1, ItemID: 2},
			setupMock: func(m *MockEquipmentService) {
				m.On("Unequip", mock.Anything, 1, 2).Return(&equipment.UnequipResult{
					CharacterID: 1,
					ItemID:      2,
					Stats:       domain.StatBlock{HP: 500, Power: 100, Defense: 50, Speed: 30},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgItemUnequipped,
		},
		{
			name:        "Not equipped",
			requestBody: UnequipRequest{CharacterID: 1, ItemID: 2},
			setupMock: func(m *MockEquipmentService) {
				m.On("Unequip", mock.Anything, 1, 2).Return(nil, domain.ErrNotEquipped)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEquippedError,
		},
		{
			name:           "Missing item ID",
			requestBody:    UnequipRequest{CharacterID: 1},
			setupMock:      func(m *MockEquipmentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEquipmentService)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/unequip", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleUnequip(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
