package handler

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/economy"
)

func testStorefront() *economy.Storefront {
	return &economy.Storefront{
		Items:     economy.Catalog(),
		Balance:   120,
		Inventory: map[domain.ItemType]int{domain.ItemFood: 2},
	}
}

func TestStoreHandler_Store(t *testing.T) {
	svc := new(MockEconomyService)
	svc.On("Storefront", mock.Anything, testUserID).Return(testStorefront(), nil)
	h := NewStoreHandler(svc, newTestRenderer(t))

	w := httptest.NewRecorder()
	h.Store(w, asUser(httptest.NewRequest(http.MethodGet, "/store", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Balance: 120 coins")
	assert.Contains(t, w.Body.String(), "Medicine")
}

func TestStoreHandler_Trade(t *testing.T) {
	rend := newTestRenderer(t)

	t.Run("buy shows a receipt", func(t *testing.T) {
		svc := new(MockEconomyService)
		svc.On("Trade", mock.Anything, testUserID, economy.ActionBuy, domain.ItemFood).
			Return(&economy.Receipt{Action: economy.ActionBuy, Item: domain.ItemFood, Price: 5, Balance: 115, Quantity: 3}, nil)
		svc.On("Storefront", mock.Anything, testUserID).Return(testStorefront(), nil)
		h := NewStoreHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Trade(w, asUser(formRequest("/store", url.Values{"item_id": {"food"}, "action": {"buy"}})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bought one food for 5 coins. You now have 115 coins.")
		svc.AssertExpectations(t)
	})

	t.Run("unknown item is a 404", func(t *testing.T) {
		svc := new(MockEconomyService)
		h := NewStoreHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Trade(w, asUser(formRequest("/store", url.Values{"item_id": {"sword"}, "action": {"buy"}})))

		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "Trade", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not enough coins re-renders with a notice", func(t *testing.T) {
		svc := new(MockEconomyService)
		svc.On("Trade", mock.Anything, testUserID, economy.ActionBuy, domain.ItemEgg).Return(nil, domain.ErrInsufficientFunds)
		svc.On("Storefront", mock.Anything, testUserID).Return(testStorefront(), nil)
		h := NewStoreHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Trade(w, asUser(formRequest("/store", url.Values{"item_id": {"egg"}, "action": {"buy"}})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), html.EscapeString(ErrMsgNotEnoughCoins))
	})

	t.Run("bad action keeps the page", func(t *testing.T) {
		svc := new(MockEconomyService)
		svc.On("Storefront", mock.Anything, testUserID).Return(testStorefront(), nil)
		h := NewStoreHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Trade(w, asUser(formRequest("/store", url.Values{"item_id": {"egg"}, "action": {"steal"}})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Choose buy or sell")
		svc.AssertNotCalled(t, "Trade", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
