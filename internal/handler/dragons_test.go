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
	"github.com/osse101/DragonKeeper_Go/internal/dragon"
)

func emberResult(hunger int) *dragon.CareResult {
	return &dragon.CareResult{
		View: dragon.View{
			Dragon:  domain.Dragon{UserID: testUserID, SpeciesID: 7, BondLevel: 1, Hunger: hunger, Happiness: 60},
			Species: domain.Species{ID: 7, Name: "Ember", Rarity: "common"},
		},
		Inventory: map[domain.ItemType]int{domain.ItemFood: 1, domain.ItemToy: 2},
	}
}

func TestDragonHandler_MyDragons(t *testing.T) {
	rend := newTestRenderer(t)

	t.Run("no dragons yet", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("ListDragons", mock.Anything, testUserID).Return([]dragon.View{}, nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).MyDragons(w, asUser(httptest.NewRequest(http.MethodGet, "/mydragons", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), html.EscapeString(MsgNoDragonsYet))
	})

	t.Run("lists owned dragons", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("ListDragons", mock.Anything, testUserID).Return([]dragon.View{emberResult(80).View}, nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).MyDragons(w, asUser(httptest.NewRequest(http.MethodGet, "/mydragons", nil)))

		assert.Contains(t, w.Body.String(), "Ember")
		assert.NotContains(t, w.Body.String(), html.EscapeString(MsgNoDragonsYet))
	})
}

func TestDragonHandler_CarePage(t *testing.T) {
	rend := newTestRenderer(t)

	t.Run("missing name goes back to the list", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewDragonHandler(new(MockDragonService), rend).CarePage(w, asUser(httptest.NewRequest(http.MethodGet, "/carefor", nil)))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/mydragons", w.Header().Get("Location"))
	})

	t.Run("dragon not owned is a 404", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("GetDragon", mock.Anything, testUserID, "Frost").Return(nil, domain.ErrDragonNotFound)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).CarePage(w, asUser(httptest.NewRequest(http.MethodGet, "/carefor?dragon=Frost", nil)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("shows vitals and supplies", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("GetDragon", mock.Anything, testUserID, "Ember").Return(emberResult(42), nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).CarePage(w, asUser(httptest.NewRequest(http.MethodGet, "/carefor?dragon=Ember", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Care for Ember")
		assert.Contains(t, w.Body.String(), "Food: 1")
		assert.Contains(t, w.Body.String(), "Toys: 2")
	})
}

func TestDragonHandler_Care(t *testing.T) {
	rend := newTestRenderer(t)

	t.Run("feed", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("Care", mock.Anything, testUserID, "Ember", dragon.ActionFeed).Return(emberResult(62), nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).Care(w, asUser(formRequest("/carefor", url.Values{"dragon": {"Ember"}, "action": {"feed"}})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), careNotice(dragon.ActionFeed))
	})

	t.Run("no food re-renders current state", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("Care", mock.Anything, testUserID, "Ember", dragon.ActionFeed).Return(nil, domain.ErrNoFood)
		svc.On("GetDragon", mock.Anything, testUserID, "Ember").Return(emberResult(42), nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).Care(w, asUser(formRequest("/carefor", url.Values{"dragon": {"Ember"}, "action": {"feed"}})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), html.EscapeString(capitalize(domain.ErrNoFood.Error())))
		svc.AssertExpectations(t)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := new(MockDragonService)
		svc.On("GetDragon", mock.Anything, testUserID, "Ember").Return(emberResult(42), nil)

		w := httptest.NewRecorder()
		NewDragonHandler(svc, rend).Care(w, asUser(formRequest("/carefor", url.Values{"dragon": {"Ember"}, "action": {"pet"}})))

		assert.Contains(t, w.Body.String(), "Unknown care action")
		svc.AssertNotCalled(t, "Care", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
