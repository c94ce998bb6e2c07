package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/middleware"
	"github.com/pitelleadami/ChirinIvatan/internal/mocks"
)

func newEntryRouter(handler *EntryHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/v1/entries", handler.ListEntries)
	router.GET("/api/v1/entries/:id", handler.GetEntry)

	authed := router.Group("/api/v1", middleware.Identity())
	authed.GET("/contributions", handler.MyContributions)
	return router
}

func publicDictionaryEntry() *domain.PublicEntry {
	now := time.Now()
	return &domain.PublicEntry{
		EntryID: uuid.New().String(),
		Kind:    domain.KindDictionary,
		Status:  domain.EntryStatusPublished,
		Content: domain.Content{
			Dictionary: &domain.DictionaryContent{
				Term:    "vakul",
				Meaning: "woven headgear against sun and rain",
				Variant: "ivasay",
			},
		},
		Source:    domain.HiddenProvenance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestEntryHandler_GetEntry(t *testing.T) {
	t.Run("returns masked entry", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		expected := publicDictionaryEntry()
		mockService.EXPECT().
			GetPublic(mock.Anything, expected.EntryID).
			Return(expected, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/"+expected.EntryID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response domain.PublicEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, expected.EntryID, response.EntryID)
		assert.Equal(t, domain.HiddenProvenance, response.Source)
	})

	t.Run("returns error for invalid UUID", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/not-a-uuid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "id must be a valid UUID")
	})

	t.Run("maps missing entry to 404", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		id := uuid.New().String()
		mockService.EXPECT().
			GetPublic(mock.Anything, id).
			Return(nil, domain.NewError(domain.KindNotFound, "entry not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEntryHandler_ListEntries(t *testing.T) {
	t.Run("returns entries filtered by kind", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		expected := publicDictionaryEntry()
		mockService.EXPECT().
			ListPublic(mock.Anything, "dictionary").
			Return([]domain.PublicEntry{*expected}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries?kind=dictionary", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Entries []domain.PublicEntry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Entries, 1)
		assert.Equal(t, "vakul", response.Entries[0].Content.Dictionary.Term)
	})

	t.Run("maps unknown kind to 400", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		mockService.EXPECT().
			ListPublic(mock.Anything, "recipe").
			Return(nil, domain.NewError(domain.KindValidation, "unknown content kind"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries?kind=recipe", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("serves anonymous readers", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		mockService.EXPECT().
			ListPublic(mock.Anything, "").
			Return([]domain.PublicEntry{}, nil)

		// No identity headers on purpose.
		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEntryHandler_MyContributions(t *testing.T) {
	t.Run("returns contribution summary", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		summary := &domain.ContributionSummary{
			DictionaryTerms: 3,
			FolkloreEntries: 1,
			Revisions:       2,
			Total:           6,
		}
		mockService.EXPECT().
			MyContributions(mock.Anything, domain.Identity{UserID: "alice", Role: domain.RoleContributor}).
			Return(summary, nil)

		req := asContributor(httptest.NewRequest(http.MethodGet, "/api/v1/contributions", nil))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response domain.ContributionSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.DictionaryTerms)
		assert.Equal(t, 6, response.Total)
	})

	t.Run("requires identity", func(t *testing.T) {
		mockService := mocks.NewMockEntryServiceInterface(t)
		router := newEntryRouter(NewEntryHandler(mockService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contributions", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
