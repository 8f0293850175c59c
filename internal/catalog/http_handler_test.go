package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paperapi/internal/httpx"
	"paperapi/internal/paper"
	"paperapi/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("empty term never reaches the catalog", func(t *testing.T) {
		_, err := service.Search(context.Background(), "")
		assert.True(t, errors.Is(err, paper.ErrValidation))
		assert.True(t, errors.Is(err, ErrMissingQuery))
	})

	t.Run("no matches", func(t *testing.T) {
		mockRepo.EXPECT().Search("nlp").Return([]paper.Paper{})

		_, err := service.Search(context.Background(), "nlp")
		assert.True(t, errors.Is(err, paper.ErrNotFound))
	})

	t.Run("matches", func(t *testing.T) {
		mockRepo.EXPECT().Search("ai").Return([]paper.Paper{{ID: "1"}})

		papers, err := service.Search(context.Background(), "ai")
		require.NoError(t, err)
		assert.Len(t, papers, 1)
	})

	t.Run("get unknown id", func(t *testing.T) {
		mockRepo.EXPECT().Get("42").Return(paper.Paper{}, false)

		_, err := service.Get(context.Background(), "42")
		assert.True(t, errors.Is(err, paper.ErrNotFound))
	})
}

func TestHTTPHandler_List(t *testing.T) {
	handler := NewHTTPHandler(NewService(Default()))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/papers", nil)

	handler.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var papers []paper.Paper
	require.NoError(t, json.NewDecoder(w.Body).Decode(&papers))
	assert.Len(t, papers, 10)
}

func TestHTTPHandler_Search(t *testing.T) {
	handler := NewHTTPHandler(NewService(Default()))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedIDs    []string
		expectedMsg    string
	}{
		{
			name:           "citation count match",
			path:           "/api/search-papers?query=67",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"4"},
		},
		{
			name:           "title match",
			path:           "/api/search-papers?query=Processing",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"4"},
		},
		{
			name:           "missing query",
			path:           "/api/search-papers",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Query parameter is missing",
		},
		{
			name:           "empty query",
			path:           "/api/search-papers?query=",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Query parameter is missing",
		},
		{
			name:           "not found",
			path:           "/api/search-papers?query=nlp",
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No such article found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)

			handler.Search(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var papers []paper.Paper
				require.NoError(t, json.NewDecoder(w.Body).Decode(&papers))
				assert.Equal(t, tt.expectedIDs, testutil.PaperIDs(papers))
				return
			}
			var body httpx.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}
}
