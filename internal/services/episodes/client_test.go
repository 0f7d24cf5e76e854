package episodes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEpisodeJSON = `{
	"id": "a-importancia-da-contribuicao-em-open-source",
	"title": "A importância da contribuição em Open Source",
	"members": "Diego Fernandes, João Pedro, Diego Schell Fernandes",
	"published_at": "2021-01-20 19:23:00",
	"thumbnail": "https://example.com/opensource.jpg",
	"description": "<p>Nesse episódio do Faladev</p>",
	"file": {
		"url": "https://example.com/opensource.m4a",
		"type": "audio/x-m4a",
		"duration": 3981
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL + "/", Timeout: 5 * time.Second})
}

func TestClient_ListEpisodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/episodes", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("_limit"))
		assert.Equal(t, "published_at", r.URL.Query().Get("_sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("_order"))
		assert.Equal(t, "Podcastr/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + sampleEpisodeJSON + "]"))
	})

	list, err := client.ListEpisodes(context.Background(), DefaultListParams(12))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, FlexString("a-importancia-da-contribuicao-em-open-source"), list[0].ID)
	assert.Equal(t, FlexInt(3981), list[0].File.Duration)
	assert.Equal(t, "https://example.com/opensource.m4a", list[0].File.URL)
}

func TestClient_GetEpisode(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
	}{
		{
			name:   "found",
			status: http.StatusOK,
			body:   sampleEpisodeJSON,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: ErrEpisodeNotFound,
		},
		{
			name:    "empty object",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: ErrEpisodeNotFound,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `boom`,
			wantErr:    ErrUpstream,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/episodes/a-importancia-da-contribuicao-em-open-source", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			episode, err := client.GetEpisode(context.Background(), "a-importancia-da-contribuicao-em-open-source")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantStatus != 0 {
					var apiErr APIError
					require.ErrorAs(t, err, &apiErr)
					assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
					assert.Equal(t, "boom", apiErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A importância da contribuição em Open Source", episode.Title)
		})
	}
}

func TestClient_GetEpisodeEmptyID(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused.invalid"})
	_, err := client.GetEpisode(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]APIEpisode{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListEpisodes(ctx, DefaultListParams(12))
	assert.Error(t, err)
}

func TestFlexDecoding(t *testing.T) {
	var raw APIEpisode
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "file": {"duration": "1800"}}`), &raw))
	assert.Equal(t, FlexString("7"), raw.ID)
	assert.Equal(t, FlexInt(1800), raw.File.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null, "file": {"duration": 12.9}}`), &raw))
	assert.Equal(t, FlexString(""), raw.ID)
	assert.Equal(t, FlexInt(12), raw.File.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"file": {"duration": "long"}}`), &raw))
}
