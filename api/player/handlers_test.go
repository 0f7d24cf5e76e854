package player

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/models"
	episodesService "github.com/killallgit/podcastr/internal/services/episodes"
	playerService "github.com/killallgit/podcastr/internal/services/player"
	"github.com/killallgit/podcastr/pkg/validator"
)

type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) LatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeService) GetEpisode(ctx context.Context, id string) (*models.Episode, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeService) FetchLatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeService) FetchEpisode(ctx context.Context, id string) (*models.Episode, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeService) Transformer() episodesService.EpisodeTransformer {
	return episodesService.NewTransformer("pt-BR")
}

const testSession = "listener-1"

func setupRouter(t *testing.T, episodes *MockEpisodeService) (*gin.Engine, *types.Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := playerService.NewHub()
	deps := &types.Dependencies{
		PlayerStore: playerService.NewStore(
			playerService.WithPublisher(hub),
			playerService.WithPlayerOptions(playerService.WithRandom(func(n int) int { return n - 1 })),
		),
		PlayerHub: hub,
		Validator: validator.New(),
		ListLimit: 12,
	}
	if episodes != nil {
		deps.EpisodeService = episodes
	}

	router := gin.New()
	group := router.Group("/api/v1/player")
	group.Use(func(c *gin.Context) {
		session := c.GetHeader("X-Player-Session")
		if session == "" {
			session = testSession
		}
		c.Set(types.SessionKey, session)
		c.Next()
	})
	RegisterRoutes(group, deps)
	return router, deps
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, types.PlayerStateResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response types.PlayerStateResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func testEpisodes(n int) []playerService.Episode {
	list := make([]playerService.Episode, n)
	for i := range list {
		id := string(rune('a' + i))
		list[i] = playerService.Episode{
			ID:       id,
			Title:    "Episode " + id,
			Duration: 60,
			URL:      "https://example.com/" + id + ".mp3",
		}
	}
	return list
}

func TestGet_EmptySession(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w, response := do(t, router, http.MethodGet, "/api/v1/player", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testSession, response.SessionID)
	assert.Empty(t, response.State.EpisodeList)
	assert.Equal(t, 0, response.State.CurrentEpisodeIndex)
	assert.False(t, response.State.IsPlaying)
}

func TestPlay(t *testing.T) {
	router, _ := setupRouter(t, nil)
	episode := testEpisodes(1)[0]

	w, response := do(t, router, http.MethodPost, "/api/v1/player/play", types.PlayRequest{Episode: episode})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []playerService.Episode{episode}, response.State.EpisodeList)
	assert.True(t, response.State.IsPlaying)
	assert.True(t, response.State.IsPlayingOne)

	// state survives across requests of the same session
	_, again := do(t, router, http.MethodGet, "/api/v1/player", nil)
	assert.Equal(t, response.State, again.State)
}

func TestPlay_Validation(t *testing.T) {
	router, _ := setupRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing episode", `{}`},
		{"missing url", `{"episode":{"title":"A"}}`},
		{"negative duration", `{"episode":{"title":"A","url":"https://example.com/a.mp3","duration":-1}}`},
		{"malformed", `{"episode":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/player/play", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPlayList(t *testing.T) {
	router, _ := setupRouter(t, nil)
	list := testEpisodes(3)

	w, response := do(t, router, http.MethodPost, "/api/v1/player/playlist", types.PlayListRequest{Episodes: list, Index: 2})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, response.State.CurrentEpisodeIndex)
	assert.False(t, response.State.IsPlayingOne)
	assert.True(t, response.State.IsPlaying)

	w, _ = do(t, router, http.MethodPost, "/api/v1/player/playlist", types.PlayListRequest{Episodes: list, Index: 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"length":3`)

	// rejected request left the state untouched
	_, current := do(t, router, http.MethodGet, "/api/v1/player", nil)
	assert.Equal(t, 2, current.State.CurrentEpisodeIndex)
}

func TestNavigation(t *testing.T) {
	router, _ := setupRouter(t, nil)
	do(t, router, http.MethodPost, "/api/v1/player/playlist", types.PlayListRequest{Episodes: testEpisodes(3), Index: 2})

	_, next := do(t, router, http.MethodPost, "/api/v1/player/next", nil)
	assert.Equal(t, 0, next.State.CurrentEpisodeIndex)

	_, previous := do(t, router, http.MethodPost, "/api/v1/player/previous", nil)
	assert.Equal(t, 2, previous.State.CurrentEpisodeIndex)

	// the test random source always picks the last index
	_, shuffled := do(t, router, http.MethodPost, "/api/v1/player/toggle/shuffle", nil)
	assert.True(t, shuffled.State.IsShuffling)
	do(t, router, http.MethodPost, "/api/v1/player/previous", nil)
	_, random := do(t, router, http.MethodPost, "/api/v1/player/next", nil)
	assert.Equal(t, 2, random.State.CurrentEpisodeIndex)
}

func TestToggles(t *testing.T) {
	router, _ := setupRouter(t, nil)

	_, loop := do(t, router, http.MethodPost, "/api/v1/player/toggle/loop", nil)
	assert.True(t, loop.State.IsLooping)
	_, loop = do(t, router, http.MethodPost, "/api/v1/player/toggle/loop", nil)
	assert.False(t, loop.State.IsLooping)

	_, play := do(t, router, http.MethodPost, "/api/v1/player/toggle/play", nil)
	assert.True(t, play.State.IsPlaying)

	playing := false
	w, set := do(t, router, http.MethodPut, "/api/v1/player/playing", types.SetPlayingRequest{IsPlaying: &playing})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, set.State.IsPlaying)

	w, _ = do(t, router, http.MethodPut, "/api/v1/player/playing", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	router, _ := setupRouter(t, nil)
	do(t, router, http.MethodPost, "/api/v1/player/toggle/loop", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player", nil)
	req.Header.Set("X-Player-Session", "listener-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response types.PlayerStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "listener-2", response.SessionID)
	assert.False(t, response.State.IsLooping)
}

func TestPlayLatest(t *testing.T) {
	episodes := new(MockEpisodeService)
	episodes.On("LatestEpisodes", mock.Anything, 12).Return([]models.Episode{
		{ID: "b", Title: "B", Duration: 10, URL: "https://example.com/b.mp3"},
		{ID: "a", Title: "A", Duration: 20, URL: "https://example.com/a.mp3"},
	}, nil)
	router, _ := setupRouter(t, episodes)

	w, response := do(t, router, http.MethodPost, "/api/v1/player/playlist/latest", types.PlayLatestRequest{Index: 1})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, response.State.EpisodeList, 2)
	assert.Equal(t, "b", response.State.EpisodeList[0].ID)
	assert.Equal(t, 1, response.State.CurrentEpisodeIndex)

	current, ok := response.State.CurrentEpisode()
	require.True(t, ok)
	assert.Equal(t, "A", current.Title)

	w, _ = do(t, router, http.MethodPost, "/api/v1/player/playlist/latest", types.PlayLatestRequest{Index: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayLatest_UpstreamFailure(t *testing.T) {
	episodes := new(MockEpisodeService)
	episodes.On("LatestEpisodes", mock.Anything, 12).Return(nil, episodesService.NewAPIError("episodes", 503, "down"))
	router, _ := setupRouter(t, episodes)

	w, _ := do(t, router, http.MethodPost, "/api/v1/player/playlist/latest", types.PlayLatestRequest{})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestInvalidSession(t *testing.T) {
	router, _ := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player", nil)
	req.Header.Set("X-Player-Session", strings.Repeat("x", 65))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebSocket(t *testing.T) {
	router, _ := setupRouter(t, nil)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/player/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var initial playerService.State
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Empty(t, initial.EpisodeList)

	body, err := json.Marshal(types.PlayRequest{Episode: testEpisodes(1)[0]})
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/v1/player/play", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var update playerService.State
	require.NoError(t, conn.ReadJSON(&update))
	require.Len(t, update.EpisodeList, 1)
	assert.True(t, update.IsPlayingOne)
	assert.Equal(t, "Episode a", update.EpisodeList[0].Title)
}

func TestWebSocket_Origins(t *testing.T) {
	header := http.Header{"Origin": []string{"https://app.example"}}

	dial := func(t *testing.T, allowed []string) (*websocket.Conn, *http.Response, error) {
		router, deps := setupRouter(t, nil)
		deps.AllowedOrigins = allowed
		server := httptest.NewServer(router)
		t.Cleanup(server.Close)

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/player/ws"
		return websocket.DefaultDialer.Dial(wsURL, header)
	}

	t.Run("foreign origin rejected", func(t *testing.T) {
		_, resp, err := dial(t, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("configured origin accepted", func(t *testing.T) {
		conn, _, err := dial(t, []string{"https://app.example"})
		require.NoError(t, err)
		conn.Close()
	})
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		origins []string
		want    bool
	}{
		{name: "no origin header", origin: "", want: true},
		{name: "same origin", origin: "http://podcastr.test", want: true},
		{name: "foreign origin", origin: "https://evil.example", want: false},
		{name: "listed origin", origin: "https://app.example", origins: []string{"https://app.example"}, want: true},
		{name: "wildcard", origin: "https://evil.example", origins: []string{"*"}, want: true},
		{name: "unlisted origin", origin: "https://evil.example", origins: []string{"https://app.example"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://podcastr.test/api/v1/player/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originAllowed(req, tt.origins))
		})
	}
}

func TestWebSocket_NoHub(t *testing.T) {
	_, deps := setupRouter(t, nil)
	deps.PlayerHub = nil

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/player/ws", nil)

	WebSocket(deps)(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
