package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const upstreamEpisodeJSON = `{
	"id": "a-importancia-da-contribuicao-em-open-source",
	"title": "A importância da contribuição em Open Source",
	"members": "Diego Fernandes, João Pedro",
	"published_at": "2021-01-20 19:23:00",
	"thumbnail": "https://example.com/opensource.jpg",
	"description": "<p>Nesse episódio do Faladev</p>",
	"file": {
		"url": "https://example.com/opensource.m4a",
		"type": "audio/x-m4a",
		"duration": 3981
	}
}`

// newUpstream serves a one-episode catalog in the shape of the episodes API
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/episodes":
			_, _ = w.Write([]byte("[" + upstreamEpisodeJSON + "]"))
		case r.URL.Path == "/episodes/a-importancia-da-contribuicao-em-open-source":
			_, _ = w.Write([]byte(upstreamEpisodeJSON))
		case strings.HasPrefix(r.URL.Path, "/episodes/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("{}"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// useTestEnvironment points the configuration at upstream and an in-memory database
func useTestEnvironment(t *testing.T, upstream *httptest.Server) {
	t.Helper()
	t.Setenv("PODCASTR_EPISODES_API_BASE_URL", upstream.URL)
	t.Setenv("PODCASTR_DATABASE_PATH", ":memory:")
	t.Setenv("PODCASTR_PAGES_PRERENDER_ON_BOOT", "false")
	t.Setenv("PODCASTR_CACHE_BACKEND", "memory")
}
