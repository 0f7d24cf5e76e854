package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/killallgit/podcastr/api/types"
	pagesService "github.com/killallgit/podcastr/internal/services/pages"
)

type MockPages struct {
	mock.Mock
}

func (m *MockPages) Home(ctx context.Context) (*pagesService.RenderedPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagesService.RenderedPage), args.Error(1)
}

func (m *MockPages) Page(ctx context.Context, slug string) (*pagesService.RenderedPage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagesService.RenderedPage), args.Error(1)
}

func (m *MockPages) RenderError(status int, message string) ([]byte, error) {
	return []byte("<h1>" + http.StatusText(status) + "</h1><p>" + message + "</p>"), nil
}

func renderedPage(slug, html string) *pagesService.RenderedPage {
	now := time.Now()
	return &pagesService.RenderedPage{
		Slug:         slug,
		HTML:         []byte(html),
		GeneratedAt:  now,
		RevalidateAt: now.Add(24 * time.Hour),
	}
}

func TestEpisode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		slug           string
		page           *pagesService.RenderedPage
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "rendered page",
			slug:           "a",
			page:           renderedPage("a", "<title>Episode a | Podcastr</title>"),
			expectedStatus: http.StatusOK,
			expectedBody:   "Episode a | Podcastr",
		},
		{
			name:           "unknown episode",
			slug:           "missing",
			err:            pagesService.ErrPageNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Episódio não encontrado.",
		},
		{
			name:           "upstream failure",
			slug:           "b",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockPages)
			if tt.err != nil {
				service.On("Page", mock.Anything, tt.slug).Return(nil, tt.err)
			} else {
				service.On("Page", mock.Anything, tt.slug).Return(tt.page, nil)
			}

			router := gin.New()
			RegisterRoutes(router, &types.Dependencies{Pages: service})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/"+tt.slug, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Header().Get("Cache-Control"), "stale-while-revalidate")
				assert.NotEmpty(t, w.Header().Get("Last-Modified"))
			}
		})
	}
}

func TestHome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rendered", func(t *testing.T) {
		service := new(MockPages)
		service.On("Home", mock.Anything).Return(renderedPage("", "<ul>episodes</ul>"), nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Home(&types.Dependencies{Pages: service})(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<ul>episodes</ul>", w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		service := new(MockPages)
		service.On("Home", mock.Anything).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Home(&types.Dependencies{Pages: service})(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Não foi possível carregar os episódios.")
	})
}
