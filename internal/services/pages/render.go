package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/player"
)

//go:embed templates/*.html
var templateFS embed.FS

type layoutData struct {
	Title    string
	SiteName string
}

type episodeView struct {
	layoutData
	Episode     models.EpisodeDetail
	Description template.HTML
	Playable    player.Episode
}

type homeItem struct {
	Detail   models.EpisodeDetail
	Playable player.Episode
}

type homeView struct {
	layoutData
	Latest   []homeItem
	Playlist []player.Episode
}

type renderer struct {
	home    *template.Template
	episode *template.Template
	errors  *template.Template
}

func newRenderer() (*renderer, error) {
	parse := func(name string) (*template.Template, error) {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		return t, nil
	}

	home, err := parse("home.html")
	if err != nil {
		return nil, err
	}
	episode, err := parse("episode.html")
	if err != nil {
		return nil, err
	}
	errs, err := parse("error.html")
	if err != nil {
		return nil, err
	}

	return &renderer{home: home, episode: episode, errors: errs}, nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderEpisode(siteName string, detail models.EpisodeDetail, playable player.Episode) ([]byte, error) {
	return execute(r.episode, episodeView{
		layoutData: layoutData{
			Title:    fmt.Sprintf("%s | %s", detail.Title, siteName),
			SiteName: siteName,
		},
		Episode: detail,
		// description is HTML authored upstream and rendered as-is
		Description: template.HTML(detail.Description),
		Playable:    playable,
	})
}

func (r *renderer) renderHome(siteName string, items []homeItem) ([]byte, error) {
	playlist := make([]player.Episode, 0, len(items))
	for _, item := range items {
		playlist = append(playlist, item.Playable)
	}
	return execute(r.home, homeView{
		layoutData: layoutData{
			Title:    fmt.Sprintf("Home | %s", siteName),
			SiteName: siteName,
		},
		Latest:   items,
		Playlist: playlist,
	})
}

type errorView struct {
	layoutData
	Status  int
	Message string
}

func (r *renderer) renderError(siteName string, status int, message string) ([]byte, error) {
	return execute(r.errors, errorView{
		layoutData: layoutData{
			Title:    fmt.Sprintf("%d | %s", status, siteName),
			SiteName: siteName,
		},
		Status:  status,
		Message: message,
	})
}
