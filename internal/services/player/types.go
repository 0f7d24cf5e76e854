package player

// Episode is the playable item handed to the player. It is a value copied
// out of the episode catalog and never mutated by the player.
type Episode struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title" validate:"required"`
	Members   string `json:"members"`
	Thumbnail string `json:"thumbnail"`
	Duration  int    `json:"duration" validate:"gte=0"` // seconds
	URL       string `json:"url" validate:"required,url"`
}

// State is a snapshot of a player. Snapshots own their EpisodeList, so
// callers may keep or modify them freely.
type State struct {
	EpisodeList         []Episode `json:"episodeList"`
	CurrentEpisodeIndex int       `json:"currentEpisodeIndex"`
	IsPlaying           bool      `json:"isPlaying"`
	IsPlayingOne        bool      `json:"isPlayingOne"`
	IsLooping           bool      `json:"isLooping"`
	IsShuffling         bool      `json:"isShuffling"`
}

// CurrentEpisode returns the episode at CurrentEpisodeIndex
func (s State) CurrentEpisode() (Episode, bool) {
	if s.CurrentEpisodeIndex < 0 || s.CurrentEpisodeIndex >= len(s.EpisodeList) {
		return Episode{}, false
	}
	return s.EpisodeList[s.CurrentEpisodeIndex], true
}

func (s State) clone() State {
	c := s
	if s.EpisodeList != nil {
		c.EpisodeList = make([]Episode, len(s.EpisodeList))
		copy(c.EpisodeList, s.EpisodeList)
	}
	return c
}

// normalize repairs a state restored from storage so the index invariant holds
func (s State) normalize() State {
	if len(s.EpisodeList) == 0 || s.CurrentEpisodeIndex < 0 || s.CurrentEpisodeIndex >= len(s.EpisodeList) {
		s.CurrentEpisodeIndex = 0
	}
	return s
}
