package player

import (
	"math/rand/v2"
	"sync"
)

// Observer is notified with a snapshot after every mutation
type Observer func(State)

// Player holds one listener's playlist, current index and mode flags. The
// exported methods are the only way to change it.
type Player struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	state     State
	randIntN  func(n int) int
	observers []Observer
}

// Option configures a Player
type Option func(*Player)

// WithRandom replaces the source used to pick shuffled episodes.
// intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(p *Player) {
		p.randIntN = intN
	}
}

// WithState starts the player from a previously saved snapshot
func WithState(s State) Option {
	return func(p *Player) {
		p.state = s.clone().normalize()
	}
}

// WithObserver registers a change observer
func WithObserver(o Observer) Option {
	return func(p *Player) {
		p.observers = append(p.observers, o)
	}
}

// New creates an empty, paused player
func New(opts ...Option) *Player {
	p := &Player{
		randIntN: rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a snapshot of the player
func (p *Player) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.clone()
}

// Watch runs subscribe while no change is being applied or published and
// returns the state as of that moment. Every observer notification after
// Watch returns carries a newer state.
func (p *Player) Watch(subscribe func()) State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	subscribe()
	return p.state.clone()
}

// CurrentEpisode returns the episode at the current index
func (p *Player) CurrentEpisode() (Episode, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.CurrentEpisode()
}

// Play replaces the playlist with the single episode and starts playing it
func (p *Player) Play(episode Episode) State {
	return p.mutate(func(s *State) {
		s.EpisodeList = []Episode{episode}
		s.CurrentEpisodeIndex = 0
		s.IsPlaying = true
		s.IsPlayingOne = true
	})
}

// PlayList replaces the playlist and starts playing at index
func (p *Player) PlayList(list []Episode, index int) (State, error) {
	if (len(list) == 0 && index != 0) || (len(list) > 0 && (index < 0 || index >= len(list))) {
		return p.State(), IndexError{Index: index, Length: len(list)}
	}

	episodes := make([]Episode, len(list))
	copy(episodes, list)

	return p.mutate(func(s *State) {
		s.EpisodeList = episodes
		s.CurrentEpisodeIndex = index
		s.IsPlaying = true
		s.IsPlayingOne = false
	}), nil
}

// TogglePlay flips isPlaying
func (p *Player) TogglePlay() State {
	return p.mutate(func(s *State) {
		s.IsPlaying = !s.IsPlaying
	})
}

// ToggleLoop flips isLooping
func (p *Player) ToggleLoop() State {
	return p.mutate(func(s *State) {
		s.IsLooping = !s.IsLooping
	})
}

// ToggleShuffle flips isShuffling
func (p *Player) ToggleShuffle() State {
	return p.mutate(func(s *State) {
		s.IsShuffling = !s.IsShuffling
	})
}

// SetPlayingState sets isPlaying directly, used when the media element
// reports that playback paused or ended.
func (p *Player) SetPlayingState(playing bool) State {
	return p.mutate(func(s *State) {
		s.IsPlaying = playing
	})
}

// PlayNext moves to a uniformly random episode when shuffling (the current
// one included), otherwise to the following episode, wrapping to the first.
func (p *Player) PlayNext() State {
	return p.mutate(func(s *State) {
		n := len(s.EpisodeList)
		if n == 0 {
			s.CurrentEpisodeIndex = 0
			return
		}

		if s.IsShuffling {
			s.CurrentEpisodeIndex = p.randIntN(n)
			return
		}

		next := s.CurrentEpisodeIndex + 1
		if next >= n {
			next = 0
		}
		s.CurrentEpisodeIndex = next
	})
}

// PlayPrevious moves to the preceding episode, wrapping to the last. The
// shuffle flag is not consulted.
func (p *Player) PlayPrevious() State {
	return p.mutate(func(s *State) {
		n := len(s.EpisodeList)
		if n == 0 {
			s.CurrentEpisodeIndex = 0
			return
		}

		previous := s.CurrentEpisodeIndex - 1
		if previous < 0 {
			previous = n - 1
		}
		s.CurrentEpisodeIndex = previous
	})
}

func (p *Player) mutate(fn func(*State)) State {
	p.mu.Lock()
	fn(&p.state)
	snapshot := p.state.clone()
	observers := p.observers

	// notifyMu is taken before mu is released so observers see mutations in order
	p.notifyMu.Lock()
	p.mu.Unlock()
	defer p.notifyMu.Unlock()

	for _, o := range observers {
		o(snapshot.clone())
	}
	return snapshot
}
