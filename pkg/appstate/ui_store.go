package appstate

import (
	"encoding/json"
	"sync"
	"time"

	"content-discovery-be/internal/catalog"
)

type TimeMode string

const (
	TimeModeMorning TimeMode = "morning" // [6,12)
	TimeModeDay     TimeMode = "day"     // [12,18)
	TimeModeEvening TimeMode = "evening" // [18,22)
	TimeModeNight   TimeMode = "night"   // everything else
)

type ContentMode string

const (
	ContentModeText  ContentMode = "text"
	ContentModeAudio ContentMode = "audio"
	ContentModeVideo ContentMode = "video"
	ContentModeMixed ContentMode = "mixed"
)

// TransitionDuration is the mode-change animation window. Presentation
// timing, not a correctness requirement.
const TransitionDuration = 300 * time.Millisecond

const uiPreferencesKey = "discovery-ui-preferences"

type Preferences struct {
	TimeMode       TimeMode    `json:"timeMode"`
	ContentMode    ContentMode `json:"contentMode"`
	Theme          string      `json:"theme"` // "light" | "dark" | "auto"
	FontSize       string      `json:"fontSize"`
	ShowAnimations bool        `json:"showAnimations"`
	ReduceMotion   bool        `json:"reduceMotion"`
	HighContrast   bool        `json:"highContrast"`
}

// PreferenceUpdate is a partial Preferences; nil fields are left alone.
type PreferenceUpdate struct {
	Theme          *string
	FontSize       *string
	ShowAnimations *bool
	ReduceMotion   *bool
	HighContrast   *bool
}

type UIState struct {
	CurrentTimeMode    TimeMode
	CurrentContentMode ContentMode
	Preferences        Preferences
	IsTransitioning    bool
	LastModeChange     time.Time
	AutoModeEnabled    bool
}

// UIStore is the adaptive mode controller: it maps wall-clock time to a
// TimeMode, derives the default ContentMode and mirrors display attributes
// into the environment.
type UIStore struct {
	mu    sync.Mutex
	state UIState
	clock catalog.Clock
	env   Environment

	transitionDelay time.Duration
	transitionTimer *time.Timer
}

func NewUIStore(env Environment, clock catalog.Clock) *UIStore {
	if clock == nil {
		clock = catalog.SystemClock()
	}
	store := &UIStore{
		state: UIState{
			CurrentTimeMode:    TimeModeDay,
			CurrentContentMode: ContentModeMixed,
			Preferences: Preferences{
				TimeMode:       TimeModeDay,
				ContentMode:    ContentModeMixed,
				Theme:          "auto",
				FontSize:       "medium",
				ShowAnimations: true,
			},
			LastModeChange:  clock.Now(),
			AutoModeEnabled: true,
		},
		clock:           clock,
		env:             env,
		transitionDelay: TransitionDuration,
	}
	store.restore()
	return store
}

func (s *UIStore) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DetectTimeMode maps the current local hour onto a TimeMode. The four
// intervals are half-open and cover all 24 hours.
func (s *UIStore) DetectTimeMode() TimeMode {
	return timeModeForHour(s.clock.Now().Hour())
}

func timeModeForHour(hour int) TimeMode {
	switch {
	case hour >= 6 && hour < 12:
		return TimeModeMorning
	case hour >= 12 && hour < 18:
		return TimeModeDay
	case hour >= 18 && hour < 22:
		return TimeModeEvening
	default:
		return TimeModeNight
	}
}

func DefaultContentModeFor(mode TimeMode) ContentMode {
	switch mode {
	case TimeModeMorning:
		return ContentModeAudio
	case TimeModeDay:
		return ContentModeMixed
	case TimeModeEvening:
		return ContentModeVideo
	default:
		return ContentModeText
	}
}

// SetTimeMode swaps the time mode and resets the content mode to the new
// mode's default. Same-mode calls are no-ops.
func (s *UIStore) SetTimeMode(mode TimeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentTimeMode == mode {
		return
	}

	s.state.IsTransitioning = true
	s.state.LastModeChange = s.clock.Now()

	defaultContentMode := DefaultContentModeFor(mode)
	s.state.CurrentContentMode = defaultContentMode
	s.state.Preferences.ContentMode = defaultContentMode

	s.state.CurrentTimeMode = mode
	s.state.Preferences.TimeMode = mode

	s.applyDisplayAttributesLocked()
	s.persistLocked()

	if s.transitionTimer != nil {
		s.transitionTimer.Stop()
	}
	s.transitionTimer = time.AfterFunc(s.transitionDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.IsTransitioning = false
	})
}

// SetContentMode overrides the derived content mode until the next
// time-mode change.
func (s *UIStore) SetContentMode(mode ContentMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentContentMode = mode
	s.state.Preferences.ContentMode = mode
	s.persistLocked()
}

// ToggleAutoMode flips auto detection; turning it on re-applies the
// currently detected time mode immediately.
func (s *UIStore) ToggleAutoMode() {
	s.mu.Lock()
	enabled := !s.state.AutoModeEnabled
	s.state.AutoModeEnabled = enabled
	s.persistLocked()
	s.mu.Unlock()

	if enabled {
		s.SetTimeMode(s.DetectTimeMode())
	}
}

// Tick is the periodic wall-clock poll; callers drive it from a ticker.
func (s *UIStore) Tick() {
	s.mu.Lock()
	enabled := s.state.AutoModeEnabled
	current := s.state.CurrentTimeMode
	s.mu.Unlock()

	if !enabled {
		return
	}
	if detected := s.DetectTimeMode(); detected != current {
		s.SetTimeMode(detected)
	}
}

// UpdatePreferences shallow-merges the supplied fields and recomputes the
// display attributes.
func (s *UIStore) UpdatePreferences(update PreferenceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Theme != nil {
		s.state.Preferences.Theme = *update.Theme
	}
	if update.FontSize != nil {
		s.state.Preferences.FontSize = *update.FontSize
	}
	if update.ShowAnimations != nil {
		s.state.Preferences.ShowAnimations = *update.ShowAnimations
	}
	if update.ReduceMotion != nil {
		s.state.Preferences.ReduceMotion = *update.ReduceMotion
	}
	if update.HighContrast != nil {
		s.state.Preferences.HighContrast = *update.HighContrast
	}

	s.applyDisplayAttributesLocked()
	s.persistLocked()
}

// IsDarkMode is true for an explicit dark theme, or for theme "auto" during
// the night mode.
func (s *UIStore) IsDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkModeLocked()
}

func (s *UIStore) darkModeLocked() bool {
	switch s.state.Preferences.Theme {
	case "dark":
		return true
	case "light":
		return false
	default:
		return s.state.CurrentTimeMode == TimeModeNight
	}
}

func (s *UIStore) applyDisplayAttributesLocked() {
	if s.env == nil {
		return
	}

	if s.darkModeLocked() {
		s.env.SetAttribute("dark", "true")
	} else {
		s.env.RemoveAttribute("dark")
	}

	s.env.SetAttribute("data-font-size", s.state.Preferences.FontSize)

	if s.state.Preferences.ReduceMotion {
		s.env.SetAttribute("data-reduce-motion", "true")
	} else {
		s.env.RemoveAttribute("data-reduce-motion")
	}
	if s.state.Preferences.HighContrast {
		s.env.SetAttribute("data-high-contrast", "true")
	} else {
		s.env.RemoveAttribute("data-high-contrast")
	}
}

type persistedUIState struct {
	Preferences     Preferences `json:"preferences"`
	AutoModeEnabled bool        `json:"autoModeEnabled"`
}

func (s *UIStore) persistLocked() {
	if s.env == nil {
		return
	}
	data, err := json.Marshal(persistedUIState{
		Preferences:     s.state.Preferences,
		AutoModeEnabled: s.state.AutoModeEnabled,
	})
	if err != nil {
		return
	}
	s.env.SetItem(uiPreferencesKey, string(data))
}

func (s *UIStore) restore() {
	if s.env == nil {
		return
	}
	raw, ok := s.env.GetItem(uiPreferencesKey)
	if !ok {
		return
	}
	var persisted persistedUIState
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return
	}
	s.state.Preferences = persisted.Preferences
	s.state.AutoModeEnabled = persisted.AutoModeEnabled
	s.state.CurrentContentMode = persisted.Preferences.ContentMode
	s.applyDisplayAttributesLocked()
}

// Initialize applies the persisted theme and, when auto mode is on, snaps to
// the detected time mode. The returned stop function ends the minute poll.
func (s *UIStore) Initialize() (stop func()) {
	s.UpdatePreferences(PreferenceUpdate{})

	s.mu.Lock()
	enabled := s.state.AutoModeEnabled
	s.mu.Unlock()
	if enabled {
		s.SetTimeMode(s.DetectTimeMode())
	}

	ticker := time.NewTicker(time.Minute)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
