package appstate

import (
	"testing"
	"time"

	"content-discovery-be/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAtHour(hour int) catalog.FixedClock {
	return catalog.FixedClock{Instant: time.Date(2025, 3, 10, hour, 30, 0, 0, time.UTC)}
}

func TestTimeModeForHour(t *testing.T) {
	tests := []struct {
		hour int
		want TimeMode
	}{
		{3, TimeModeNight},
		{5, TimeModeNight},
		{6, TimeModeMorning},
		{7, TimeModeMorning},
		{11, TimeModeMorning},
		{12, TimeModeDay},
		{15, TimeModeDay},
		{17, TimeModeDay},
		{18, TimeModeEvening},
		{19, TimeModeEvening},
		{21, TimeModeEvening},
		{22, TimeModeNight},
		{23, TimeModeNight},
		{0, TimeModeNight},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, timeModeForHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestDetectTimeMode(t *testing.T) {
	store := NewUIStore(NewMemoryEnvironment(), clockAtHour(7))
	assert.Equal(t, TimeModeMorning, store.DetectTimeMode())

	store = NewUIStore(NewMemoryEnvironment(), clockAtHour(23))
	assert.Equal(t, TimeModeNight, store.DetectTimeMode())
}

func TestDefaultContentModeFor(t *testing.T) {
	assert.Equal(t, ContentModeAudio, DefaultContentModeFor(TimeModeMorning))
	assert.Equal(t, ContentModeMixed, DefaultContentModeFor(TimeModeDay))
	assert.Equal(t, ContentModeVideo, DefaultContentModeFor(TimeModeEvening))
	assert.Equal(t, ContentModeText, DefaultContentModeFor(TimeModeNight))
}

func TestSetTimeModeAppliesDefaults(t *testing.T) {
	env := NewMemoryEnvironment()
	store := NewUIStore(env, clockAtHour(19))
	store.transitionDelay = 5 * time.Millisecond

	store.SetTimeMode(TimeModeEvening)

	state := store.State()
	assert.Equal(t, TimeModeEvening, state.CurrentTimeMode)
	assert.Equal(t, ContentModeVideo, state.CurrentContentMode)
	assert.True(t, state.IsTransitioning)

	assert.Eventually(t, func() bool {
		return !store.State().IsTransitioning
	}, time.Second, time.Millisecond)
}

func TestSetTimeModeSameModeIsNoOp(t *testing.T) {
	store := NewUIStore(NewMemoryEnvironment(), clockAtHour(15))
	store.SetContentMode(ContentModeText)

	// Already in day mode; the manual content override must survive.
	store.SetTimeMode(TimeModeDay)

	state := store.State()
	assert.Equal(t, ContentModeText, state.CurrentContentMode)
	assert.False(t, state.IsTransitioning)
}

func TestSetContentModeOverridesUntilNextTimeModeChange(t *testing.T) {
	store := NewUIStore(NewMemoryEnvironment(), clockAtHour(15))
	store.transitionDelay = time.Millisecond

	store.SetContentMode(ContentModeAudio)
	assert.Equal(t, ContentModeAudio, store.State().CurrentContentMode)

	store.SetTimeMode(TimeModeNight)
	assert.Equal(t, ContentModeText, store.State().CurrentContentMode)
}

func TestToggleAutoMode(t *testing.T) {
	store := NewUIStore(NewMemoryEnvironment(), clockAtHour(7))
	store.transitionDelay = time.Millisecond

	store.ToggleAutoMode()
	assert.False(t, store.State().AutoModeEnabled)

	// Re-enabling snaps to the detected mode.
	store.ToggleAutoMode()
	state := store.State()
	assert.True(t, state.AutoModeEnabled)
	assert.Equal(t, TimeModeMorning, state.CurrentTimeMode)
	assert.Equal(t, ContentModeAudio, state.CurrentContentMode)
}

func TestTickFollowsClockOnlyWhenAutoEnabled(t *testing.T) {
	clock := &mutableClock{instant: clockAtHour(15).Instant}
	store := NewUIStore(NewMemoryEnvironment(), clock)
	store.transitionDelay = time.Millisecond
	store.SetTimeMode(TimeModeDay)

	clock.instant = clockAtHour(23).Instant
	store.Tick()
	assert.Equal(t, TimeModeNight, store.State().CurrentTimeMode)

	store.ToggleAutoMode() // off
	clock.instant = clockAtHour(9).Instant
	store.Tick()
	assert.Equal(t, TimeModeNight, store.State().CurrentTimeMode)
}

type mutableClock struct {
	instant time.Time
}

func (c *mutableClock) Now() time.Time { return c.instant }

func TestUpdatePreferencesAppliesDisplayAttributes(t *testing.T) {
	env := NewMemoryEnvironment()
	store := NewUIStore(env, clockAtHour(15))

	theme := "dark"
	fontSize := "large"
	reduceMotion := true
	store.UpdatePreferences(PreferenceUpdate{
		Theme:        &theme,
		FontSize:     &fontSize,
		ReduceMotion: &reduceMotion,
	})

	_, dark := env.Attribute("dark")
	assert.True(t, dark)
	size, _ := env.Attribute("data-font-size")
	assert.Equal(t, "large", size)
	_, motion := env.Attribute("data-reduce-motion")
	assert.True(t, motion)
	_, contrast := env.Attribute("data-high-contrast")
	assert.False(t, contrast)

	light := "light"
	store.UpdatePreferences(PreferenceUpdate{Theme: &light})
	_, dark = env.Attribute("dark")
	assert.False(t, dark)
}

func TestAutoThemeIsDarkAtNight(t *testing.T) {
	store := NewUIStore(NewMemoryEnvironment(), clockAtHour(15))
	store.transitionDelay = time.Millisecond
	assert.False(t, store.IsDarkMode(), "auto theme in day mode")

	store.SetTimeMode(TimeModeNight)
	assert.True(t, store.IsDarkMode(), "auto theme in night mode")
}

func TestPreferencesPersistAcrossStores(t *testing.T) {
	env := NewMemoryEnvironment()

	first := NewUIStore(env, clockAtHour(15))
	theme := "dark"
	first.UpdatePreferences(PreferenceUpdate{Theme: &theme})
	first.SetContentMode(ContentModeVideo)
	first.ToggleAutoMode() // off

	raw, ok := env.GetItem("discovery-ui-preferences")
	require.True(t, ok)
	require.NotEmpty(t, raw)

	second := NewUIStore(env, clockAtHour(15))
	state := second.State()
	assert.Equal(t, "dark", state.Preferences.Theme)
	assert.Equal(t, ContentModeVideo, state.CurrentContentMode)
	assert.False(t, state.AutoModeEnabled)
	assert.True(t, second.IsDarkMode())
}
