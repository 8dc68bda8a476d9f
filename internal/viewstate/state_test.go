package viewstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	var s State
	assert.False(t, s.MenuOpen)
	assert.False(t, s.DarkMode)
	assert.Equal(t, "", s.Encode())
	assert.Equal(t, "/", s.Path())
}

func TestToggleDarkModeParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		var s State
		for i := 0; i < n; i++ {
			s.ToggleDarkMode()
		}
		assert.Equal(t, n%2 == 1, s.DarkMode, "after %d toggles", n)
		assert.False(t, s.MenuOpen, "menu untouched after %d toggles", n)
	}
}

func TestToggleMenuParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		s := State{DarkMode: true}
		for i := 0; i < n; i++ {
			s.ToggleMenu()
		}
		assert.Equal(t, n%2 == 1, s.MenuOpen, "after %d toggles", n)
		assert.True(t, s.DarkMode)
	}
}

func TestCloseMenu(t *testing.T) {
	for _, s := range All() {
		before := s
		s.CloseMenu()
		assert.False(t, s.MenuOpen)
		assert.Equal(t, before.DarkMode, s.DarkMode)
	}
}

func TestScenario(t *testing.T) {
	var s State

	s.ToggleMenu()
	assert.Equal(t, State{MenuOpen: true}, s)

	s.ToggleDarkMode()
	assert.Equal(t, State{MenuOpen: true, DarkMode: true}, s)

	// following a mobile nav link
	s.CloseMenu()
	assert.Equal(t, State{DarkMode: true}, s)
}

func TestApply(t *testing.T) {
	tests := []struct {
		from   State
		action Action
		want   State
	}{
		{State{}, ActionToggleDark, State{DarkMode: true}},
		{State{DarkMode: true}, ActionToggleDark, State{}},
		{State{}, ActionToggleMenu, State{MenuOpen: true}},
		{State{MenuOpen: true, DarkMode: true}, ActionToggleMenu, State{DarkMode: true}},
		{State{MenuOpen: true}, ActionCloseMenu, State{}},
		{State{}, ActionCloseMenu, State{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			s := tt.from
			require.NoError(t, s.Apply(tt.action))
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.want, tt.from.After(tt.action))
		})
	}

	s := State{DarkMode: true}
	assert.ErrorIs(t, s.Apply("explode"), ErrUnknownAction)
	assert.Equal(t, State{DarkMode: true}, s)
}

func TestQueryCodec(t *testing.T) {
	for _, s := range All() {
		q, err := url.ParseQuery(s.Encode())
		require.NoError(t, err)
		assert.Equal(t, s, FromQuery(q))
	}

	assert.Equal(t, "dark=1&menu=1", State{MenuOpen: true, DarkMode: true}.Encode())
	assert.Equal(t, State{DarkMode: true}, FromQuery(url.Values{"dark": {"true"}, "menu": {"nope"}}))
	assert.Equal(t, State{}, FromQuery(nil))
}

func TestPathCodec(t *testing.T) {
	want := map[State]string{
		{}:                               "/",
		{DarkMode: true}:                 "/dark/",
		{MenuOpen: true}:                 "/menu/",
		{MenuOpen: true, DarkMode: true}: "/dark/menu/",
	}
	for s, p := range want {
		assert.Equal(t, p, s.Path())
		assert.Equal(t, s, FromPath(p))
	}
	assert.Equal(t, State{DarkMode: true}, FromPath("/blog/dark/index.html"))
}
