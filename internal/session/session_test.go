package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_StartsInactive(t *testing.T) {
	state := NewState()

	_, active := state.Snapshot()
	assert.False(t, active)
}

func TestState_SetAndSnapshot(t *testing.T) {
	state := NewState()
	season, episode := 2, 5

	state.Set(Session{TMDBID: 1396, Kind: KindEpisode, Season: &season, Episode: &episode})

	sess, active := state.Snapshot()
	assert.True(t, active)
	assert.Equal(t, int64(1396), sess.TMDBID)
	assert.Equal(t, KindEpisode, sess.Kind)
	assert.Equal(t, 2, *sess.Season)
	assert.Equal(t, 5, *sess.Episode)
}

func TestState_LastWriteWins(t *testing.T) {
	state := NewState()

	state.Set(Session{TMDBID: 603, Kind: KindMovie})
	state.Set(Session{TMDBID: 1396, Kind: KindTV})

	sess, active := state.Snapshot()
	assert.True(t, active)
	assert.Equal(t, int64(1396), sess.TMDBID)
	assert.Equal(t, KindTV, sess.Kind)
}

func TestState_Clear(t *testing.T) {
	state := NewState()
	state.Set(Session{TMDBID: 603, Kind: KindMovie})

	state.Clear()

	sess, active := state.Snapshot()
	assert.False(t, active)
	assert.Equal(t, Session{}, sess)
}
