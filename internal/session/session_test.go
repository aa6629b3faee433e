package session

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regiongrow/internal/grower"
)

type recorder struct {
	states []State
}

func (r *recorder) Notify(st State) { r.states = append(r.states, st) }

func newSession(t *testing.T, w, h, n int, seed int64) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Segments = n
	cfg.Seed = seed
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"zero segments", func(c *Config) { c.Segments = 0 }},
		{"too many segments", func(c *Config) { c.Width, c.Height, c.Segments = 2, 2, 5 }},
		{"unknown policy", func(c *Config) { c.Placement = SeedPolicy(9) }},
		{"cell count overflows", func(c *Config) { c.Width, c.Height = math.MaxInt/2, 3 }},
		{"overflow with overwrite", func(c *Config) {
			c.Width, c.Height, c.Placement = 3, math.MaxInt/2, SeedOverwrite
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			s, err := New(cfg)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestOverwritePolicyAllowsMoreSegmentsThanCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Segments = 1, 2, 5
	cfg.Placement = SeedOverwrite
	s, err := New(cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Collisions(), 3)
}

func TestOverwritePolicyLaterSegmentWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Segments = 1, 1, 2
	cfg.Placement = SeedOverwrite
	s, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, []grower.Coord{{X: 0, Y: 0}, {X: 0, Y: 0}}, s.Seeds())
	assert.Equal(t, 1, s.Collisions())
	assert.Equal(t, []int{1}, s.State().Labels)

	steps, err := s.RunToCompletion(context.Background())
	require.NoError(t, err)
	assert.Zero(t, steps)
	assert.Equal(t, []int{1}, s.State().Labels)
}

func TestOverwritePolicyRunsToCompletion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Segments, cfg.Seed = 4, 3, 30, 8
	cfg.Placement = SeedOverwrite
	s, err := New(cfg)
	require.NoError(t, err)
	require.Positive(t, s.Collisions())

	_, err = s.RunToCompletion(context.Background())
	require.NoError(t, err)
	require.True(t, s.Done())

	st := s.State()
	for i, l := range st.Labels {
		assert.NotEqual(t, grower.Unassigned, l, "cell %d", i)
	}
	last := map[grower.Coord]int{}
	for i, c := range s.Seeds() {
		last[c] = i
	}
	for c, seg := range last {
		assert.Equal(t, seg, st.Label(c.X, c.Y), "seed cell %v keeps the last segment drawn onto it", c)
	}
}

func TestScenarioFourByFour(t *testing.T) {
	run := func() State {
		s := newSession(t, 4, 4, 2, 42)
		_, err := s.RunToCompletion(context.Background())
		require.NoError(t, err)
		return s.State()
	}

	first := run()
	require.Len(t, first.Labels, 16)
	for i, l := range first.Labels {
		assert.Contains(t, []int{0, 1}, l, "cell %d", i)
	}
	assert.True(t, first.Done)

	second := run()
	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Channel(NoiseChannel), second.Channel(NoiseChannel))
}

func TestSingleSegmentOwnsEverything(t *testing.T) {
	s := newSession(t, 9, 7, 1, 3)
	steps, err := s.RunToCompletion(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, steps, 9*7)
	for _, l := range s.State().Labels {
		assert.Equal(t, 0, l)
	}
}

func TestSingleCellIsDoneAfterInit(t *testing.T) {
	s := newSession(t, 1, 1, 1, 11)
	assert.True(t, s.Done())
	assert.Equal(t, []int{0}, s.State().Labels)

	steps, err := s.RunToCompletion(context.Background())
	require.NoError(t, err)
	assert.Zero(t, steps)
}

func TestSeedsAreDistinctWithRetry(t *testing.T) {
	s := newSession(t, 3, 3, 9, 5)
	seeds := s.Seeds()
	require.Len(t, seeds, 9)
	seen := map[grower.Coord]bool{}
	for _, c := range seeds {
		assert.False(t, seen[c], "seed %v placed twice", c)
		seen[c] = true
	}
	st := s.State()
	for i, c := range seeds {
		assert.Equal(t, i, st.Label(c.X, c.Y))
	}
	require.NoError(t, s.Step())
	assert.True(t, s.Done(), "a full grid of seeds leaves nothing to grow")
	assert.Equal(t, st.Labels, s.State().Labels)
}

func TestStateIsIdempotentAndIsolated(t *testing.T) {
	s := newSession(t, 16, 12, 3, 8)
	require.NoError(t, s.Step())

	a := s.State()
	b := s.State()
	assert.Equal(t, a, b)

	a.Labels[0] = 99
	a.Channels[NoiseChannel][0] = -5
	c := s.State()
	assert.Equal(t, b, c, "mutating a snapshot must not leak into the session")

	before := slices.Clone(b.Labels)
	require.NoError(t, s.Step())
	assert.Equal(t, before, b.Labels, "snapshots must not change when the session steps")
	assert.NotEqual(t, b.Labels, s.State().Labels)
}

func TestDeterminismAfterSameStepCount(t *testing.T) {
	a := newSession(t, 20, 14, 4, 1234)
	b := newSession(t, 20, 14, 4, 1234)
	for i := 0; i < 10; i++ {
		require.NoError(t, a.Step())
		require.NoError(t, b.Step())
	}
	assert.Equal(t, a.State(), b.State())

	c := newSession(t, 20, 14, 4, 4321)
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Step())
	}
	assert.NotEqual(t, a.State().Labels, c.State().Labels)
}

func TestStepsAreMonotonicAndTerminate(t *testing.T) {
	s := newSession(t, 24, 18, 5, 77)
	prev := s.State().Labels
	for !s.Done() {
		require.NoError(t, s.Step())
		require.LessOrEqual(t, s.Steps(), 24*18)
		cur := s.State().Labels
		for i, l := range prev {
			if l != grower.Unassigned {
				require.Equal(t, l, cur[i], "cell %d relabelled at step %d", i, s.Steps())
			}
		}
		prev = cur
	}
	assert.NotContains(t, prev, grower.Unassigned)
	require.NoError(t, s.Step(), "stepping a finished session is a no-op")
}

func TestResetRestartsDeterministically(t *testing.T) {
	s := newSession(t, 12, 12, 3, 5)
	_, err := s.RunToCompletion(context.Background())
	require.NoError(t, err)
	done := s.State()

	s.Reset(6)
	assert.Equal(t, int64(6), s.Config().Seed)
	assert.Zero(t, s.Steps())
	assert.False(t, s.Done())

	s.Reset(5)
	_, err = s.RunToCompletion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, done, s.State())
}

func TestRunToCompletionHonoursCancellation(t *testing.T) {
	s := newSession(t, 32, 32, 2, 9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps, err := s.RunToCompletion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
	assert.False(t, s.Done())

	_, err = s.RunToCompletion(context.Background())
	require.NoError(t, err, "a cancelled run can be resumed")
	assert.True(t, s.Done())
}

func TestObservers(t *testing.T) {
	s := newSession(t, 6, 6, 2, 21)
	rec := &recorder{}
	other := &recorder{}
	s.AddObserver(rec)
	s.AddObserver(rec)
	s.AddObserver(other)

	require.NoError(t, s.Step())
	require.Len(t, rec.states, 1, "duplicate registration must not double-notify")
	assert.Equal(t, 1, rec.states[0].Steps)

	s.RemoveObserver(other)
	_, err := s.RunToCompletion(context.Background())
	require.NoError(t, err)
	require.Len(t, rec.states, 2, "a batch run notifies once")
	assert.True(t, rec.states[1].Done)
	assert.Len(t, other.states, 1)

	require.NoError(t, s.Step())
	assert.Len(t, rec.states, 2, "a step on a finished session is silent")

	s.Reset(22)
	require.Len(t, rec.states, 3)
	assert.Zero(t, rec.states[2].Steps)
}

func TestParseSeedPolicy(t *testing.T) {
	p, err := ParseSeedPolicy(" Overwrite ")
	require.NoError(t, err)
	assert.Equal(t, SeedOverwrite, p)
	assert.Equal(t, "retry", SeedRetry.String())

	_, err = ParseSeedPolicy("skip")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNoiseChannelMatchesField(t *testing.T) {
	s := newSession(t, 10, 5, 2, 2)
	field := s.NoiseField()
	assert.True(t, slices.Equal(field.Cells(), s.State().Channel(NoiseChannel)))
	assert.Nil(t, s.State().Channel("Height"))
}
