package maybe_test

import (
	"testing"

	. "github.com/npillmayer/cow/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7)
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) not to match Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	matchedNothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing not to match Just, got %d", w)
	case m.Nothing():
		matchedNothing = true
	}
	if !matchedNothing {
		t.Error("expected Nothing to match m.Nothing()")
	}
}

func TestMaybeGet(t *testing.T) {
	v, ok := Just("a").Get()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = Nothing[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestMaybeWithDefault(t *testing.T) {
	assert.Equal(t, 7, Just(7).WithDefault(100))
	assert.Equal(t, 100, Nothing[int]().WithDefault(100))
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	v, ok := Just(7).Map(double).Get()
	if !ok || v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d/%v", v, ok)
	}
	_, ok = Nothing[int]().Map(double).Get()
	if ok {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}
