package once_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvzqz/fmty/combine"
	"github.com/nvzqz/fmty/once"
	"github.com/nvzqz/fmty/render"
)

func TestSeqRendersOnce(t *testing.T) {
	r := once.Seq(slices.Values([]string{"hola", "mundo"}))

	first, err := render.String(r)
	require.NoError(t, err)
	assert.Equal(t, "holamundo", first)

	for i := 0; i < 3; i++ {
		s, err := render.String(r)
		require.NoError(t, err)
		assert.Empty(t, s, "render %d after consumption should be empty", i+2)
	}
}

func TestSeqDrivesProducerOnce(t *testing.T) {
	starts := 0
	seq := func(yield func(string) bool) {
		starts++
		yield("item")
	}

	r := once.Seq(seq)
	render.MustString(r)
	render.MustString(r)
	render.MustString(r)

	assert.Equal(t, 1, starts, "the sequence must never be restarted")
}

func TestFunc(t *testing.T) {
	calls := 0
	r := once.Func(func() any {
		calls++
		return "computed"
	})

	first, err := render.String(r)
	require.NoError(t, err)
	assert.Equal(t, "computed", first)

	second, err := render.String(r)
	require.NoError(t, err)
	assert.Empty(t, second)

	assert.Equal(t, 1, calls)
}

func TestJoin(t *testing.T) {
	r := once.Join(slices.Values([]string{"hola", "mundo"}), " ")

	assert.Equal(t, "hola mundo", render.MustString(r))
	assert.Empty(t, render.MustString(r))
}

func TestJoinSingleItemNoSeparator(t *testing.T) {
	r := once.Join(slices.Values([]string{"solo"}), ", ")
	assert.Equal(t, "solo", render.MustString(r))
}

func TestCSV(t *testing.T) {
	r := once.CSV(slices.Values([]string{"a", "b", "c"}))
	assert.Equal(t, "a, b, c", render.MustString(r))
	assert.Empty(t, render.MustString(r))
}

func TestConcatMap(t *testing.T) {
	r := once.ConcatMap(slices.Values([]int{1, 2, 3}), func(n int) render.Renderable {
		return render.Value(n * 10)
	})
	assert.Equal(t, "102030", render.MustString(r))
	assert.Empty(t, render.MustString(r))
}

func TestJoinMap(t *testing.T) {
	r := once.JoinMap(slices.Values([]string{"a", "b"}), "-", func(s string) render.Renderable {
		return combine.QuoteSingle(render.Text(s))
	})
	assert.Equal(t, "'a'-'b'", render.MustString(r))
	assert.Empty(t, render.MustString(r))
}

func TestReentrantRenderSeesEmpty(t *testing.T) {
	// The sequence holds a back reference to the wrapper it lives in, so
	// driving it re-enters Render on that same wrapper mid-extraction.
	var wrapper render.Renderable

	seq := func(yield func(string) bool) {
		inner, err := render.String(wrapper)
		require.NoError(t, err, "reentrant render must succeed")
		if !yield("outer[" + inner + "]") {
			return
		}
		yield("tail")
	}
	wrapper = once.Seq(seq)

	first, err := render.String(wrapper)
	require.NoError(t, err)
	assert.Equal(t, "outer[]tail", first, "reentrant render must observe an empty slot")

	second, err := render.String(wrapper)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestConsumedEvenWhenSinkFails(t *testing.T) {
	sinkErr := errors.New("sink closed")
	r := once.Seq(slices.Values([]string{"hola"}))

	err := r.Render(failSink{err: sinkErr})
	assert.Equal(t, sinkErr, err, "sink error must propagate verbatim")

	// The payload was extracted before the failure; no retry happens.
	assert.Empty(t, render.MustString(r))
}

func TestNestsInsidePureCombinators(t *testing.T) {
	r := combine.Concat(
		render.Text("<"),
		once.Seq(slices.Values([]string{"x", "y"})),
		render.Text(">"),
	)

	assert.Equal(t, "<xy>", render.MustString(r))
	assert.Equal(t, "<>", render.MustString(r), "pure siblings still render after consumption")
}

type failSink struct{ err error }

func (s failSink) WriteString(string) (int, error) { return 0, s.err }
