package rangeplot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrush_Hit(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
		value = NewValue(20.0, 80.0)
	)
	tests := []struct {
		px   float64
		want Edge
	}{
		{px: 80, want: EdgeLo},
		{px: 74, want: EdgeLo},
		{px: 86, want: EdgeLo},
		{px: 320, want: EdgeHi},
		{px: 314, want: EdgeHi},
		{px: 200, want: EdgeWhole},
		{px: 40, want: EdgeNone},
		{px: 380, want: EdgeNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Hit(tt.px, value, scale), "pixel %f", tt.px)
	}
}

func TestBrush_HitCollapsed(t *testing.T) {
	var (
		b     = NewBrush[float64](10)
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	assert.Equal(t, EdgeLo, b.Hit(200, NewValue(50.0, 50.0), scale))
}

func TestBrush_DragCollapsed(t *testing.T) {
	scale := mustBuild(t, NumberDomain(0, 100), 400)
	t.Run("min", func(t *testing.T) {
		var b Brush[float64]
		require.True(t, b.PointerDown(0, NewValue(0.0, 0.0), scale))
		v, ok := b.PointerMove(100)
		require.True(t, ok)
		assert.Equal(t, EdgeHi, b.Edge())
		assert.Equal(t, NewValue(0.0, 25.0), v)
	})
	t.Run("max", func(t *testing.T) {
		var b Brush[float64]
		require.True(t, b.PointerDown(400, NewValue(100.0, 100.0), scale))
		v, ok := b.PointerMove(300)
		require.True(t, ok)
		assert.Equal(t, EdgeLo, b.Edge())
		assert.Equal(t, NewValue(75.0, 100.0), v)
	})
	t.Run("middle", func(t *testing.T) {
		var b Brush[float64]
		require.True(t, b.PointerDown(200, NewValue(50.0, 50.0), scale))
		v, _ := b.PointerMove(240)
		assert.Equal(t, NewValue(50.0, 60.0), v)
		v, _ = b.PointerMove(160)
		assert.Equal(t, NewValue(50.0, 50.0), v, "direction is fixed by the first move")
	})
}

func TestBrush_DragLo(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(82, NewValue(20.0, 80.0), scale))
	assert.Equal(t, EdgeLo, b.Edge())

	v, ok := b.PointerMove(scale.Scale(50))
	require.True(t, ok)
	assert.Equal(t, NewValue(50.0, 80.0), v)

	v, ok = b.PointerMove(scale.Scale(90))
	require.True(t, ok)
	assert.Equal(t, NewValue(80.0, 80.0), v)

	v, ok = b.PointerMove(-50)
	require.True(t, ok)
	assert.Equal(t, NewValue(0.0, 80.0), v)

	v, moved := b.PointerUp()
	assert.True(t, moved)
	assert.Equal(t, NewValue(0.0, 80.0), v)
	assert.False(t, b.Active())
}

func TestBrush_DragHi(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(320, NewValue(20.0, 80.0), scale))
	assert.Equal(t, EdgeHi, b.Edge())

	v, _ := b.PointerMove(scale.Scale(10))
	assert.Equal(t, NewValue(20.0, 20.0), v)

	v, _ = b.PointerMove(1000)
	assert.Equal(t, NewValue(20.0, 100.0), v)
}

func TestBrush_DragWhole(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(120, NewValue(20.0, 40.0), scale))
	assert.Equal(t, EdgeWhole, b.Edge())

	v, _ := b.PointerMove(200)
	assert.Equal(t, NewValue(40.0, 60.0), v)

	v, _ = b.PointerMove(400)
	assert.Equal(t, NewValue(80.0, 100.0), v)

	v, _ = b.PointerMove(-100)
	assert.Equal(t, NewValue(0.0, 20.0), v)

	v, _ = b.PointerMove(124)
	assert.Equal(t, NewValue(21.0, 41.0), v)
}

func TestBrush_DragWholeFullDomain(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(200, NewValue(0.0, 100.0), scale))

	v, _ := b.PointerMove(300)
	assert.Equal(t, NewValue(0.0, 100.0), v)
}

func TestBrush_Miss(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	assert.False(t, b.PointerDown(10, NewValue(20.0, 80.0), scale))
	assert.False(t, b.Active())

	_, ok := b.PointerMove(100)
	assert.False(t, ok)

	_, ok = b.PointerUp()
	assert.False(t, ok)
}

func TestBrush_PointerUpTwice(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(80, NewValue(20.0, 80.0), scale))
	b.PointerMove(100)

	_, moved := b.PointerUp()
	assert.True(t, moved)

	_, moved = b.PointerUp()
	assert.False(t, moved)
}

func TestBrush_PointerUpWithoutMove(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(80, NewValue(20.0, 80.0), scale))

	_, moved := b.PointerUp()
	assert.False(t, moved)
	assert.False(t, b.Active())
}

func TestBrush_Cancel(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(80, NewValue(20.0, 80.0), scale))
	b.PointerMove(100)
	assert.True(t, b.Moved())

	b.Cancel()
	assert.False(t, b.Active())
	assert.Equal(t, EdgeNone, b.Edge())

	_, moved := b.PointerUp()
	assert.False(t, moved)
}

func TestBrush_SecondPointerDownIgnored(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 400)
	)
	require.True(t, b.PointerDown(80, NewValue(20.0, 80.0), scale))
	assert.False(t, b.PointerDown(320, NewValue(20.0, 80.0), scale))
	assert.Equal(t, EdgeLo, b.Edge())
}

func TestBrush_ZeroWidth(t *testing.T) {
	var (
		b     Brush[float64]
		scale = mustBuild(t, NumberDomain(0, 100), 0)
	)
	require.True(t, b.PointerDown(0, NewValue(20.0, 80.0), scale))

	v, ok := b.PointerMove(30)
	require.True(t, ok)
	assert.Equal(t, NewValue(0.0, 80.0), v)
}

func TestBrush_Sequences(t *testing.T) {
	var (
		rnd   = rand.New(rand.NewSource(42))
		dom   = NumberDomain(-50, 150)
		scale = mustBuild(t, dom, 500)
	)
	for i := 0; i < 200; i++ {
		var (
			b     Brush[float64]
			lo    = dom.Min() + rnd.Float64()*dom.Extend()
			hi    = lo + rnd.Float64()*(dom.Max()-lo)
			value = NewValue(lo, hi)
			px    = []float64{scale.Scale(lo), scale.Scale(hi), (scale.Scale(lo) + scale.Scale(hi)) / 2}
		)
		if !b.PointerDown(px[rnd.Intn(len(px))], value, scale) {
			continue
		}
		edge := b.Edge()
		for j := 0; j < 20; j++ {
			v, ok := b.PointerMove(rnd.Float64()*800 - 150)
			require.True(t, ok)
			assert.LessOrEqual(t, v.Lo, v.Hi)
			assert.GreaterOrEqual(t, v.Lo, dom.Min())
			assert.LessOrEqual(t, v.Hi, dom.Max())
			if edge == EdgeWhole {
				assert.InDelta(t, value.Width(dom), v.Width(dom), 1e-9)
			}
		}
		b.PointerUp()
	}
}

func TestBrush_SequencesTime(t *testing.T) {
	var (
		rnd   = rand.New(rand.NewSource(7))
		start = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
		end   = start.AddDate(5, 0, 0)
		dom   = TimeDomain(start, end)
		scale = mustBuild(t, dom, 777)
		span  = int64(end.Sub(start))
	)
	for i := 0; i < 200; i++ {
		var (
			b     Brush[time.Time]
			lo    = start.Add(time.Duration(rnd.Int63n(span)))
			hi    = lo.Add(time.Duration(rnd.Int63n(int64(end.Sub(lo)) + 1)))
			value = NewValue(lo, hi)
			px    = (scale.Scale(lo) + scale.Scale(hi)) / 2
		)
		if !b.PointerDown(px, value, scale) || b.Edge() != EdgeWhole {
			continue
		}
		for j := 0; j < 20; j++ {
			v, ok := b.PointerMove(rnd.Float64()*1200 - 200)
			require.True(t, ok)
			assert.Equal(t, hi.Sub(lo), v.Hi.Sub(v.Lo))
			assert.False(t, v.Lo.Before(start))
			assert.False(t, v.Hi.After(end))
		}
		b.PointerUp()
	}
}
