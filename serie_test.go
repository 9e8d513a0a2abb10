package rangeplot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValue_Check(t *testing.T) {
	dom := NumberDomain(0, 10)

	assert.NoError(t, NewValue(2.0, 5.0).Check(dom))
	assert.NoError(t, NewValue(5.0, 5.0).Check(dom))
	assert.ErrorIs(t, NewValue(6.0, 5.0).Check(dom), ErrInvalidValue)
}

func TestValue_Within(t *testing.T) {
	dom := NumberDomain(0, 10)

	assert.Equal(t, NewValue(0.0, 10.0), NewValue(-5.0, 15.0).Within(dom))
	assert.Equal(t, NewValue(10.0, 10.0), NewValue(12.0, 15.0).Within(dom))
	assert.Equal(t, NewValue(2.0, 3.0), NewValue(2.0, 3.0).Within(dom))
}

func TestValue_Contains(t *testing.T) {
	var (
		dom = NumberDomain(0, 10)
		v   = NewValue(2.0, 6.0)
	)
	assert.True(t, v.Contains(dom, NumberBin(2, 4, 1)))
	assert.True(t, v.Contains(dom, NumberBin(4, 6, 1)))
	assert.False(t, v.Contains(dom, NumberBin(1, 3, 1)))
	assert.False(t, v.Contains(dom, NumberBin(5, 7, 1)))
}

func TestValue_Time(t *testing.T) {
	var (
		fst = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		dom = TimeDomain(fst, fst.Add(24*time.Hour))
		v   = NewValue(fst.Add(time.Hour), fst.Add(3*time.Hour))
	)
	assert.Equal(t, float64(2*time.Hour), v.Width(dom))
	assert.True(t, v.Equal(dom, NewValue(fst.Add(time.Hour), fst.Add(3*time.Hour))))
	assert.True(t, v.Contains(dom, TimeBin(fst.Add(time.Hour), fst.Add(2*time.Hour), 3)))
}
