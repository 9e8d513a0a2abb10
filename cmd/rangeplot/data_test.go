package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestReadPoints(t *testing.T) {
	file := writeFile(t, t.TempDir(), "serie.csv", "x,y\n0,1\n5,\n10,3.5\n")

	points, err := readPoints(file, parseNumber)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 1.0, points[0].Y)
	assert.True(t, math.IsNaN(points[1].Y))
	assert.Equal(t, 3.5, points[2].Y)
}

func TestReadPoints_Time(t *testing.T) {
	file := writeFile(t, t.TempDir(), "serie.csv", "x,y\n2024-01-01 10:00:00,4\n")
	k, err := timeKind("%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)

	points, err := readPoints(file, k.parse)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), points[0].X)
}

func TestReadBins(t *testing.T) {
	file := writeFile(t, t.TempDir(), "bins.csv", "x0,x1,count\n0,10,4\n10,20,7\n")

	bins, err := readBins(file, parseNumber)
	require.NoError(t, err)
	require.Len(t, bins, 2)
	assert.Equal(t, 10.0, bins[1].X0)
	assert.Equal(t, 20.0, bins[1].X1)
	assert.Equal(t, 7.0, bins[1].Count)
}

func TestReadRows_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := readBins(writeFile(t, dir, "short.csv", "x0,x1,count\n0,10\n"), parseNumber)
	assert.ErrorIs(t, err, errColumns)

	_, err = readPoints(writeFile(t, dir, "nan.csv", "x,y\nabc,1\n"), parseNumber)
	assert.ErrorContains(t, err, "nan.csv:2")

	points, err := readPoints(writeFile(t, dir, "empty.csv", ""), parseNumber)
	assert.NoError(t, err)
	assert.Empty(t, points)

	_, err = readPoints(filepath.Join(dir, "missing.csv"), parseNumber)
	assert.Error(t, err)
}
