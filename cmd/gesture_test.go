package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oranolio956/qa-automation-framework-sub005/pkg/gesture"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("100,1500")
	require.NoError(t, err)
	assert.Equal(t, gesture.Vector2D{X: 100, Y: 1500}, p)

	p, err = parsePoint(" 12.5 , 0.25 ")
	require.NoError(t, err)
	assert.Equal(t, gesture.Vector2D{X: 12.5, Y: 0.25}, p)

	_, err = parsePoint("100")
	assert.Error(t, err)
	_, err = parsePoint("a,b")
	assert.Error(t, err)
}

func TestParseBounds(t *testing.T) {
	b, err := parseBounds("1080x1920")
	require.NoError(t, err)
	assert.Equal(t, gesture.Bounds{Width: 1080, Height: 1920}, b)

	b, err = parseBounds("720X1600")
	require.NoError(t, err)
	assert.Equal(t, gesture.Bounds{Width: 720, Height: 1600}, b)

	_, err = parseBounds("1080")
	assert.Error(t, err)
	_, err = parseBounds("-1x100")
	assert.Error(t, err)
}
