package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func newCardFixture() (*surface.OpSurface, *Card) {
	op := surface.NewOpSurface()
	c := NewCard(op, theme.Default(), graphics.RectXYWH(90, 95, 140, 70),
		"Desk lamp", icons.LightOn, icons.LightOff)
	return op, c
}

func TestCardDraw(t *testing.T) {
	op, c := newCardFixture()
	c.Draw()

	bg := op.Ops()[0]
	assert.Equal(t, surface.OpFill, bg.Kind)
	assert.Equal(t, graphics.ColorWhite, bg.Color)

	assert.Equal(t, 1, op.BlitsOf(icons.LightOff), "card starts off")
	assert.Zero(t, op.BlitsOf(icons.LightOn))

	texts := stringOps(op)
	require.NotEmpty(t, texts)
	assert.Equal(t, "Off", texts[len(texts)-1].Text)
}

func TestCardTouchTogglesWithoutFullRepaint(t *testing.T) {
	op, c := newCardFixture()
	c.Draw()
	op.Reset()

	assert.True(t, c.Touch(input.Touch(100, 100)))
	assert.True(t, c.State)
	assert.Equal(t, 1, op.BlitsOf(icons.LightOn))
	assert.Zero(t, op.CountKind(surface.OpFill), "toggle leaves background and title alone")
	texts := stringOps(op)
	require.Len(t, texts, 1)
	assert.Equal(t, "On", texts[0].Text)
}

func TestCardTouchHasNoHitGuard(t *testing.T) {
	op, c := newCardFixture()
	c.Draw()
	op.Reset()

	// The host routes touches; the card itself accepts anything, even a
	// coordinate far outside its rectangle.
	assert.True(t, c.Touch(input.Touch(0, 0)))
	assert.True(t, c.State)
	assert.True(t, c.Touch(input.Touch(239, 239)))
	assert.False(t, c.State)
}

func TestCardTitleWraps(t *testing.T) {
	op := surface.NewOpSurface()
	c := NewCard(op, theme.Default(), graphics.RectXYWH(10, 10, 220, 100),
		"A very long descriptive card title", icons.LightOn, icons.LightOff)
	c.Draw()

	var lines int
	for _, o := range stringOps(op) {
		if o.Text != "Off" {
			lines++
		}
	}
	assert.Greater(t, lines, 1, "long titles wrap over multiple lines")
}
