package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func TestButtonDraw(t *testing.T) {
	op := surface.NewOpSurface()
	b := NewButton(op, theme.Default(), graphics.RectXYWH(20, 140, 90, 45), "Yes")
	b.Draw()

	assert.Equal(t, 5, op.CountKind(surface.OpFill), "background plus four frame edges")
	ss := stringOps(op)
	require.Len(t, ss, 1)
	assert.Equal(t, "Yes", ss[0].Text)
	assert.Equal(t, 20, ss[0].X)
	assert.Equal(t, 140+45/2-12, ss[0].Y)
	assert.Equal(t, 90, ss[0].W, "label centers across the full button width")

	bg := op.Ops()[0]
	assert.Equal(t, graphics.Darken(theme.Default().Color(theme.RoleUI)), bg.Color)
}

func TestButtonTouch(t *testing.T) {
	op := surface.NewOpSurface()
	b := NewButton(op, theme.Default(), graphics.RectXYWH(20, 140, 90, 45), "Yes")

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 65, 162, true},
		{"inside corner", 20, 140, true},
		{"margin left", 11, 162, true},
		{"margin above", 65, 131, true},
		{"past margin left", 9, 162, false},
		{"past margin right", 120, 162, false},
		{"far away", 200, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Touch(input.Touch(tt.x, tt.y)))
		})
	}
}
