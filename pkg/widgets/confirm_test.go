package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func newConfirmFixture() (*surface.OpSurface, *ConfirmationView) {
	op := surface.NewOpSurface()
	return op, NewConfirmationView(op, theme.Default())
}

func TestConfirmationViewInactiveIgnoresTouches(t *testing.T) {
	op, v := newConfirmFixture()
	assert.False(t, v.Touch(input.Touch(65, 162)), "inactive view consumes nothing")
	assert.False(t, v.Value)
	assert.Zero(t, op.DrawCalls())
}

func TestConfirmationViewDrawActivatesUnderMute(t *testing.T) {
	op, v := newConfirmFixture()
	v.Draw("Reset everything?")

	assert.True(t, v.Active)
	ops := op.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, surface.OpMute, ops[0].Kind)
	assert.True(t, ops[0].Muted, "repaint starts by muting the display")
	last := ops[len(ops)-1]
	assert.Equal(t, surface.OpMute, last.Kind)
	assert.False(t, last.Muted, "and ends by unmuting")

	var sawMessage bool
	for _, o := range ops {
		if o.Kind == surface.OpString && o.Text == "Reset everything?" {
			sawMessage = true
		}
	}
	assert.True(t, sawMessage)
}

func TestConfirmationViewYes(t *testing.T) {
	_, v := newConfirmFixture()
	v.Draw("Sure?")

	assert.True(t, v.Touch(input.Touch(65, 162)))
	assert.True(t, v.Value)
	assert.False(t, v.Active, "an answer deactivates the view")
}

func TestConfirmationViewNo(t *testing.T) {
	_, v := newConfirmFixture()
	v.Draw("Sure?")

	assert.True(t, v.Touch(input.Touch(175, 162)))
	assert.False(t, v.Value)
	assert.False(t, v.Active)
}

func TestConfirmationViewMissKeepsPromptUp(t *testing.T) {
	_, v := newConfirmFixture()
	v.Draw("Sure?")
	v.Value = true

	assert.False(t, v.Touch(input.Touch(120, 30)), "a miss is not consumed")
	assert.True(t, v.Active, "and the prompt stays up")
	assert.True(t, v.Value, "the recorded answer is untouched")

	// A subsequent hit still works.
	assert.True(t, v.Touch(input.Touch(175, 162)))
	assert.False(t, v.Value)
}

func TestConfirmationViewReactivates(t *testing.T) {
	_, v := newConfirmFixture()
	v.Draw("First?")
	require.True(t, v.Touch(input.Touch(65, 162)))
	require.True(t, v.Value)

	v.Draw("Again?")
	assert.True(t, v.Active)
	assert.True(t, v.Touch(input.Touch(175, 162)))
	assert.False(t, v.Value)
}
