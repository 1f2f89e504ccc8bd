package surface

import "github.com/go-drift/wear/pkg/graphics"

// OpKind identifies a recorded surface operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpClear
	OpBlit
	OpSetColor
	OpSetFont
	OpString
	OpMute
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpClear:
		return "clear"
	case OpBlit:
		return "blit"
	case OpSetColor:
		return "set-color"
	case OpSetFont:
		return "set-font"
	case OpString:
		return "string"
	case OpMute:
		return "mute"
	default:
		return "unknown"
	}
}

// Op is one recorded call against an OpSurface.
type Op struct {
	Kind   OpKind
	X, Y   int
	W, H   int
	Color  graphics.Color
	BG     graphics.Color
	Hi     graphics.Color
	Text   string
	Font   Font
	Bitmap *graphics.Bitmap
	Muted  bool
}

// OpSurface records every call made against it instead of painting. Tests
// assert on the recorded ops, and in particular on DrawCalls staying at
// zero across no-change updates. It implements Display so modal widgets
// can be exercised too.
//
// Wrap uses a fixed-advance text model (half the font height per rune) so
// wrap-dependent layout is deterministic without real font metrics.
type OpSurface struct {
	ops  []Op
	font Font
	fg   graphics.Color
	bg   graphics.Color
}

var _ Display = (*OpSurface)(nil)

// NewOpSurface returns an empty recording surface.
func NewOpSurface() *OpSurface {
	return &OpSurface{}
}

func (s *OpSurface) Fill(c graphics.Color, x, y, w, h int) {
	s.ops = append(s.ops, Op{Kind: OpFill, Color: c, X: x, Y: y, W: w, H: h})
}

func (s *OpSurface) Clear() {
	s.ops = append(s.ops, Op{Kind: OpClear})
}

func (s *OpSurface) Blit(bm *graphics.Bitmap, x, y int, fg, bg, hi graphics.Color) {
	s.ops = append(s.ops, Op{Kind: OpBlit, Bitmap: bm, X: x, Y: y, Color: fg, BG: bg, Hi: hi})
}

func (s *OpSurface) SetColor(fg, bg graphics.Color) {
	s.fg, s.bg = fg, bg
	s.ops = append(s.ops, Op{Kind: OpSetColor, Color: fg, BG: bg})
}

func (s *OpSurface) SetFont(f Font) {
	s.font = f
	s.ops = append(s.ops, Op{Kind: OpSetFont, Font: f})
}

func (s *OpSurface) String(text string, x, y, width int) {
	s.ops = append(s.ops, Op{Kind: OpString, Text: text, X: x, Y: y, W: width, Color: s.fg, BG: s.bg, Font: s.font})
}

func (s *OpSurface) Wrap(text string, width int) []int {
	adv := s.font.Height() / 2
	return wrapOffsets(text, width, func(chunk string) int {
		return len([]rune(chunk)) * adv
	})
}

func (s *OpSurface) Mute(muted bool) {
	s.ops = append(s.ops, Op{Kind: OpMute, Muted: muted})
}

// Ops returns all recorded operations in call order.
func (s *OpSurface) Ops() []Op {
	return s.ops
}

// Reset discards the recorded operations (state calls included).
func (s *OpSurface) Reset() {
	s.ops = s.ops[:0]
}

// DrawCalls counts operations that touch pixels: fills, clears, blits and
// strings. State calls (SetColor, SetFont, Mute) are free on hardware and
// excluded, matching the lazy-update contract the widgets promise.
func (s *OpSurface) DrawCalls() int {
	n := 0
	for _, op := range s.ops {
		switch op.Kind {
		case OpFill, OpClear, OpBlit, OpString:
			n++
		}
	}
	return n
}

// CountKind counts recorded operations of one kind.
func (s *OpSurface) CountKind(k OpKind) int {
	n := 0
	for _, op := range s.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// BlitsOf counts blits of a specific bitmap, useful for asserting icon
// redraw policy.
func (s *OpSurface) BlitsOf(bm *graphics.Bitmap) int {
	n := 0
	for _, op := range s.ops {
		if op.Kind == OpBlit && op.Bitmap == bm {
			n++
		}
	}
	return n
}
