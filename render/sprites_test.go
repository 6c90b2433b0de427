package render

import (
	"testing"

	"github.com/lixenwraith/vi-timer/constant"
)

func opaqueCount(s *Sheet, r Rect) int {
	n := 0
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if _, ok := s.Texel(x, y); ok {
				n++
			}
		}
	}
	return n
}

func TestDigitSheet(t *testing.T) {
	s := NewDigitSheet()

	w, h := s.Size()
	if w != constant.SheetGlyphs*constant.CharWidth || h != constant.WiggleCount*constant.CharHeight {
		t.Fatalf("Unexpected sheet size %dx%d", w, h)
	}

	for g := 0; g < constant.SheetGlyphs; g++ {
		for v := 0; v < constant.WiggleCount; v++ {
			if opaqueCount(s, GlyphRect(g, v)) == 0 {
				t.Errorf("Glyph %d wiggle %d is empty", g, v)
			}
		}
	}

	colon := opaqueCount(s, GlyphRect(constant.ColonIndex, 0))
	eight := opaqueCount(s, GlyphRect(8, 0))
	if colon >= eight {
		t.Errorf("Expected colon (%d texels) lighter than eight (%d texels)", colon, eight)
	}
}

func TestWiggleVariantsDiffer(t *testing.T) {
	s := NewDigitSheet()

	same := true
	a, b := GlyphRect(8, 0), GlyphRect(8, 1)
	for y := 0; y < constant.CharHeight && same; y++ {
		for x := 0; x < constant.CharWidth; x++ {
			_, okA := s.Texel(a.X+x, a.Y+y)
			_, okB := s.Texel(b.X+x, b.Y+y)
			if okA != okB {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Expected wiggle variants to differ")
	}

	for v := 0; v < constant.WiggleCount; v++ {
		for y := 0; y < constant.CharHeight; y++ {
			if s := wiggleShift(v, y); s < -1 || s > 1 {
				t.Errorf("wiggleShift(%d, %d) = %d out of range", v, y, s)
			}
		}
	}
}

func TestPengerQuad(t *testing.T) {
	s := NewPengerSheet()
	sw, sh := s.Size()
	frameW := sw / constant.PengerFrames

	src, dst := PengerQuad(s, 100, 40, 0, false)
	if src != (Rect{0, 0, frameW, sh}) {
		t.Errorf("Expected first frame, got %+v", src)
	}
	if dst.X != -frameW || dst.Y != 40-sh {
		t.Errorf("Expected walker off the left edge at the bottom, got %+v", dst)
	}

	// One second = three steps, odd step uses the second frame
	src, dst = PengerQuad(s, 100, 40, 1, false)
	if src.X != frameW {
		t.Errorf("Expected second frame, got %+v", src)
	}
	if dst.X <= -frameW {
		t.Errorf("Expected walker to advance, got %+v", dst)
	}

	// Full minute wraps
	_, wrapped := PengerQuad(s, 100, 40, 60, false)
	if wrapped.X != -frameW {
		t.Errorf("Expected wrap after a minute, got %+v", wrapped)
	}

	flipped, _ := PengerQuad(s, 100, 40, 0, true)
	if flipped.X != frameW || flipped.W != -frameW {
		t.Errorf("Expected mirrored source, got %+v", flipped)
	}

	if opaqueCount(s, Rect{0, 0, sw, sh}) == 0 {
		t.Error("Expected penger sheet to have opaque texels")
	}
}
