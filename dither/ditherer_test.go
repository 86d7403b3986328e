package dither

import (
	"errors"
	"image"
	"slices"
	"testing"

	"stipple/drawable"
	"stipple/pixel"
)

var origin = drawable.TopLeft(image.Pt(0, 0))

func loaded(t *testing.T, p *picture, opts ...Option) *Ditherer {
	t.Helper()
	d := New(p, opts...)
	d.Register()
	d.Load()
	return d
}

func TestDithererRevealsOpaqueSquare(t *testing.T) {
	p := &picture{img: solid(4, 4, opaqueRed)}
	d := loaded(t, p, WithDirection(Unbiased), WithRand(seeded(1)))

	if p.regs != 1 {
		t.Errorf("Register forwarded %d times, want 1", p.regs)
	}
	if d.State() != drawable.Working {
		t.Errorf("State() = %v before the first step, want %v", d.State(), drawable.Working)
	}

	var tgt memTarget
	if err := d.Draw(&tgt, origin, drawable.Main); err != nil {
		t.Fatal(err)
	}
	if len(tgt.copies) != 0 {
		t.Fatalf("idle ditherer drew %d times", len(tgt.copies))
	}

	d.Step()
	if d.Phase() != RevealingIn {
		t.Fatalf("Phase() = %v after step, want %v", d.Phase(), RevealingIn)
	}

	frames := 0
	for ; !d.FullyRevealed() && frames < 1000; frames++ {
		if err := d.Draw(&tgt, origin, drawable.Main); err != nil {
			t.Fatalf("frame %d: %v", frames, err)
		}
		d.Update(1.0 / 60)
	}
	if !d.FullyRevealed() {
		t.Fatal("never fully revealed")
	}
	if tgt.textures != 1 {
		t.Errorf("composited frames created %d textures, want 1", tgt.textures)
	}

	var final memTarget
	if err := d.Draw(&final, origin, drawable.Main); err != nil {
		t.Fatal(err)
	}
	if string(final.last) != string(p.img.Pix) {
		t.Errorf("revealed frame = %v, want source pixels %v", final.last, p.img.Pix)
	}
	if len(final.copies) != 1 || final.copies[0] != image.Rect(0, 0, 4, 4) {
		t.Errorf("copies = %v, want one at 4x4", final.copies)
	}
}

func TestDithererShownThenHidden(t *testing.T) {
	p := &picture{img: solid(8, 6, opaqueRed)}
	d := loaded(t, p, Shown(), WithRand(seeded(2)))

	if !d.FullyRevealed() {
		t.Fatal("Shown() ditherer not revealed after load")
	}

	d.Step()
	if d.Phase() != HidingOut || p.steps != 1 {
		t.Fatalf("after step: phase %v, inner steps %d; want %v, 1", d.Phase(), p.steps, HidingOut)
	}

	for i := 0; i < 1000 && d.State() != drawable.Hidden; i++ {
		d.Update(1.0 / 30)
	}
	if d.State() != drawable.Hidden {
		t.Fatalf("State() = %v, want %v", d.State(), drawable.Hidden)
	}

	var tgt memTarget
	if err := d.Draw(&tgt, origin, drawable.Main); err != nil {
		t.Fatal(err)
	}
	if len(tgt.copies)+len(tgt.fills) != 0 {
		t.Errorf("hidden ditherer drew %d copies and %d fills", len(tgt.copies), len(tgt.fills))
	}

	d.Step()
	if p.steps != 1 {
		t.Errorf("stepping while hidden reached the content again")
	}
}

func TestDithererNotesShowsIdle(t *testing.T) {
	p := &picture{img: solid(2, 2, opaqueRed)}
	d := loaded(t, p, WithRand(seeded(3)))

	var tgt memTarget
	if err := d.Draw(&tgt, origin, drawable.NotesView); err != nil {
		t.Fatal(err)
	}
	if len(tgt.copies) != 1 {
		t.Fatalf("notes view drew %d copies, want 1", len(tgt.copies))
	}
	// Gray tint at half strength: 255 - 0.5*(255 - 0.5*85).
	for i := 0; i < len(tgt.last); i += 4 {
		px := tgt.last[i : i+4]
		if px[0] != 148 || px[1] != 148 || px[2] != 148 || px[3] != 127 {
			t.Fatalf("pixel %d = %v, want [148 148 148 127]", i/4, px)
		}
	}
}

func TestDithererUnloadedSource(t *testing.T) {
	p := &picture{failed: true}
	d := loaded(t, p)

	if d.Field() != nil {
		t.Error("field built for content that failed to load")
	}

	d.Step()
	var tgt memTarget
	if err := d.Draw(&tgt, drawable.Center(image.Pt(50, 50)), drawable.Main); err != nil {
		t.Fatal(err)
	}
	if len(tgt.fills) != 1 || tgt.fills[0] != image.Rect(0, 0, 100, 100) {
		t.Errorf("fills = %v, want the placeholder at 100x100", tgt.fills)
	}
}

func TestDithererEmptyImage(t *testing.T) {
	p := &picture{img: pixel.New(0, 0)}
	d := loaded(t, p)
	d.Step()

	var tgt memTarget
	if err := d.Draw(&tgt, origin, drawable.Main); err != nil {
		t.Fatal(err)
	}
	if tgt.textures != 0 {
		t.Errorf("empty image created %d textures", tgt.textures)
	}
}

func TestDithererDrawError(t *testing.T) {
	errBackend := errors.New("device lost")
	p := &picture{img: solid(16, 16, opaqueRed)}
	d := loaded(t, p, WithRand(seeded(4)))
	d.Step()
	d.Update(0.01)

	err := d.Draw(&memTarget{copyErr: errBackend}, origin, drawable.Main)
	if !errors.Is(err, errBackend) {
		t.Errorf("Draw() error = %v, want wrapping %v", err, errBackend)
	}
}

func TestDithererRestart(t *testing.T) {
	p := &picture{img: solid(5, 5, opaqueRed)}
	d := loaded(t, p, WithRand(seeded(5)))
	d.BeginReveal()
	d.Update(5)
	d.BeginHide()
	d.Update(5)

	field := d.Field()
	d.Restart()
	tr := d.Transition()
	if tr.Phase != Idle || tr.InElapsed != 0 || tr.OutElapsed != 0 {
		t.Errorf("after Restart: %+v", tr)
	}
	if tr.MaxTime != field.MaxTime || d.Field() != field {
		t.Error("Restart rebuilt the field")
	}
}

func TestDithererMetricOption(t *testing.T) {
	img := checkerboard(12, 12, 6)
	d := loaded(t, &picture{img: img}, WithMetric(ColorDeviation), WithDirection(TopToBottom), WithRand(seeded(6)))
	want := Builder{Metric: ColorDeviation, Direction: TopToBottom, Rand: seeded(6)}.Build(img)

	if got := d.Field(); got.MaxTime != want.MaxTime || !slices.Equal(got.Times, want.Times) {
		t.Error("options did not reach the field builder")
	}
}
