package assets

import (
	"image"
	"testing"
)

func TestAgentSheet(t *testing.T) {
	img := AgentSheet()
	if got, want := img.Bounds(), image.Rect(0, 0, FrameSize*SheetFrames, FrameSize); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	for f := 0; f < SheetFrames; f++ {
		r := FrameRect(0, f)
		if _, _, _, a := img.At(r.Min.X+FrameSize/2, r.Min.Y+FrameSize/2).RGBA(); a == 0 {
			t.Fatalf("frame %d: centre is transparent", f)
		}
		if _, _, _, a := img.At(r.Min.X, r.Min.Y).RGBA(); a != 0 {
			t.Fatalf("frame %d: corner is opaque", f)
		}
	}
}

func TestFrameRect(t *testing.T) {
	if got, want := FrameRect(1, 3), image.Rect(72, 24, 96, 48); got != want {
		t.Fatalf("FrameRect(1,3) = %v, want %v", got, want)
	}
}
