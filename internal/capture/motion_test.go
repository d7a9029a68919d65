package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestNewMotionDetector(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	if md == nil {
		t.Fatal("NewMotionDetector returned nil")
	}
	if md.threshold != 1.0 {
		t.Errorf("threshold = %f, want 1.0", md.threshold)
	}
	if md.initialized {
		t.Error("detector should not be initialized before the first frame")
	}
}

func TestMotionDetector_StillScene(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	// An empty room: two identical frames
	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	// The first frame only seeds the reference
	detected, changePercent := md.Detect(&frame1)
	if detected {
		t.Error("seed frame must not report motion")
	}
	if changePercent != 0 {
		t.Errorf("seed frame changePercent = %f, want 0", changePercent)
	}

	// A still scene must keep the pipeline in idle mode
	detected, changePercent = md.Detect(&frame2)
	if detected {
		t.Errorf("still scene reported motion, changePercent = %f", changePercent)
	}
}

func TestMotionDetector_SceneChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	dark := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer dark.Close()

	bright := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer bright.Close()
	bright.SetTo(gocv.NewScalar(255, 255, 255, 0))

	md.Detect(&dark)

	// A person stepping into frame changes most of the pixels
	detected, changePercent := md.Detect(&bright)
	if !detected {
		t.Errorf("full scene change not detected, changePercent = %f", changePercent)
	}
	if changePercent < 50.0 {
		t.Errorf("changePercent = %f, want > 50 when every pixel changes", changePercent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	md.Detect(&frame)
	if !md.initialized {
		t.Error("detector should be initialized after the first Detect")
	}

	md.Reset()
	if md.initialized {
		t.Error("Reset should drop the reference frame")
	}
	if !md.prevGray.Empty() {
		t.Error("Reset should release the previous gray frame")
	}
}

func TestMotionDetector_SetThreshold(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.SetThreshold(5.0)
	if md.threshold != 5.0 {
		t.Errorf("threshold = %f, want 5.0", md.threshold)
	}

	// Zero and negative thresholds are ignored
	md.SetThreshold(0)
	md.SetThreshold(-1.0)
	if md.threshold != 5.0 {
		t.Errorf("threshold = %f after invalid values, want 5.0", md.threshold)
	}
}

func TestMotionDetector_CloseTwice(t *testing.T) {
	md := NewMotionDetector(1.0)

	md.Close()
	md.Close() // must not panic
}

func TestMotionDetector_DetectAfterClose(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	md.Detect(&frame)
	md.Close()

	// Detect after Close re-seeds instead of failing
	if detected, _ := md.Detect(&frame); detected {
		t.Error("first frame after Close must not report motion")
	}
}
