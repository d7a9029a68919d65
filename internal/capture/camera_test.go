package capture

import (
	"errors"
	"testing"
)

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera(0)

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}
	if got := cam.FPS(); got != DefaultFPS {
		t.Errorf("FPS() = %d, want %d before the pipeline adjusts it", got, DefaultFPS)
	}
	if cam.IsOpen() {
		t.Error("camera should not be open before Open()")
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(0)

	// The pipeline toggles between its idle and active rates
	cam.SetFPS(15)
	if got := cam.FPS(); got != 15 {
		t.Errorf("FPS() = %d, want 15", got)
	}
	cam.SetFPS(5)
	if got := cam.FPS(); got != 5 {
		t.Errorf("FPS() = %d, want 5", got)
	}

	// Zero and negative rates are ignored
	cam.SetFPS(0)
	if got := cam.FPS(); got != 5 {
		t.Errorf("FPS() = %d after SetFPS(0), want 5", got)
	}
	cam.SetFPS(-15)
	if got := cam.FPS(); got != 5 {
		t.Errorf("FPS() = %d after SetFPS(-15), want 5", got)
	}
}

func TestCamera_ReadFrame_NotOpen(t *testing.T) {
	cam := NewCamera(0)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() on a closed camera: got %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpen(t *testing.T) {
	cam := NewCamera(0)

	// Closing a camera that was never opened is a no-op
	if err := cam.Close(); err != nil {
		t.Errorf("Close() before Open() returned %v", err)
	}
}

func TestCamera_OpenReadClose(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that needs camera hardware")
	}

	cam := NewCamera(0)

	if err := cam.Open(); err != nil {
		t.Skipf("camera not available: %v", err)
	}
	if !cam.IsOpen() {
		t.Error("IsOpen() should report true after Open()")
	}

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if frame.Empty() {
			t.Error("ReadFrame() returned an empty frame")
		}
		frame.Close()
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if cam.IsOpen() {
		t.Error("IsOpen() should report false after Close()")
	}
}
