package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ayusman/vyayam/internal/app"
	"github.com/ayusman/vyayam/internal/config"
	"github.com/ayusman/vyayam/internal/exercise"
	"github.com/ayusman/vyayam/internal/server"
	"github.com/ayusman/vyayam/internal/store"
	"github.com/ayusman/vyayam/internal/tray"
)

func main() {
	fmt.Println("Vyayam - Exercise Rep Tracking")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".vyayam")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Load configuration, falling back to defaults when no file exists
	cfg := loadConfig(filepath.Join(dataDir, "config.yaml"))

	// Initialize the store
	st, err := store.New(filepath.Join(dataDir, "vyayam.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the tracking pipeline
	a := app.New(app.Config{
		Store:        st,
		CameraID:     cfg.Camera.DeviceID,
		MotionThresh: cfg.Camera.MotionThreshold,
		Detector:     cfg.DetectorConfig(),
		Exercise:     cfg.ExerciseConfig(),
	})

	if err := a.Start(); err != nil {
		log.Printf("Failed to start tracking pipeline: %v", err)
	}
	defer a.Stop()

	a.RestoreState()

	// Find web directory
	webDir := cfg.Server.WebDir
	if webDir == "" {
		webDir = findWebDir(dataDir)
	}
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start the server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Snapshots: a,
	})
	defer srv.Close()

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wire up the tray
	t := tray.New()
	t.SetEnabled(a.IsEnabled())
	t.OnToggle(a.SetEnabled)
	t.OnDashboard(func() {
		openBrowser("http://localhost" + cfg.Server.Addr)
	})
	t.OnQuit(a.Stop)

	go refreshTray(t, a)

	// Blocks until quit
	t.Run()
}

// loadConfig reads the config file, or returns defaults when it is absent.
func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", path, err)
	}
	return cfg
}

// refreshTray keeps the tray's current-exercise line in sync with the
// tracking snapshot.
func refreshTray(t *tray.Tray, a *app.App) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		snap := a.Snapshot()
		if snap.Exercise == exercise.KindNone {
			t.SetCurrentExercise("", 0)
			continue
		}
		t.SetCurrentExercise(string(snap.Exercise), snap.Counts[snap.Exercise].Reps)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.vyayam/web.
// Returns the first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeWebDir := filepath.Join(dataDir, "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
