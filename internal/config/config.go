// Package config loads the Vyayam configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/vyayam/internal/detector"
	"github.com/ayusman/vyayam/internal/exercise"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Tracking TrackingConfig `yaml:"tracking"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	WebDir string `yaml:"web_dir"`
}

// CameraConfig configures frame capture.
type CameraConfig struct {
	DeviceID        int     `yaml:"device_id"`
	MotionThreshold float64 `yaml:"motion_threshold"`
}

// DetectorConfig configures the pose detector subprocess.
type DetectorConfig struct {
	MinConfidence   float64 `yaml:"min_confidence"`
	MinTrackingConf float64 `yaml:"min_tracking_confidence"`
}

// TrackingConfig configures classification and rep counting. The angle
// boundaries vary with camera placement, so they live in configuration
// rather than code.
type TrackingConfig struct {
	VisibilityFloor   float64                    `yaml:"visibility_floor"`
	HistorySize       int                        `yaml:"history_size"`
	MinHistory        int                        `yaml:"min_history"`
	TiltSplit         float64                    `yaml:"tilt_split"`
	PushupWristBand   float64                    `yaml:"pushup_wrist_band"`
	PullupWristMargin float64                    `yaml:"pullup_wrist_margin"`
	CurlWristHipBand  float64                    `yaml:"curl_wrist_hip_band"`
	Thresholds        map[string]ThresholdConfig `yaml:"thresholds"`
}

// ThresholdConfig is the hysteresis band for one exercise's rep counter.
type ThresholdConfig struct {
	RestAngle    float64 `yaml:"rest_angle"`
	TriggerAngle float64 `yaml:"trigger_angle"`
	RestStage    string  `yaml:"rest_stage"`
	TriggerStage string  `yaml:"trigger_stage"`
}

// Default returns the built-in configuration.
func Default() *Config {
	ex := exercise.DefaultConfig()
	det := detector.DefaultConfig()

	thresholds := make(map[string]ThresholdConfig, len(ex.Thresholds))
	for kind, t := range ex.Thresholds {
		thresholds[string(kind)] = ThresholdConfig{
			RestAngle:    t.RestAngle,
			TriggerAngle: t.TriggerAngle,
			RestStage:    string(t.RestStage),
			TriggerStage: string(t.TriggerStage),
		}
	}

	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Camera: CameraConfig{
			DeviceID:        0,
			MotionThreshold: 1.0,
		},
		Detector: DetectorConfig{
			MinConfidence:   det.MinConfidence,
			MinTrackingConf: det.MinTrackingConf,
		},
		Tracking: TrackingConfig{
			VisibilityFloor:   ex.VisibilityFloor,
			HistorySize:       ex.HistorySize,
			MinHistory:        ex.MinHistory,
			TiltSplit:         ex.TiltSplit,
			PushupWristBand:   ex.PushupWristBand,
			PullupWristMargin: ex.PullupWristMargin,
			CurlWristHipBand:  ex.CurlWristHipBand,
			Thresholds:        thresholds,
		},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. Env vars use the VYAYAM_ prefix:
//
//	VYAYAM_SERVER_ADDR, VYAYAM_WEB_DIR,
//	VYAYAM_CAMERA_ID, VYAYAM_MOTION_THRESHOLD
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VYAYAM_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VYAYAM_WEB_DIR"); v != "" {
		cfg.Server.WebDir = v
	}
	if v := os.Getenv("VYAYAM_CAMERA_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			cfg.Camera.DeviceID = id
		}
	}
	if v := os.Getenv("VYAYAM_MOTION_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Camera.MotionThreshold = threshold
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Tracking.VisibilityFloor < 0 || c.Tracking.VisibilityFloor > 1 {
		return fmt.Errorf("tracking.visibility_floor must be within [0,1]")
	}
	if c.Tracking.HistorySize <= 0 {
		return fmt.Errorf("tracking.history_size must be positive")
	}
	if c.Tracking.MinHistory <= 0 || c.Tracking.MinHistory > c.Tracking.HistorySize {
		return fmt.Errorf("tracking.min_history must be within [1, history_size]")
	}
	for name, t := range c.Tracking.Thresholds {
		if !validStage(t.RestStage) || !validStage(t.TriggerStage) {
			return fmt.Errorf("tracking.thresholds.%s: stages must be up or down", name)
		}
		if t.TriggerAngle >= t.RestAngle {
			return fmt.Errorf("tracking.thresholds.%s: trigger_angle must be below rest_angle", name)
		}
	}
	return nil
}

func validStage(s string) bool {
	return s == string(exercise.StageUp) || s == string(exercise.StageDown)
}

// ExerciseConfig converts the tracking section into the exercise package's
// configuration.
func (c *Config) ExerciseConfig() exercise.Config {
	cfg := exercise.Config{
		VisibilityFloor:   c.Tracking.VisibilityFloor,
		HistorySize:       c.Tracking.HistorySize,
		MinHistory:        c.Tracking.MinHistory,
		TiltSplit:         c.Tracking.TiltSplit,
		PushupWristBand:   c.Tracking.PushupWristBand,
		PullupWristMargin: c.Tracking.PullupWristMargin,
		CurlWristHipBand:  c.Tracking.CurlWristHipBand,
		Thresholds:        make(map[exercise.Kind]exercise.Thresholds, len(c.Tracking.Thresholds)),
	}
	for name, t := range c.Tracking.Thresholds {
		cfg.Thresholds[exercise.Kind(name)] = exercise.Thresholds{
			RestAngle:    t.RestAngle,
			TriggerAngle: t.TriggerAngle,
			RestStage:    exercise.Stage(t.RestStage),
			TriggerStage: exercise.Stage(t.TriggerStage),
		}
	}
	return cfg
}

// DetectorConfig converts the detector section into the detector package's
// configuration.
func (c *Config) DetectorConfig() detector.Config {
	return detector.Config{
		MinConfidence:   c.Detector.MinConfidence,
		MinTrackingConf: c.Detector.MinTrackingConf,
	}
}
