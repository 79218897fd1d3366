package config

import (
	"errors"
	"fmt"

	"github.com/milk9111/playerbox/overlay"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "playerbox"

type CameraConfig struct {
	FovDegrees float64
	Near       float64
	Far        float64
	Distance   float64
	Height     float64
}

type PartyConfig struct {
	Scenario string
	FeedURL  string
}

type WindowConfig struct {
	Width  int
	Height int
}

// Config is a typed view of the loaded settings.
type Config struct {
	LogLevel string
	LogFile  string
	Markers  overlay.Options
	Camera   CameraConfig
	Party    PartyConfig
	Window   WindowConfig
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("markers.crossScale", overlay.DefaultCrossScale)
	viper.SetDefault("markers.squareScale", overlay.DefaultSquareScale)
	viper.SetDefault("markers.drawCross", true)
	viper.SetDefault("markers.drawSquare", true)
	viper.SetDefault("markers.lineWidth", overlay.DefaultLineWidth)

	viper.SetDefault("camera.fovDegrees", 70.0)
	viper.SetDefault("camera.near", 0.1)
	viper.SetDefault("camera.far", 500.0)
	viper.SetDefault("camera.distance", 12.0)
	viper.SetDefault("camera.height", 6.0)

	viper.SetDefault("party.scenario", "light_party.yaml")
	viper.SetDefault("party.feedURL", "")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
}

// Load reads playerbox.yaml from configDir on top of the defaults. A missing
// file is not an error.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", configDir, err)
	}
	return nil
}

// Reload re-reads the config file found by Load.
func Reload() error {
	if viper.ConfigFileUsed() == "" {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("config: reload %s: %w", viper.ConfigFileUsed(), err)
	}
	return nil
}

// Overlay returns the marker options.
func Overlay() overlay.Options {
	return overlay.Options{
		CrossScale:  viper.GetFloat64("markers.crossScale"),
		SquareScale: viper.GetFloat64("markers.squareScale"),
		DrawCross:   viper.GetBool("markers.drawCross"),
		DrawSquare:  viper.GetBool("markers.drawSquare"),
		LineWidth:   float32(viper.GetFloat64("markers.lineWidth")),
	}
}

// Current returns every setting as a Config.
func Current() Config {
	return Config{
		LogLevel: viper.GetString("logLevel"),
		LogFile:  viper.GetString("logFile"),
		Markers:  Overlay(),
		Camera: CameraConfig{
			FovDegrees: viper.GetFloat64("camera.fovDegrees"),
			Near:       viper.GetFloat64("camera.near"),
			Far:        viper.GetFloat64("camera.far"),
			Distance:   viper.GetFloat64("camera.distance"),
			Height:     viper.GetFloat64("camera.height"),
		},
		Party: PartyConfig{
			Scenario: viper.GetString("party.scenario"),
			FeedURL:  viper.GetString("party.feedURL"),
		},
		Window: WindowConfig{
			Width:  viper.GetInt("window.width"),
			Height: viper.GetInt("window.height"),
		},
	}
}

// FileUsed returns the path of the loaded config file, or "" when running on
// defaults.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
