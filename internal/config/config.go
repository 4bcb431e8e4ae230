// Package config handles exporter configuration loading and management.
package config

// Config holds all export settings.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Picture   PictureConfig   `yaml:"picture"`
	Antialias AntialiasConfig `yaml:"antialias"`
	Camera    CameraConfig    `yaml:"camera"`
	Light     LightConfig     `yaml:"light"`
	Scene     SceneConfig     `yaml:"scene"`
	Overlays  OverlayConfig   `yaml:"overlays"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// OutputConfig holds output locations and file naming.
type OutputConfig struct {
	BasePath        string `yaml:"base_path"`
	Script          string `yaml:"script"`
	DataFilebase    string `yaml:"data_filebase"`
	PictureFilebase string `yaml:"picture_filebase"`
	Template        string `yaml:"template"` // empty selects the bundled template
}

// PictureConfig holds rendered picture geometry.
type PictureConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AntialiasConfig holds renderer antialiasing settings.
type AntialiasConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Depth     int     `yaml:"depth"`
	Threshold float64 `yaml:"threshold"`
}

// CameraConfig holds the default camera placement.
type CameraConfig struct {
	Location     [3]float64 `yaml:"location"`
	Aim          [3]float64 `yaml:"aim"`
	Angle        float64    `yaml:"angle"`
	Orthographic bool       `yaml:"orthographic"`
}

// LightConfig holds the default light source.
type LightConfig struct {
	Location    [3]float64 `yaml:"location"`
	Color       [3]float64 `yaml:"color"`
	CastShadows bool       `yaml:"cast_shadows"`
}

// SceneConfig holds global scene colors.
type SceneConfig struct {
	Background [3]float64 `yaml:"background"`
	Ambient    [3]float64 `yaml:"ambient"`
}

// SymbolConfig holds one coordinate-system overlay toggle.
type SymbolConfig struct {
	Show bool    `yaml:"show"`
	Size float64 `yaml:"size"`
}

// ContactConfig holds the contact force overlay settings.
type ContactConfig struct {
	Show          bool    `yaml:"show"`
	Mode          string  `yaml:"mode"`
	Scale         float64 `yaml:"scale"`
	Width         float64 `yaml:"width"`
	MaxSize       float64 `yaml:"max_size"`
	Colormap      bool    `yaml:"colormap"`
	ColormapStart float64 `yaml:"colormap_start"`
	ColormapEnd   float64 `yaml:"colormap_end"`
}

// OverlayConfig holds the marker overlay settings.
type OverlayConfig struct {
	COGs               SymbolConfig  `yaml:"cogs"`
	Frames             SymbolConfig  `yaml:"frames"`
	Links              SymbolConfig  `yaml:"links"`
	Contacts           ContactConfig `yaml:"contacts"`
	WireframeThickness float64       `yaml:"wireframe_thickness"`
}

// ExportConfig holds animation export settings.
type ExportConfig struct {
	SingleAssetFile bool    `yaml:"single_asset_file"`
	Frames          int     `yaml:"frames"`
	Timestep        float64 `yaml:"timestep"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			BasePath:        "povray_out",
			Script:          "render_frames.pov",
			DataFilebase:    "state",
			PictureFilebase: "picture",
		},
		Picture: PictureConfig{
			Width:  800,
			Height: 600,
		},
		Antialias: AntialiasConfig{
			Enabled:   false,
			Depth:     3,
			Threshold: 0.1,
		},
		Camera: CameraConfig{
			Location: [3]float64{0, 1.5, -2},
			Aim:      [3]float64{0, 0, 0},
			Angle:    30,
		},
		Light: LightConfig{
			Location:    [3]float64{2, 3, -1},
			Color:       [3]float64{1, 1, 1},
			CastShadows: true,
		},
		Scene: SceneConfig{
			Background: [3]float64{1, 1, 1},
			Ambient:    [3]float64{2, 2, 2},
		},
		Overlays: OverlayConfig{
			COGs:   SymbolConfig{Size: 0.04},
			Frames: SymbolConfig{Size: 0.05},
			Links:  SymbolConfig{Size: 0.04},
			Contacts: ContactConfig{
				Mode:        "vector_scaled_length",
				Scale:       0.01,
				Width:       0.01,
				MaxSize:     0.5,
				ColormapEnd: 100,
			},
			WireframeThickness: 0.001,
		},
		Export: ExportConfig{
			SingleAssetFile: true,
			Frames:          120,
			Timestep:        0.01,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
