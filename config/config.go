package config

import "image/color"

// TPS is the fixed update rate the frame-based values assume.
const TPS = 60

// PlayerConfig contains all player-related configuration values.
// Speeds are level pixels per frame at 60 TPS.
type PlayerConfig struct {
	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	MaxJumps  int     `yaml:"max_jumps"`

	// Combat
	Health int `yaml:"health"`

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FallLimitY   float64 `yaml:"fall_limit_y"` // below this the level restarts

	// Frames to hold the inhaling pose after a shot before going idle
	IdleResumeFrames int `yaml:"idle_resume_frames"`

	// Damage flicker, seconds per fade
	FlickerFade float32 `yaml:"flicker_fade"`

	// Dimensions
	FrameWidth       int     `yaml:"frame_width"`
	FrameHeight      int     `yaml:"frame_height"`
	CollisionOffsetX float64 `yaml:"collision_offset_x"`
	CollisionOffsetY float64 `yaml:"collision_offset_y"`
	CollisionWidth   float64 `yaml:"collision_width"`
	CollisionHeight  float64 `yaml:"collision_height"`
}

// InhaleConfig places the inhale zone and effect relative to the player.
type InhaleConfig struct {
	ZoneOffsetX   float64 `yaml:"zone_offset_x"` // mirrored when facing left
	ZoneOffsetY   float64 `yaml:"zone_offset_y"`
	ZoneWidth     float64 `yaml:"zone_width"`
	ZoneHeight    float64 `yaml:"zone_height"`
	EffectOffsetX float64 `yaml:"effect_offset_x"` // mirrored when facing left
	EffectOffsetY float64 `yaml:"effect_offset_y"`
	PullSpeed     float64 `yaml:"pull_speed"`
}

// ProjectileConfig contains the star projectile values.
type ProjectileConfig struct {
	Speed           float64 `yaml:"speed"`
	SpawnOffsetX    float64 `yaml:"spawn_offset_x"` // mirrored when facing left
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// EnemyTypeConfig contains configuration for a specific enemy type
type EnemyTypeConfig struct {
	Name       string  `yaml:"name"`
	Speed      float64 `yaml:"speed"`
	JumpSpeed  float64 `yaml:"jump_speed"`
	IdleFrames int     `yaml:"idle_frames"`
	WalkFrames int     `yaml:"walk_frames"`
	Gravity    float64 `yaml:"gravity"`

	FrameWidth       int     `yaml:"frame_width"`
	FrameHeight      int     `yaml:"frame_height"`
	CollisionOffsetX float64 `yaml:"collision_offset_x"`
	CollisionOffsetY float64 `yaml:"collision_offset_y"`
	CollisionWidth   float64 `yaml:"collision_width"`
	CollisionHeight  float64 `yaml:"collision_height"`
}

// EnemyConfig contains all enemy-related configuration values
type EnemyConfig struct {
	Flame  EnemyTypeConfig `yaml:"flame"`
	Walker EnemyTypeConfig `yaml:"walker"`
	Flyer  EnemyTypeConfig `yaml:"flyer"`

	// Flyers are removed this far outside the camera view
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// SpawnerConfig controls the periodic flyer spawners.
type SpawnerConfig struct {
	FlyerIntervalFrames int       `yaml:"flyer_interval_frames"`
	FlyerSpeeds         []float64 `yaml:"flyer_speeds"`
}

// PhysicsConfig contains global physics configuration
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	CellSize     int     `yaml:"cell_size"` // resolv space cell size
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	// How fast camera follows player (0.0-1.0)
	FollowSmoothing float64 `yaml:"follow_smoothing"`
	// Max horizontal look-ahead offset in level pixels
	LookAheadDistanceX float64 `yaml:"look_ahead_distance_x"`
	// How fast look-ahead offset changes (0.0-1.0)
	LookAheadSmoothing      float64 `yaml:"look_ahead_smoothing"`
	LookAheadSpeedThreshold float64 `yaml:"look_ahead_speed_threshold"`
}

// LevelConfig contains level drawing defaults.
type LevelConfig struct {
	Background    color.RGBA
	PlatformColor color.RGBA
	PlatformEdge  color.RGBA
}

// HUDConfig contains heads-up display layout.
type HUDConfig struct {
	PipRadius   float32
	PipSpacing  float32
	PipColor    color.RGBA
	PipEmpty    color.RGBA
	HurtTint    color.RGBA // mixed into flickering sprites, alpha is the amount
	Margin      float32
	TextColor   color.RGBA
	LevelLabelY int
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
}

// MenuConfig contains title and level complete screen configuration
type MenuConfig struct {
	Title             string
	Subtitle          string
	CompleteTitle     string
	CompleteMessage   string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonDisabled    color.RGBA
	ButtonTextColor   color.RGBA
	ButtonWidth       int
	ButtonHeight      int
	TitleFontSize     float64
	ButtonFontSize    float64
	ErrorTitle        string
	ErrorHint         string
	ErrorTextColor    color.RGBA
	ErrorOverlayColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // level pixels to screen pixels
	Title  string  `yaml:"title"`
	// SaveApp names the gdata save directory
	SaveApp string `yaml:"save_app"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	ShowColliders bool // Draw resolv objects over the scene
	ColliderColor color.RGBA
	TriggerColor  color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Inhale InhaleConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:   1024,
		Height:  576,
		Scale:   4,
		Title:   "Puffball",
		SaveApp: "puffball",
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.146, // 2100 px/s² at scale 4
		MaxFallSpeed: 4.0,
		CellSize:     16,
	}

	// Player Config
	Player = PlayerConfig{
		Speed:     1.25,
		JumpSpeed: 2.67,
		MaxJumps:  10,

		Health: 3,

		Gravity:      Physics.Gravity,
		MaxFallSpeed: Physics.MaxFallSpeed,
		FallLimitY:   500,

		IdleResumeFrames: 60,
		FlickerFade:      0.05,

		FrameWidth:       16,
		FrameHeight:      16,
		CollisionOffsetX: 4,
		CollisionOffsetY: 5.9,
		CollisionWidth:   8,
		CollisionHeight:  10,
	}

	Inhale = InhaleConfig{
		ZoneOffsetX:   14,
		ZoneOffsetY:   8,
		ZoneWidth:     20,
		ZoneHeight:    4,
		EffectOffsetX: 15,
		EffectOffsetY: 0,
		PullSpeed:     3.33,
	}

	Projectile = ProjectileConfig{
		Speed:           3.33,
		SpawnOffsetX:    20,
		SpawnOffsetY:    1.25,
		CollisionWidth:  6,
		CollisionHeight: 6,
		OffscreenMargin: 100,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		Flame: EnemyTypeConfig{
			Name:             "flame",
			JumpSpeed:        4.17,
			IdleFrames:       60,
			Gravity:          Physics.Gravity,
			FrameWidth:       16,
			FrameHeight:      16,
			CollisionOffsetX: 4,
			CollisionOffsetY: 6,
			CollisionWidth:   8,
			CollisionHeight:  10,
		},
		Walker: EnemyTypeConfig{
			Name:             "guy",
			Speed:            0.42,
			IdleFrames:       60,
			WalkFrames:       120,
			Gravity:          Physics.Gravity,
			FrameWidth:       16,
			FrameHeight:      16,
			CollisionOffsetX: 2,
			CollisionOffsetY: 2,
			CollisionWidth:   12,
			CollisionHeight:  14,
		},
		Flyer: EnemyTypeConfig{
			Name:             "bird",
			Speed:            0.83,
			FrameWidth:       16,
			FrameHeight:      16,
			CollisionOffsetX: 2,
			CollisionOffsetY: 4,
			CollisionWidth:   12,
			CollisionHeight:  8,
		},
		OffscreenMargin: 100,
	}

	Spawner = SpawnerConfig{
		FlyerIntervalFrames: 600,
		FlyerSpeeds:         []float64{0.42, 0.83, 1.25},
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      24.0,
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadSpeedThreshold: 0.1,
	}

	Level = LevelConfig{
		Background:    color.RGBA{R: 247, G: 215, B: 219, A: 255},
		PlatformColor: color.RGBA{R: 120, G: 86, B: 110, A: 255},
		PlatformEdge:  color.RGBA{R: 86, G: 58, B: 80, A: 255},
	}

	HUD = HUDConfig{
		PipRadius:   10,
		PipSpacing:  28,
		PipColor:    color.RGBA{R: 235, G: 80, B: 120, A: 255},
		PipEmpty:    color.RGBA{R: 90, G: 60, B: 70, A: 160},
		HurtTint:    color.RGBA{R: 255, G: 40, B: 40, A: 140},
		Margin:      24,
		TextColor:   color.RGBA{R: 60, G: 30, B: 50, A: 255},
		LevelLabelY: 30,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Title:        "PAUSED",
	}

	Menu = MenuConfig{
		Title:             "PUFFBALL",
		Subtitle:          "Arrows move   X jump   Z inhale / shoot",
		CompleteTitle:     "You made it!",
		CompleteMessage:   "Thanks for playing.",
		BackgroundColor:   color.RGBA{R: 247, G: 215, B: 219, A: 255},
		TitleColor:        color.RGBA{R: 200, G: 60, B: 110, A: 255},
		TextColor:         color.RGBA{R: 60, G: 30, B: 50, A: 255},
		ButtonIdle:        color.RGBA{R: 235, G: 120, B: 160, A: 255},
		ButtonHover:       color.RGBA{R: 245, G: 150, B: 185, A: 255},
		ButtonPressed:     color.RGBA{R: 200, G: 90, B: 130, A: 255},
		ButtonDisabled:    color.RGBA{R: 170, G: 150, B: 160, A: 255},
		ButtonTextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ButtonWidth:       260,
		ButtonHeight:      56,
		TitleFontSize:     72,
		ButtonFontSize:    28,
		ErrorTitle:        "Could not start the level",
		ErrorHint:         "Press ENTER to return to the title",
		ErrorTextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ErrorOverlayColor: color.RGBA{R: 60, G: 20, B: 40, A: 255},
	}

	Debug = DebugConfig{
		ColliderColor: color.RGBA{R: 0, G: 255, B: 0, A: 120},
		TriggerColor:  color.RGBA{R: 255, G: 200, B: 0, A: 120},
	}
}
