package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Snapshot is a copy of every tunable configuration struct. Its yaml layout
// is the layout of an overrides file.
type Snapshot struct {
	Screen     Config           `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Inhale     InhaleConfig     `yaml:"inhale"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
}

// Save copies the current configuration.
func Save() Snapshot {
	s := Snapshot{
		Screen:     *C,
		Player:     Player,
		Inhale:     Inhale,
		Projectile: Projectile,
		Enemy:      Enemy,
		Spawner:    Spawner,
		Physics:    Physics,
		Camera:     Camera,
		Audio:      Audio,
	}
	s.Spawner.FlyerSpeeds = slices.Clone(Spawner.FlyerSpeeds)
	return s
}

// Restore makes s the current configuration.
func (s Snapshot) Restore() {
	screen := s.Screen
	C = &screen
	Player = s.Player
	Inhale = s.Inhale
	Projectile = s.Projectile
	Enemy = s.Enemy
	Spawner = s.Spawner
	Spawner.FlyerSpeeds = slices.Clone(s.Spawner.FlyerSpeeds)
	Physics = s.Physics
	Camera = s.Camera
	Audio = s.Audio
}

func (s Snapshot) validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.Screen.Width, s.Screen.Height))
	}
	if s.Screen.Scale <= 0 {
		errs = append(errs, fmt.Errorf("screen scale %g must be positive", s.Screen.Scale))
	}
	if s.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player health %d must be positive", s.Player.Health))
	}
	if s.Player.MaxJumps < 0 {
		errs = append(errs, fmt.Errorf("player max_jumps %d must not be negative", s.Player.MaxJumps))
	}
	if s.Physics.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("physics cell_size %d must be positive", s.Physics.CellSize))
	}
	if s.Spawner.FlyerIntervalFrames <= 0 {
		errs = append(errs, fmt.Errorf("spawner flyer_interval_frames %d must be positive", s.Spawner.FlyerIntervalFrames))
	}
	if len(s.Spawner.FlyerSpeeds) == 0 {
		errs = append(errs, errors.New("spawner flyer_speeds must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadOverrides applies a YAML overrides document on top of the current
// configuration. Fields the document does not name keep their values. On
// error the configuration is left untouched.
func LoadOverrides(r io.Reader) error {
	s := Save()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config overrides: %w", err)
	}
	if err := s.validate(); err != nil {
		return fmt.Errorf("invalid config overrides: %w", err)
	}

	s.Restore()
	return nil
}

// LoadOverridesFile applies the overrides file at path.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
