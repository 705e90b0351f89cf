package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/samdwyer/stickquest/internal/gamedata"
)

// ErrInvalid marks a document that parsed but breaks a settings rule.
var ErrInvalid = errors.New("invalid settings")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Source tells where a loaded Config came from.
type Source int

const (
	// SourceFile means the document on disk was used.
	SourceFile Source = iota
	// SourceBootstrapped means the document was missing or unparsable and
	// the built-in defaults were written in its place.
	SourceBootstrapped
	// SourceDefaults means the built-in defaults were used and the file on
	// disk, if any, was left untouched.
	SourceDefaults
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceBootstrapped:
		return "bootstrapped"
	case SourceDefaults:
		return "defaults"
	default:
		return "unknown"
	}
}

// Default returns a fresh copy of the built-in settings.
func Default() *Config {
	cfg := gamedata.MustLoad[Config](gamedata.DefaultConfigFile)
	cfg.normalize()
	return &cfg
}

// normalize fills values the document may leave out.
func (c *Config) normalize() {
	for i := range c.Characters.NPCs {
		if c.Characters.NPCs[i].HP <= 0 {
			c.Characters.NPCs[i].HP = 1
		}
	}
}

// Load reads the settings document at path. It never fails: a missing or
// unparsable file is replaced by the built-in defaults, and a document that
// parses but does not validate is ignored in favor of them.
func Load(path string) (*Config, Source) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: reading %s: %v; using defaults", path, err)
			return Default(), SourceDefaults
		}
		return bootstrap(path)
	}

	cfg, err := Parse(data)
	switch {
	case err == nil:
		return cfg, SourceFile
	case errors.Is(err, ErrInvalid):
		log.Printf("Warning: %s: %v; using defaults", path, err)
		return Default(), SourceDefaults
	default:
		log.Printf("Warning: %s: %v; rewriting with defaults", path, err)
		return bootstrap(path)
	}
}

func bootstrap(path string) (*Config, Source) {
	if err := WriteDefaults(path); err != nil {
		log.Printf("Warning: %v", err)
	}
	return Default(), SourceBootstrapped
}

// Parse decodes a settings document on top of the built-in defaults and
// validates the result. Groups left out of the document keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	// Lists are replaced wholesale, never merged element by element.
	defaults := *cfg
	cfg.Characters.Enemies = nil
	cfg.Characters.NPCs = nil
	cfg.Battle.Actions = nil

	if err := json.Unmarshal(data, cfg); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
		// Well-formed JSON with wrongly typed values is the user's file, keep it.
		return nil, invalidf("%v", err)
	}

	if cfg.Characters.Enemies == nil {
		cfg.Characters.Enemies = defaults.Characters.Enemies
	}
	if cfg.Characters.NPCs == nil {
		cfg.Characters.NPCs = defaults.Characters.NPCs
	}
	if cfg.Battle.Actions == nil {
		cfg.Battle.Actions = defaults.Battle.Actions
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaults writes the built-in document to path, creating parent directories.
func WriteDefaults(path string) error {
	data, err := gamedata.Raw(gamedata.DefaultConfigFile)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write default settings to %s: %w", path, err)
	}
	return nil
}

// Validate checks the rules every usable document must satisfy.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalidf("window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if err := validateCharacter("player", c.Characters.Player, true); err != nil {
		return err
	}
	for i, e := range c.Characters.Enemies {
		if err := validateCharacter(fmt.Sprintf("enemy %d", i), e, true); err != nil {
			return err
		}
	}
	for i, n := range c.Characters.NPCs {
		if err := validateCharacter(fmt.Sprintf("npc %d", i), n, false); err != nil {
			return err
		}
	}

	b := c.Battle
	for name, r := range b.PlayerMoveDamage {
		if !r.Valid() {
			return invalidf("damage range for %q is [%d, %d]", name, r.Min, r.Max)
		}
	}
	if !b.EnemyMoveDamage.Valid() {
		return invalidf("enemy damage range is [%d, %d]", b.EnemyMoveDamage.Min, b.EnemyMoveDamage.Max)
	}
	if b.HealAmount < 0 {
		return invalidf("heal amount %d", b.HealAmount)
	}
	if b.BlockReduction < 0 || b.BlockReduction > 1 {
		return invalidf("block reduction %v outside [0, 1]", b.BlockReduction)
	}
	if _, err := b.ActionDefs(); err != nil {
		if errors.Is(err, ErrInvalid) {
			return err
		}
		return invalidf("%v", err)
	}

	g := c.Game
	if g.MovementSpeed <= 0 || g.InteractionDistance <= 0 || g.FrameRate <= 0 {
		return invalidf("movement speed, interaction distance and frame rate must be positive")
	}
	if g.ExploreTop < 0 || g.ExploreTop >= c.Window.Height {
		return invalidf("explore top %d outside window", g.ExploreTop)
	}
	return nil
}

func validateCharacter(label string, ch Character, needsHP bool) error {
	if ch.Name == "" {
		return invalidf("%s has no name", label)
	}
	if ch.Width <= 0 || ch.Height <= 0 {
		return invalidf("%s (%s) size %dx%d", label, ch.Name, ch.Width, ch.Height)
	}
	if needsHP && ch.HP <= 0 {
		return invalidf("%s (%s) hp %d", label, ch.Name, ch.HP)
	}
	return nil
}
