// Package config provides the typed settings document for the game and the
// rules for loading it from disk.
package config

import (
	"github.com/samdwyer/stickquest/internal/dialog"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

// DefaultPath is where the settings document is looked up when no path is given.
const DefaultPath = "game_config.json"

// Config is the whole settings document.
type Config struct {
	Window     Window     `json:"window"`
	Colors     Colors     `json:"colors"`
	Characters Characters `json:"characters"`
	Battle     Battle     `json:"battle"`
	Game       Game       `json:"game"`
}

// Window holds the viewport size and title.
type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// Colors holds the named palette.
type Colors struct {
	White    gamedata.RGB `json:"white"`
	Black    gamedata.RGB `json:"black"`
	Red      gamedata.RGB `json:"red"`
	Green    gamedata.RGB `json:"green"`
	Blue     gamedata.RGB `json:"blue"`
	DialogBG gamedata.RGB `json:"dialog_bg"`
	BattleBG gamedata.RGB `json:"battle_bg"`
}

// Characters holds the cast. Enemies and NPCs keep their document order,
// which is also the order interaction checks run in.
type Characters struct {
	Player  Character   `json:"player"`
	Enemies []Character `json:"enemies"`
	NPCs    []Character `json:"npcs"`
}

// Character describes one member of the cast.
type Character struct {
	Name             string        `json:"name"`
	Image            string        `json:"image"`
	Portrait         string        `json:"portrait"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	HP               int           `json:"hp,omitempty"`
	DefaultPosition  [2]int        `json:"default_position"`
	BattlePosition   [2]int        `json:"battle_position"`
	PlaceholderColor gamedata.RGB  `json:"placeholder_color"`
	Dialogs          []dialog.Line `json:"dialogs,omitempty"`
	Boss             bool          `json:"boss,omitempty"` // Enemies only
}

// Battle holds the battle menu and damage numbers.
type Battle struct {
	Actions          []string                        `json:"actions"`
	PlayerMoveDamage map[string]gamedata.DamageRange `json:"player_move_damage"`
	EnemyMoveDamage  gamedata.DamageRange            `json:"enemy_move_damage"`
	HealAmount       int                             `json:"heal_amount"`
	BlockReduction   float64                         `json:"block_reduction"`
}

// Game holds movement and timing settings.
type Game struct {
	MovementSpeed       int `json:"movement_speed"`
	InteractionDistance int `json:"interaction_distance"`
	FrameRate           int `json:"frame_rate"`
	ExploreTop          int `json:"explore_top"`
}

// ActionDefs resolves the action names into battle menu entries.
func (b *Battle) ActionDefs() ([]gamedata.ActionDef, error) {
	defs := make([]gamedata.ActionDef, 0, len(b.Actions))
	for _, name := range b.Actions {
		def := gamedata.ActionDef{Name: name}
		switch name {
		case gamedata.ActionItem:
			def.Kind = gamedata.ActionHeal
			def.Heal = b.HealAmount
		case gamedata.ActionRun:
			def.Kind = gamedata.ActionFlee
		default:
			r, ok := b.PlayerMoveDamage[name]
			if !ok {
				return nil, invalidf("battle action %q has no damage range", name)
			}
			def.Kind = gamedata.ActionDamage
			def.Damage = r
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, gamedata.ErrNoActions
	}
	return defs, nil
}

// Registry builds the battle menu registry from the action list.
func (b *Battle) Registry() (*gamedata.ActionRegistry, error) {
	defs, err := b.ActionDefs()
	if err != nil {
		return nil, err
	}
	return gamedata.NewActionRegistry(defs)
}
