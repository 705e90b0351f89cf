package battle

import (
	"testing"

	"github.com/samdwyer/stickquest/internal/dice"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
	boss      bool
}

func newMockCombatant(name string, hp int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: hp}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) IsAlive() bool   { return m.hp > 0 }
func (m *mockCombatant) IsBoss() bool    { return m.boss }
func (m *mockCombatant) GetHP() int      { return m.hp }
func (m *mockCombatant) GetMaxHP() int   { return m.maxHP }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 || m.hp == 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if m.hp+actual > m.maxHP {
		actual = m.maxHP - m.hp
	}
	m.hp += actual
	return actual
}

// edgeRoller always returns one end of the requested range.
type edgeRoller struct{ high bool }

func (r edgeRoller) Range(lo, hi int) int {
	if r.high {
		return hi
	}
	return lo
}

var (
	attackDef  = gamedata.ActionDef{Name: gamedata.ActionAttack, Kind: gamedata.ActionDamage, Damage: gamedata.DamageRange{Min: 15, Max: 25}}
	specialDef = gamedata.ActionDef{Name: gamedata.ActionSpecial, Kind: gamedata.ActionDamage, Damage: gamedata.DamageRange{Min: 25, Max: 40}}
	itemDef    = gamedata.ActionDef{Name: gamedata.ActionItem, Kind: gamedata.ActionHeal, Heal: 20}
	runDef     = gamedata.ActionDef{Name: gamedata.ActionRun, Kind: gamedata.ActionFlee}
)

func TestResolveAttack(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{high: true}, 0.5)
	player := newMockCombatant("Warrior Stan", 100)
	enemy := newMockCombatant("Princess Kenny", 80)

	result := resolver.Resolve(&attackDef, player, enemy)

	if !result.Success {
		t.Errorf("Expected success, got failure: %s", result.Message)
	}
	if result.Damage != 25 {
		t.Errorf("Expected 25 damage, got %d", result.Damage)
	}
	if enemy.GetHP() != 55 {
		t.Errorf("Expected enemy HP 55, got %d", enemy.GetHP())
	}
	if want := "You hit Princess Kenny for 25 damage!"; result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestResolveSpecial(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{}, 0.5)
	enemy := newMockCombatant("Kyle the Elf King", 90)

	result := resolver.Resolve(&specialDef, newMockCombatant("Warrior Stan", 100), enemy)

	if result.Damage != 25 {
		t.Errorf("Expected 25 damage, got %d", result.Damage)
	}
	if want := "Special attack! 25 damage dealt to Kyle the Elf King!"; result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestResolveOverkillReportsRolledDamage(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{high: true}, 0.5)
	enemy := newMockCombatant("Princess Kenny", 10)

	result := resolver.Resolve(&attackDef, newMockCombatant("Warrior Stan", 100), enemy)

	if result.Rolled != 25 || result.Damage != 10 {
		t.Errorf("Rolled/Damage = %d/%d, want 25/10", result.Rolled, result.Damage)
	}
	if enemy.GetHP() != 0 || enemy.IsAlive() {
		t.Errorf("Expected enemy dead at 0 HP, got %d", enemy.GetHP())
	}
}

func TestResolveHealClamped(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{}, 0.5)

	tests := []struct {
		hp          int
		wantHealing int
		wantHP      int
	}{
		{50, 20, 70},
		{90, 10, 100},
		{100, 0, 100},
	}

	for _, tt := range tests {
		player := newMockCombatant("Warrior Stan", 100)
		player.hp = tt.hp
		result := resolver.Resolve(&itemDef, player, newMockCombatant("Princess Kenny", 80))

		if result.Healing != tt.wantHealing || player.GetHP() != tt.wantHP {
			t.Errorf("heal from %d: healing=%d hp=%d, want %d/%d",
				tt.hp, result.Healing, player.GetHP(), tt.wantHealing, tt.wantHP)
		}
		if want := "You used a health potion. +20 HP!"; result.Message != want {
			t.Errorf("Message = %q, want %q", result.Message, want)
		}
	}
}

func TestResolveFlee(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{}, 0.5)
	enemy := newMockCombatant("Princess Kenny", 80)

	result := resolver.Resolve(&runDef, newMockCombatant("Warrior Stan", 100), enemy)

	if !result.Fled || result.Message != "You ran away!" {
		t.Errorf("Resolve(Run) = %+v", result)
	}
	if enemy.GetHP() != 80 {
		t.Error("fleeing must not touch the enemy")
	}
}

func TestResolveNilAction(t *testing.T) {
	resolver := NewEffectResolver(edgeRoller{}, 0.5)
	if result := resolver.Resolve(nil, nil, nil); result.Success {
		t.Error("Expected failure for nil action")
	}
}

func TestEnemyAttack(t *testing.T) {
	rng := gamedata.DamageRange{Min: 10, Max: 20}

	tests := []struct {
		name     string
		high     bool
		blocking bool
		factor   float64
		want     int
		message  string
	}{
		{"unblocked", true, false, 0.5, 20, "Princess Kenny attacks! You take 20 damage!"},
		{"blocked even", true, true, 0.5, 10, "BLOCKED! Princess Kenny attacks! You take only 10 damage!"},
		{"blocked floors", true, true, 0.33, 6, "BLOCKED! Princess Kenny attacks! You take only 6 damage!"},
		{"full block", false, true, 0, 0, "BLOCKED! Princess Kenny attacks! You take only 0 damage!"},
	}

	for _, tt := range tests {
		resolver := NewEffectResolver(edgeRoller{high: tt.high}, tt.factor)
		player := newMockCombatant("Warrior Stan", 100)
		enemy := newMockCombatant("Princess Kenny", 80)

		result := resolver.EnemyAttack(enemy, player, rng, tt.blocking)

		if result.Damage != tt.want {
			t.Errorf("%s: damage = %d, want %d", tt.name, result.Damage, tt.want)
		}
		if player.GetHP() != 100-tt.want {
			t.Errorf("%s: player HP = %d, want %d", tt.name, player.GetHP(), 100-tt.want)
		}
		if result.Message != tt.message {
			t.Errorf("%s: message = %q, want %q", tt.name, result.Message, tt.message)
		}
	}
}

func TestBlockedDamage(t *testing.T) {
	tests := []struct {
		damage int
		factor float64
		want   int
	}{
		{10, 0.5, 5},
		{15, 0.5, 7},
		{19, 0.5, 9},
		{20, 1, 20},
		{20, 0, 0},
	}
	for _, tt := range tests {
		if got := BlockedDamage(tt.damage, tt.factor); got != tt.want {
			t.Errorf("BlockedDamage(%d, %v) = %d, want %d", tt.damage, tt.factor, got, tt.want)
		}
	}
}

func TestDamageRollsStayInRange(t *testing.T) {
	resolver := NewEffectResolver(dice.New(99), 0.5)
	for i := 0; i < 500; i++ {
		enemy := newMockCombatant("Princess Kenny", 1000)
		result := resolver.Resolve(&specialDef, newMockCombatant("Warrior Stan", 100), enemy)
		if result.Damage < 25 || result.Damage > 40 {
			t.Fatalf("Special rolled %d, outside [25, 40]", result.Damage)
		}
	}
}
