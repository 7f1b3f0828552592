package export

import (
	"fmt"
	"sort"
)

// Icon is the glyph printed for a weapon or a participant.
type Icon string

// Glyphs used by the pretty renderer.
const (
	IconBoat       Icon = "🚤"
	IconAutomobile Icon = "🚙"
	IconVictim     Icon = "😦"
	IconKiller     Icon = "😛"
	IconSuicide    Icon = "☠"
	IconGun        Icon = "🔫"
	IconGrenade    Icon = "💣"
	IconRocket     Icon = "🚀"
	IconMachete    Icon = "🔪"
)

// UnknownWeaponError is returned when a weapon code has no icon.
type UnknownWeaponError struct {
	Code string
}

func (e *UnknownWeaponError) Error() string {
	return fmt.Sprintf("unknown weapon code %q", e.Code)
}

// IconTable maps weapon codes to icons. The zero value has no entries.
type IconTable struct {
	icons map[string]Icon
}

// NewIconTable builds a table from code/icon pairs.
func NewIconTable(icons map[string]Icon) IconTable {
	t := IconTable{icons: make(map[string]Icon, len(icons))}
	for code, icon := range icons {
		t.icons[code] = icon
	}
	return t
}

// DefaultIcons returns the table for every weapon code the game logs.
func DefaultIcons() IconTable {
	return NewIconTable(map[string]Icon{
		"Vehicle":                IconAutomobile,
		"Falcon":                 IconGun,
		"Shotgun":                IconGun,
		"P90":                    IconGun,
		"MP5":                    IconGun,
		"M4":                     IconGun,
		"AG36":                   IconGun,
		"OICW":                   IconGun,
		"SniperRifle":            IconGun,
		"M249":                   IconGun,
		"VehicleMountedAutoMG":   IconGun,
		"VehicleMountedMG":       IconGun,
		"HandGrenade":            IconGrenade,
		"AG36Grenade":            IconGrenade,
		"OICWGrenade":            IconGrenade,
		"StickyExplosive":        IconGrenade,
		"Rocket":                 IconRocket,
		"VehicleMountedRocketMG": IconRocket,
		"VehicleRocket":          IconRocket,
		"Machete":                IconMachete,
		"Boat":                   IconBoat,
	})
}

// Lookup returns the icon for code.
func (t IconTable) Lookup(code string) (Icon, error) {
	icon, ok := t.icons[code]
	if !ok {
		return "", &UnknownWeaponError{Code: code}
	}
	return icon, nil
}

// Codes returns the known weapon codes, sorted.
func (t IconTable) Codes() []string {
	codes := make([]string, 0, len(t.icons))
	for code := range t.icons {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
