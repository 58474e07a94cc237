package entity

import (
	"strconv"
	"strings"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Name prefixes used in position broadcasts.
// A counterpart's behaviour is decided by the prefix of its name.
const (
	PrefixPlayer   = "Player"
	PrefixEnemy    = "Enemy"
	PrefixFireball = "Fireball"
	PrefixHook     = "Hook"
	PrefixPlatform = "Platform"
	PrefixDoor     = "Door"
)

// PlayerName is the broadcast name of the player
const PlayerName = PrefixPlayer

// HookName is the broadcast name of a resolved grappling hook
const HookName = PrefixHook

// EnemyName returns the broadcast name of an enemy
func EnemyName(id EntityID) string {
	return PrefixEnemy + strconv.FormatUint(uint64(id), 10)
}

// FireballName returns the broadcast name of the n-th fireball of an enemy
func FireballName(owner EntityID, n int) string {
	return PrefixFireball + strconv.FormatUint(uint64(owner), 10) + "-" + strconv.Itoa(n)
}

// DoorName returns the broadcast name of door n
func DoorName(n int) string {
	return PrefixDoor + strconv.Itoa(n)
}

// PlatformName returns the broadcast name of platform n
func PlatformName(n int) string {
	return PrefixPlatform + strconv.Itoa(n)
}

// IsDoor returns true if name belongs to a door (proximity only, never solid)
func IsDoor(name string) bool {
	return strings.HasPrefix(name, PrefixDoor)
}

// IsHostile returns true if touching name kills the player
func IsHostile(name string) bool {
	return strings.HasPrefix(name, PrefixEnemy) || strings.HasPrefix(name, PrefixFireball)
}

// HasPrefix returns true if name starts with any of the prefixes
func HasPrefix(name string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// DoorNumber extracts the door number from a door name ("Door3" -> 3)
func DoorNumber(name string) (int, bool) {
	if !IsDoor(name) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, PrefixDoor))
	if err != nil {
		return 0, false
	}
	return n, true
}
