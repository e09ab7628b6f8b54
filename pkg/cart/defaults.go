package cart

import "strconv"

// =================================
// Schema constants
// =================================
const (
	SectionMain = "Main"

	KeyMapX       = "MapX"
	KeyMapY       = "MapY"
	KeyPlayerName = "PlayerName"

	miscPrefix   = "Misc"
	switchPrefix = "Switch"

	SwitchCount = 8
	MiscCount   = 4

	MapLimit        = 1024 // MapX and MapY must stay below this
	PlayerNameLimit = 1024 // PlayerName length in runes must stay below this
	MiscMax         = 65535

	TokenTrue  = "TRUE"
	TokenFalse = "FALSE"
)

// =================================
// Location defaults
// =================================
const (
	CartDirName  = "dat"
	CartFileName = "o_o.ini"
	LockSuffix   = ".lock"
)

// =================================
// File permissions defaults
// =================================
const (
	DefaultFileMode = 0o644
	DefaultDirMode  = 0o755
)

// SwitchKey returns the key name for switch index i.
func SwitchKey(i int) string {
	return switchPrefix + strconv.Itoa(i)
}

// MiscKey returns the key name for misc index i.
func MiscKey(i int) string {
	return miscPrefix + strconv.Itoa(i)
}

// Keys returns every schema key in canonical write order.
func Keys() []string {
	keys := []string{KeyMapX, KeyMapY}
	for i := 0; i < MiscCount; i++ {
		keys = append(keys, MiscKey(i))
	}
	keys = append(keys, KeyPlayerName)
	for i := 0; i < SwitchCount; i++ {
		keys = append(keys, SwitchKey(i))
	}
	return keys
}

func boolToken(v bool) string {
	if v {
		return TokenTrue
	}
	return TokenFalse
}
