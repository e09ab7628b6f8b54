package cart

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/ini.v1"

	carterrors "github.com/provide-io/sharecart/pkg/cart/errors"
)

// Record is a full snapshot of the Main section.
type Record struct {
	MapX       uint16
	MapY       uint16
	Misc       [MiscCount]uint16
	PlayerName string
	Switches   [SwitchCount]bool
}

// DefaultRecord returns the record written to a fresh or healed cart.
func DefaultRecord() Record {
	return Record{}
}

// Validate checks every field against the schema.
func (r Record) Validate() error {
	if err := checkMap(KeyMapX, r.MapX); err != nil {
		return err
	}
	if err := checkMap(KeyMapY, r.MapY); err != nil {
		return err
	}
	return checkPlayerName(r.PlayerName)
}

func (r Record) apply(sec *ini.Section) {
	sec.Key(KeyMapX).SetValue(strconv.Itoa(int(r.MapX)))
	sec.Key(KeyMapY).SetValue(strconv.Itoa(int(r.MapY)))
	for i, v := range r.Misc {
		sec.Key(MiscKey(i)).SetValue(strconv.Itoa(int(v)))
	}
	sec.Key(KeyPlayerName).SetValue(encodeName(r.PlayerName))
	for i, v := range r.Switches {
		sec.Key(SwitchKey(i)).SetValue(boolToken(v))
	}
}

func readRecord(sec *ini.Section) (Record, error) {
	var (
		r   Record
		err error
	)
	if r.MapX, err = readUint(sec, KeyMapX, MapLimit); err != nil {
		return Record{}, err
	}
	if r.MapY, err = readUint(sec, KeyMapY, MapLimit); err != nil {
		return Record{}, err
	}
	for i := range r.Misc {
		if r.Misc[i], err = readUint(sec, MiscKey(i), MiscMax+1); err != nil {
			return Record{}, err
		}
	}
	if r.PlayerName, err = readPlayerName(sec); err != nil {
		return Record{}, err
	}
	for i := range r.Switches {
		if r.Switches[i], err = readBool(sec, SwitchKey(i)); err != nil {
			return Record{}, err
		}
	}
	return r, nil
}

// =================================
// Argument checks
// =================================

func checkIndex(field string, index, count int) error {
	if index < 0 || index >= count {
		return &carterrors.RangeError{
			Field:  field,
			Value:  index,
			Reason: "index not in range of 0-" + strconv.Itoa(count-1),
		}
	}
	return nil
}

func checkMap(key string, v uint16) error {
	if int(v) >= MapLimit {
		return &carterrors.RangeError{
			Field:  key,
			Value:  v,
			Reason: "not in range of 0-" + strconv.Itoa(MapLimit-1),
		}
	}
	return nil
}

func checkPlayerName(name string) error {
	if n := utf8.RuneCountInString(name); n >= PlayerNameLimit {
		return &carterrors.RangeError{
			Field:  KeyPlayerName,
			Value:  n,
			Reason: "longer than " + strconv.Itoa(PlayerNameLimit-1) + " characters",
		}
	}
	return nil
}

// =================================
// Key readers
// =================================

func rawValue(sec *ini.Section, key string) (string, error) {
	if !sec.HasKey(key) {
		return "", &carterrors.IntegrityError{Key: key, Reason: "does not exist"}
	}
	return sec.Key(key).String(), nil
}

func readBool(sec *ini.Section, key string) (bool, error) {
	raw, err := rawValue(sec, key)
	if err != nil {
		return false, err
	}
	switch {
	case strings.EqualFold(raw, TokenTrue):
		return true, nil
	case strings.EqualFold(raw, TokenFalse):
		return false, nil
	}
	return false, &carterrors.IntegrityError{Key: key, Value: raw, Reason: "has invalid data"}
}

// readUint parses key as a decimal integer that must lie in [0, limit).
func readUint(sec *ini.Section, key string, limit int64) (uint16, error) {
	raw, err := rawValue(sec, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 || v >= limit {
		return 0, &carterrors.IntegrityError{Key: key, Value: raw, Reason: "has invalid data"}
	}
	return uint16(v), nil
}

func readPlayerName(sec *ini.Section) (string, error) {
	raw, err := rawValue(sec, KeyPlayerName)
	if err != nil {
		return "", err
	}
	name := decodeName(raw)
	if utf8.RuneCountInString(name) >= PlayerNameLimit {
		return "", &carterrors.IntegrityError{Key: KeyPlayerName, Reason: "has invalid data: too long"}
	}
	return name, nil
}
