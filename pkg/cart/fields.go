package cart

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	carterrors "github.com/provide-io/sharecart/pkg/cart/errors"
)

// field binds a schema key to its reader and its text parser.
type field struct {
	key string
	// read returns the stored value in canonical text form.
	read func(sec *ini.Section) (string, error)
	// parse validates user text and returns the value to store.
	parse func(raw string) (string, error)
}

var fields = buildFields()

func buildFields() map[string]field {
	m := make(map[string]field)
	add := func(f field) {
		m[strings.ToLower(f.key)] = f
	}

	add(uintField(KeyMapX, MapLimit))
	add(uintField(KeyMapY, MapLimit))
	for i := 0; i < MiscCount; i++ {
		add(uintField(MiscKey(i), MiscMax+1))
	}
	add(field{
		key: KeyPlayerName,
		read: func(sec *ini.Section) (string, error) {
			return readPlayerName(sec)
		},
		parse: func(raw string) (string, error) {
			return encodeName(raw), checkPlayerName(raw)
		},
	})
	for i := 0; i < SwitchCount; i++ {
		add(boolField(SwitchKey(i)))
	}
	return m
}

func uintField(key string, limit int64) field {
	return field{
		key: key,
		read: func(sec *ini.Section) (string, error) {
			v, err := readUint(sec, key, limit)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(int(v)), nil
		},
		parse: func(raw string) (string, error) {
			v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
			if err != nil || int64(v) >= limit || v > uint64(MiscMax) {
				return "", &carterrors.RangeError{
					Field:  key,
					Value:  raw,
					Reason: "not an integer in range of 0-" + strconv.FormatInt(limit-1, 10),
				}
			}
			return strconv.FormatUint(v, 10), nil
		},
	}
}

func boolField(key string) field {
	return field{
		key: key,
		read: func(sec *ini.Section) (string, error) {
			v, err := readBool(sec, key)
			if err != nil {
				return "", err
			}
			return boolToken(v), nil
		},
		parse: func(raw string) (string, error) {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return "", &carterrors.RangeError{Field: key, Value: raw, Reason: "not a boolean"}
			}
			return boolToken(v), nil
		},
	}
}

func lookupField(key string) (field, error) {
	f, ok := fields[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return field{}, &carterrors.RangeError{
			Field:  "key",
			Value:  key,
			Reason: "not a cart key",
			Err:    carterrors.ErrUnknownKey,
		}
	}
	return f, nil
}

// CanonicalKey returns the schema spelling of key, matched case-insensitively.
func CanonicalKey(key string) (string, error) {
	f, err := lookupField(key)
	if err != nil {
		return "", err
	}
	return f.key, nil
}

// Get reads a field by key name and returns it as text.
func (s *Store) Get(key string) (string, error) {
	f, err := lookupField(key)
	if err != nil {
		return "", s.reject(err)
	}
	var v string
	err = s.view(func(sec *ini.Section) (err error) {
		v, err = f.read(sec)
		return err
	})
	return v, err
}

// Set parses raw for the field named key and stores it. Unknown keys and
// values outside the field's domain are rejected before the file is read.
func (s *Store) Set(key, raw string) error {
	f, err := lookupField(key)
	if err != nil {
		return s.reject(err)
	}
	value, err := f.parse(raw)
	if err != nil {
		return s.reject(err)
	}
	return s.setRaw(f.key, value)
}
