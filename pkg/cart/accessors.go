package cart

import (
	"strconv"

	"gopkg.in/ini.v1"
)

// SetSwitch stores value at Switch<index> as TRUE or FALSE. index must be in 0-7.
func (s *Store) SetSwitch(index int, value bool) error {
	if err := s.reject(checkIndex("switch index", index, SwitchCount)); err != nil {
		return err
	}
	return s.setRaw(SwitchKey(index), boolToken(value))
}

// GetSwitch reads Switch<index>, accepting TRUE and FALSE in any case.
func (s *Store) GetSwitch(index int) (bool, error) {
	if err := s.reject(checkIndex("switch index", index, SwitchCount)); err != nil {
		return false, err
	}
	var v bool
	err := s.view(func(sec *ini.Section) (err error) {
		v, err = readBool(sec, SwitchKey(index))
		return err
	})
	return v, err
}

// SetMisc stores value at Misc<index>. index must be in 0-3.
func (s *Store) SetMisc(index int, value uint16) error {
	if err := s.reject(checkIndex("misc index", index, MiscCount)); err != nil {
		return err
	}
	return s.setRaw(MiscKey(index), strconv.Itoa(int(value)))
}

// GetMisc reads Misc<index>.
func (s *Store) GetMisc(index int) (uint16, error) {
	if err := s.reject(checkIndex("misc index", index, MiscCount)); err != nil {
		return 0, err
	}
	return s.getUint(MiscKey(index), MiscMax+1)
}

func (s *Store) SetMapX(value uint16) error {
	return s.setMap(KeyMapX, value)
}

func (s *Store) GetMapX() (uint16, error) {
	return s.getUint(KeyMapX, MapLimit)
}

func (s *Store) SetMapY(value uint16) error {
	return s.setMap(KeyMapY, value)
}

func (s *Store) GetMapY() (uint16, error) {
	return s.getUint(KeyMapY, MapLimit)
}

// SetPlayerName stores name, which must be shorter than 1024 characters.
func (s *Store) SetPlayerName(name string) error {
	if err := s.reject(checkPlayerName(name)); err != nil {
		return err
	}
	return s.setRaw(KeyPlayerName, encodeName(name))
}

// GetPlayerName reads the stored name and re-checks its length.
func (s *Store) GetPlayerName() (string, error) {
	var name string
	err := s.view(func(sec *ini.Section) (err error) {
		name, err = readPlayerName(sec)
		return err
	})
	return name, err
}

func (s *Store) setMap(key string, value uint16) error {
	if err := s.reject(checkMap(key, value)); err != nil {
		return err
	}
	return s.setRaw(key, strconv.Itoa(int(value)))
}

func (s *Store) getUint(key string, limit int64) (uint16, error) {
	var v uint16
	err := s.view(func(sec *ini.Section) (err error) {
		v, err = readUint(sec, key, limit)
		return err
	})
	return v, err
}

func (s *Store) setRaw(key, value string) error {
	return s.update(func(sec *ini.Section) error {
		sec.Key(key).SetValue(value)
		return nil
	})
}
