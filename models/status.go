package models

import (
	"encoding/json"
	"fmt"
)

// HotelStatus is stored as an int and serialized as its name.
type HotelStatus int

const (
	StatusActive HotelStatus = iota + 1
	StatusInactive
	StatusUnderMaintenance
)

var statusNames = map[HotelStatus]string{
	StatusActive:           "Active",
	StatusInactive:         "Inactive",
	StatusUnderMaintenance: "UnderMaintenance",
}

func (s HotelStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s HotelStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HotelStatus(%d)", int(s))
}

// ParseHotelStatus maps an enum name to its value.
func ParseHotelStatus(name string) (HotelStatus, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return 0, NewValidationError("unknown hotel status %q", name)
}

func (s HotelStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid hotel status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *HotelStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseHotelStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
