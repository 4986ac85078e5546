package powercfg

import (
	"fmt"
	"math"

	"github.com/smnsjas/go-powercfg/guid"
	"github.com/smnsjas/go-powercfg/value"
)

// PossibleSetting enumerates the values a setting may take. Each value index
// a setting can be written with addresses one possible value, with a display
// name and description alongside the tagged value itself.
//
// Possible values are declared per setting, not per scheme, so a
// PossibleSetting is addressed by subgroup and setting only.
type PossibleSetting struct {
	store    *Store
	subgroup guid.GUID
	id       guid.GUID
}

// PossibleSetting returns the value enumeration for a setting addressed by
// its subgroup and setting identifiers.
func (s *Store) PossibleSetting(subgroup, setting guid.GUID) PossibleSetting {
	return PossibleSetting{store: s, subgroup: subgroup, id: setting}
}

// CreatePossibleSetting registers a possible value slot at the given index
// for a setting and returns the setting's value enumeration.
func (s *Store) CreatePossibleSetting(subgroup, setting guid.GUID, index uint32) (PossibleSetting, error) {
	if err := s.provider.CreatePossibleSetting(subgroup, setting, index); err != nil {
		return PossibleSetting{}, fmt.Errorf("create possible setting %s index %d: %w", setting, index, err)
	}
	s.logf("created possible setting %s index %d in subgroup %s", setting, index, subgroup)
	return PossibleSetting{store: s, subgroup: subgroup, id: setting}, nil
}

// ID returns the setting identifier.
func (ps PossibleSetting) ID() guid.GUID {
	return ps.id
}

// String returns the braced form of the setting identifier.
func (ps PossibleSetting) String() string {
	return ps.id.String()
}

// IsRangeDefined reports whether the setting declares the range of values
// its indexes address. When it does not, index 0 is the only valid index.
func (ps PossibleSetting) IsRangeDefined() bool {
	return ps.store.provider.IsRangeDefined(&ps.subgroup, &ps.id)
}

// IsIndexValid reports whether the given value index addresses a declared
// possible value.
func (ps PossibleSetting) IsIndexValid(index uint32) bool {
	if !ps.IsRangeDefined() {
		return index == 0
	}
	v, err := ps.store.provider.PossibleValue(&ps.subgroup, &ps.id, index)
	return err == nil && v.Type != value.TypeNone
}

// Indexes lists the valid value indexes. Settings with a declared range
// accept a contiguous run starting at zero; everything else has exactly
// index 0.
func (ps PossibleSetting) Indexes() []uint32 {
	if !ps.IsRangeDefined() {
		return []uint32{0}
	}
	var indexes []uint32
	for i := uint32(0); ; i++ {
		if !ps.IsIndexValid(i) {
			return indexes
		}
		indexes = append(indexes, i)
		if i == math.MaxUint32 {
			return indexes
		}
	}
}

// Value returns the tagged value at the given value index.
func (ps PossibleSetting) Value(index uint32) (value.Value, error) {
	v, err := ps.store.provider.PossibleValue(&ps.subgroup, &ps.id, index)
	if err != nil {
		return value.Value{}, fmt.Errorf("read possible value %d of setting %s: %w", index, ps.id, err)
	}
	return v, nil
}

// ValueType returns the value type at the given value index.
func (ps PossibleSetting) ValueType(index uint32) (value.Type, error) {
	v, err := ps.Value(index)
	if err != nil {
		return value.TypeNone, err
	}
	return v.Type, nil
}

// ValueSize returns the size in bytes of the raw value at the given value
// index.
func (ps PossibleSetting) ValueSize(index uint32) (int, error) {
	v, err := ps.Value(index)
	if err != nil {
		return 0, err
	}
	return len(v.Raw), nil
}

// FriendlyName returns the display name of the value at the given index,
// such as "On" or "Off".
func (ps PossibleSetting) FriendlyName(index uint32) (string, error) {
	name, err := ps.store.provider.PossibleFriendlyName(&ps.subgroup, &ps.id, index)
	if err != nil {
		return "", fmt.Errorf("read possible friendly name %d of setting %s: %w", index, ps.id, err)
	}
	return name, nil
}

// Description returns the description of the value at the given index.
func (ps PossibleSetting) Description(index uint32) (string, error) {
	desc, err := ps.store.provider.PossibleDescription(&ps.subgroup, &ps.id, index)
	if err != nil {
		return "", fmt.Errorf("read possible description %d of setting %s: %w", index, ps.id, err)
	}
	return desc, nil
}

// Values returns the tagged value at every valid index.
func (ps PossibleSetting) Values() ([]value.Value, error) {
	indexes := ps.Indexes()
	values := make([]value.Value, len(indexes))
	for i, idx := range indexes {
		v, err := ps.Value(idx)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// FriendlyNames returns the display name at every valid index.
func (ps PossibleSetting) FriendlyNames() ([]string, error) {
	indexes := ps.Indexes()
	names := make([]string, len(indexes))
	for i, idx := range indexes {
		name, err := ps.FriendlyName(idx)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// Descriptions returns the description at every valid index.
func (ps PossibleSetting) Descriptions() ([]string, error) {
	indexes := ps.Indexes()
	descs := make([]string, len(indexes))
	for i, idx := range indexes {
		desc, err := ps.Description(idx)
		if err != nil {
			return nil, err
		}
		descs[i] = desc
	}
	return descs, nil
}
