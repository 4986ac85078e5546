package powercfg

import (
	"fmt"

	"github.com/smnsjas/go-powercfg/guid"
	"github.com/smnsjas/go-powercfg/value"
)

// Setting is a handle to one power setting, such as "Turn off display
// after", within a subgroup of a scheme. A Setting created by
// Store.CreateSetting is not bound to a scheme; value reads on it address
// the setting's defaults.
type Setting struct {
	store    *Store
	scheme   *guid.GUID
	subgroup guid.GUID
	id       guid.GUID
}

// CreateSetting registers a new setting under a subgroup and returns a
// handle to it. The handle is not bound to a scheme.
func (s *Store) CreateSetting(subgroup, setting guid.GUID) (Setting, error) {
	if err := s.provider.CreateSetting(subgroup, setting); err != nil {
		return Setting{}, fmt.Errorf("create setting %s in subgroup %s: %w", setting, subgroup, err)
	}
	s.logf("created setting %s in subgroup %s", setting, subgroup)
	return Setting{store: s, subgroup: subgroup, id: setting}, nil
}

// ID returns the setting identifier.
func (st Setting) ID() guid.GUID {
	return st.id
}

// SubGroup returns the subgroup this setting belongs to. For a setting not
// bound to a scheme the returned handle carries the zero scheme identifier.
func (st Setting) SubGroup() SubGroup {
	var scheme guid.GUID
	if st.scheme != nil {
		scheme = *st.scheme
	}
	return SubGroup{store: st.store, scheme: scheme, id: st.subgroup}
}

// String returns the braced form of the setting identifier.
func (st Setting) String() string {
	return st.id.String()
}

// path addresses this setting for the provider. The scheme level is nil for
// settings not bound to a scheme.
func (st Setting) path() Path {
	subgroup := st.subgroup
	id := st.id
	return Path{Scheme: st.scheme, SubGroup: &subgroup, Setting: &id}
}

// FriendlyName returns the display name of the setting.
func (st Setting) FriendlyName() (string, error) {
	name, err := st.store.provider.FriendlyName(st.path())
	if err != nil {
		return "", fmt.Errorf("read friendly name of setting %s: %w", st.id, err)
	}
	return name, nil
}

// Description returns the description of the setting.
func (st Setting) Description() (string, error) {
	desc, err := st.store.provider.Description(st.path())
	if err != nil {
		return "", fmt.Errorf("read description of setting %s: %w", st.id, err)
	}
	return desc, nil
}

// IconResourceSpecifier returns the icon resource reference of the setting.
func (st Setting) IconResourceSpecifier() (string, error) {
	icon, err := st.store.provider.IconResourceSpecifier(st.path())
	if err != nil {
		return "", fmt.Errorf("read icon resource of setting %s: %w", st.id, err)
	}
	return icon, nil
}

// Value returns the tagged value of this setting for the given source.
func (st Setting) Value(src Source) (value.Value, error) {
	v, err := st.store.provider.ReadValue(src, st.path())
	if err != nil {
		return value.Value{}, fmt.Errorf("read %s value of setting %s: %w", src, st.id, err)
	}
	st.store.logf("setting %s %s value: type %s, %d bytes", st.id, src, v.Type, len(v.Raw))
	return v, nil
}

// ValueIndex returns the value index of this setting for the given source.
func (st Setting) ValueIndex(src Source) (uint32, error) {
	idx, err := st.store.provider.ReadValueIndex(src, st.path())
	if err != nil {
		return 0, fmt.Errorf("read %s value index of setting %s: %w", src, st.id, err)
	}
	return idx, nil
}

// SetValueIndex sets the value index of this setting for the given source.
// The change does not take effect on the running configuration until the
// owning scheme is re-activated; see ApplyChanges.
func (st Setting) SetValueIndex(src Source, index uint32) error {
	if err := st.store.provider.WriteValueIndex(src, st.path(), index); err != nil {
		return fmt.Errorf("write %s value index of setting %s: %w", src, st.id, err)
	}
	st.store.logf("setting %s %s value index set to %d", st.id, src, index)
	return nil
}

// ValueType returns the value type of this setting for the given source.
func (st Setting) ValueType(src Source) (value.Type, error) {
	v, err := st.Value(src)
	if err != nil {
		return value.TypeNone, err
	}
	return v.Type, nil
}

// ValueSize returns the size in bytes of this setting's raw value for the
// given source.
func (st Setting) ValueSize(src Source) (int, error) {
	v, err := st.Value(src)
	if err != nil {
		return 0, err
	}
	return len(v.Raw), nil
}

// ACValue returns the value used while plugged in.
func (st Setting) ACValue() (value.Value, error) { return st.Value(AC) }

// DCValue returns the value used while on battery.
func (st Setting) DCValue() (value.Value, error) { return st.Value(DC) }

// ACValueType returns the value type used while plugged in.
func (st Setting) ACValueType() (value.Type, error) { return st.ValueType(AC) }

// DCValueType returns the value type used while on battery.
func (st Setting) DCValueType() (value.Type, error) { return st.ValueType(DC) }

// ACValueSize returns the raw value size in bytes while plugged in.
func (st Setting) ACValueSize() (int, error) { return st.ValueSize(AC) }

// DCValueSize returns the raw value size in bytes while on battery.
func (st Setting) DCValueSize() (int, error) { return st.ValueSize(DC) }

// ACValueIndex returns the value index used while plugged in.
func (st Setting) ACValueIndex() (uint32, error) { return st.ValueIndex(AC) }

// DCValueIndex returns the value index used while on battery.
func (st Setting) DCValueIndex() (uint32, error) { return st.ValueIndex(DC) }

// SetACValueIndex sets the value index used while plugged in.
func (st Setting) SetACValueIndex(index uint32) error { return st.SetValueIndex(AC, index) }

// SetDCValueIndex sets the value index used while on battery.
func (st Setting) SetDCValueIndex(index uint32) error { return st.SetValueIndex(DC, index) }

// PossibleSetting returns the enumeration of values this setting may take.
func (st Setting) PossibleSetting() PossibleSetting {
	return PossibleSetting{store: st.store, subgroup: st.subgroup, id: st.id}
}

// ApplyChanges re-activates the owning scheme so written value indexes take
// effect on the running configuration. It reports whether a re-activation
// happened: settings not bound to a scheme and settings whose scheme is not
// the active one are left alone.
func (st Setting) ApplyChanges() (bool, error) {
	if st.scheme == nil {
		return false, nil
	}
	scheme := Scheme{store: st.store, id: *st.scheme}
	active, err := scheme.IsActive()
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}
	if err := scheme.SetActive(); err != nil {
		return false, err
	}
	return true, nil
}
