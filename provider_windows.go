//go:build windows

package powercfg

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/smnsjas/go-powercfg/guid"
	"github.com/smnsjas/go-powercfg/powrprof"
	"github.com/smnsjas/go-powercfg/value"
)

// nativeProvider implements Provider over the powrprof binding. It holds no
// state; every method is a direct native call.
type nativeProvider struct{}

var _ Provider = nativeProvider{}

func (nativeProvider) Enumerate(scope Scope, scheme, subgroup *guid.GUID, index uint32) (guid.GUID, error) {
	var access uint32
	switch scope {
	case ScopeScheme:
		access = powrprof.AccessScheme
	case ScopeSubGroup:
		access = powrprof.AccessSubgroup
	case ScopeSetting:
		access = powrprof.AccessIndividualSetting
	default:
		return guid.GUID{}, fmt.Errorf("unknown scope %d", uint32(scope))
	}
	id, err := powrprof.Enumerate(scheme, subgroup, access, index)
	if errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
		return guid.GUID{}, ErrNoMoreItems
	}
	if err != nil {
		return guid.GUID{}, err
	}
	return id, nil
}

func (nativeProvider) ActiveScheme() (guid.GUID, error) {
	return powrprof.GetActiveScheme()
}

func (nativeProvider) SetActiveScheme(scheme guid.GUID) error {
	return powrprof.SetActiveScheme(scheme)
}

func (nativeProvider) FriendlyName(p Path) (string, error) {
	buf, err := powrprof.ReadFriendlyName(p.Scheme, p.SubGroup, p.Setting)
	if err != nil {
		return "", err
	}
	return value.WideString(buf), nil
}

func (nativeProvider) Description(p Path) (string, error) {
	buf, err := powrprof.ReadDescription(p.Scheme, p.SubGroup, p.Setting)
	if err != nil {
		return "", err
	}
	return value.WideString(buf), nil
}

func (nativeProvider) IconResourceSpecifier(p Path) (string, error) {
	buf, err := powrprof.ReadIconResourceSpecifier(p.Scheme, p.SubGroup, p.Setting)
	if err != nil {
		return "", err
	}
	return value.WideString(buf), nil
}

func (nativeProvider) ReadValue(src Source, p Path) (value.Value, error) {
	var (
		typ uint32
		raw []byte
		err error
	)
	switch src {
	case AC:
		typ, raw, err = powrprof.ReadACValue(p.Scheme, p.SubGroup, p.Setting)
	case DC:
		typ, raw, err = powrprof.ReadDCValue(p.Scheme, p.SubGroup, p.Setting)
	default:
		return value.Value{}, fmt.Errorf("unknown source %d", uint32(src))
	}
	if err != nil {
		return value.Value{}, err
	}
	return value.Value{Type: value.Type(typ), Raw: raw}, nil
}

func (nativeProvider) ReadValueIndex(src Source, p Path) (uint32, error) {
	switch src {
	case AC:
		return powrprof.ReadACValueIndex(p.Scheme, p.SubGroup, p.Setting)
	case DC:
		return powrprof.ReadDCValueIndex(p.Scheme, p.SubGroup, p.Setting)
	default:
		return 0, fmt.Errorf("unknown source %d", uint32(src))
	}
}

func (nativeProvider) WriteValueIndex(src Source, p Path, index uint32) error {
	switch src {
	case AC:
		return powrprof.WriteACValueIndex(p.Scheme, p.SubGroup, p.Setting, index)
	case DC:
		return powrprof.WriteDCValueIndex(p.Scheme, p.SubGroup, p.Setting, index)
	default:
		return fmt.Errorf("unknown source %d", uint32(src))
	}
}

func (nativeProvider) IsRangeDefined(subgroup, setting *guid.GUID) bool {
	return powrprof.IsSettingRangeDefined(subgroup, setting)
}

func (nativeProvider) PossibleValue(subgroup, setting *guid.GUID, index uint32) (value.Value, error) {
	typ, raw, err := powrprof.ReadPossibleValue(subgroup, setting, index)
	if err != nil {
		return value.Value{}, err
	}
	return value.Value{Type: value.Type(typ), Raw: raw}, nil
}

func (nativeProvider) PossibleFriendlyName(subgroup, setting *guid.GUID, index uint32) (string, error) {
	buf, err := powrprof.ReadPossibleFriendlyName(subgroup, setting, index)
	if err != nil {
		return "", err
	}
	return value.WideString(buf), nil
}

func (nativeProvider) PossibleDescription(subgroup, setting *guid.GUID, index uint32) (string, error) {
	buf, err := powrprof.ReadPossibleDescription(subgroup, setting, index)
	if err != nil {
		return "", err
	}
	return value.WideString(buf), nil
}

func (nativeProvider) CanRestoreIndividualDefaultScheme(scheme guid.GUID) bool {
	return powrprof.CanRestoreIndividualDefaultPowerScheme(scheme)
}

func (nativeProvider) DeleteScheme(scheme guid.GUID) error {
	return powrprof.DeleteScheme(scheme)
}

func (nativeProvider) DuplicateScheme(scheme guid.GUID) (guid.GUID, error) {
	return powrprof.DuplicateScheme(scheme)
}

func (nativeProvider) ImportScheme(filename string) (guid.GUID, error) {
	return powrprof.ImportPowerScheme(filename)
}

func (nativeProvider) CreateSetting(subgroup, setting guid.GUID) error {
	return powrprof.CreateSetting(subgroup, setting)
}

func (nativeProvider) CreatePossibleSetting(subgroup, setting guid.GUID, index uint32) error {
	return powrprof.CreatePossibleSetting(subgroup, setting, index)
}

func (nativeProvider) PlatformRole() (PlatformRole, error) {
	return PlatformRole(powrprof.DeterminePlatformRoleEx(powrprof.PlatformRoleVersion)), nil
}
