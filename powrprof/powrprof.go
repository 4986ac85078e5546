//go:build windows

// Package powrprof binds the power-management functions of powrprof.dll.
//
// Functions mirror the Win32 calls one-to-one and keep their names, so the
// learn.microsoft.com pages apply directly. Status codes other than
// ERROR_SUCCESS are returned as syscall.Errno. String-valued reads return
// the raw NUL-terminated UTF-16LE buffer the service produced; decoding is
// left to the caller.
//
// The powercfg package wraps this binding behind its Provider interface,
// which is the intended way to consume it.
//
// # Reference
//
// Power management functions: https://learn.microsoft.com/en-us/windows/win32/power/power-management-functions
package powrprof

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/smnsjas/go-powercfg/guid"
)

// POWER_DATA_ACCESSOR values selecting what PowerEnumerate walks.
const (
	// AccessScheme enumerates power schemes.
	AccessScheme uint32 = 16

	// AccessSubgroup enumerates the subgroups of a scheme.
	AccessSubgroup uint32 = 17

	// AccessIndividualSetting enumerates the settings of a subgroup.
	AccessIndividualSetting uint32 = 18
)

// PlatformRoleVersion is the POWER_PLATFORM_ROLE version understood by this
// binding, passed to DeterminePlatformRoleEx.
const PlatformRoleVersion uint32 = 0x2

var (
	modpowrprof = windows.NewLazySystemDLL("powrprof.dll")

	procPowerEnumerate                              = modpowrprof.NewProc("PowerEnumerate")
	procPowerReadFriendlyName                       = modpowrprof.NewProc("PowerReadFriendlyName")
	procPowerReadDescription                        = modpowrprof.NewProc("PowerReadDescription")
	procPowerReadIconResourceSpecifier              = modpowrprof.NewProc("PowerReadIconResourceSpecifier")
	procPowerGetActiveScheme                        = modpowrprof.NewProc("PowerGetActiveScheme")
	procPowerSetActiveScheme                        = modpowrprof.NewProc("PowerSetActiveScheme")
	procPowerReadACValue                            = modpowrprof.NewProc("PowerReadACValue")
	procPowerReadDCValue                            = modpowrprof.NewProc("PowerReadDCValue")
	procPowerReadACValueIndex                       = modpowrprof.NewProc("PowerReadACValueIndex")
	procPowerReadDCValueIndex                       = modpowrprof.NewProc("PowerReadDCValueIndex")
	procPowerWriteACValueIndex                      = modpowrprof.NewProc("PowerWriteACValueIndex")
	procPowerWriteDCValueIndex                      = modpowrprof.NewProc("PowerWriteDCValueIndex")
	procPowerIsSettingRangeDefined                  = modpowrprof.NewProc("PowerIsSettingRangeDefined")
	procPowerReadPossibleValue                      = modpowrprof.NewProc("PowerReadPossibleValue")
	procPowerReadPossibleFriendlyName               = modpowrprof.NewProc("PowerReadPossibleFriendlyName")
	procPowerReadPossibleDescription                = modpowrprof.NewProc("PowerReadPossibleDescription")
	procPowerCanRestoreIndividualDefaultPowerScheme = modpowrprof.NewProc("PowerCanRestoreIndividualDefaultPowerScheme")
	procPowerCreateSetting                          = modpowrprof.NewProc("PowerCreateSetting")
	procPowerCreatePossibleSetting                  = modpowrprof.NewProc("PowerCreatePossibleSetting")
	procPowerDeleteScheme                           = modpowrprof.NewProc("PowerDeleteScheme")
	procPowerDuplicateScheme                        = modpowrprof.NewProc("PowerDuplicateScheme")
	procPowerImportPowerScheme                      = modpowrprof.NewProc("PowerImportPowerScheme")
	procPowerDeterminePlatformRoleEx                = modpowrprof.NewProc("PowerDeterminePlatformRoleEx")
)

// Load eagerly loads powrprof.dll, surfacing load failures ahead of the
// first call. Calling it is optional; the DLL loads lazily otherwise.
func Load() error {
	return modpowrprof.Load()
}

// rawGUID mirrors the in-memory layout of a native GUID. On the
// little-endian architectures Windows runs on, that layout is byte-for-byte
// the form produced by guid.GUID.Bytes.
type rawGUID [guid.Size]byte

// raw copies g into its native layout. A nil g yields a nil pointer, which
// the service reads as "not specified".
func raw(g *guid.GUID) *rawGUID {
	if g == nil {
		return nil
	}
	var r rawGUID
	copy(r[:], g.Bytes())
	return &r
}

func fromRaw(r *rawGUID) guid.GUID {
	g, _ := guid.FromBytes(r[:])
	return g
}

// Enumerate returns the identifier at index of one level of the store,
// selected by access. The scheme and subgroup filters narrow the walk for
// AccessSubgroup and AccessIndividualSetting. Past the last entry the
// service fails with ERROR_NO_MORE_ITEMS.
func Enumerate(scheme, subgroup *guid.GUID, access, index uint32) (guid.GUID, error) {
	var out rawGUID
	size := uint32(guid.Size)
	ret, _, _ := procPowerEnumerate.Call(
		0,
		uintptr(unsafe.Pointer(raw(scheme))),
		uintptr(unsafe.Pointer(raw(subgroup))),
		uintptr(access),
		uintptr(index),
		uintptr(unsafe.Pointer(&out)),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return guid.GUID{}, syscall.Errno(ret)
	}
	return fromRaw(&out), nil
}

// readString runs the query-then-fetch protocol shared by the name reads:
// a first call with a nil buffer yields the size, a second call fills it.
func readString(proc *windows.LazyProc, scheme, subgroup, setting *guid.GUID) ([]byte, error) {
	rs, rg, rt := raw(scheme), raw(subgroup), raw(setting)
	var size uint32
	ret, _, _ := proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		0,
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return nil, syscall.Errno(ret)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	ret, _, _ = proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return nil, syscall.Errno(ret)
	}
	return buf[:size], nil
}

// ReadFriendlyName returns the display name of the addressed scheme,
// subgroup or setting as a NUL-terminated UTF-16LE buffer.
func ReadFriendlyName(scheme, subgroup, setting *guid.GUID) ([]byte, error) {
	return readString(procPowerReadFriendlyName, scheme, subgroup, setting)
}

// ReadDescription returns the description of the addressed scheme, subgroup
// or setting as a NUL-terminated UTF-16LE buffer.
func ReadDescription(scheme, subgroup, setting *guid.GUID) ([]byte, error) {
	return readString(procPowerReadDescription, scheme, subgroup, setting)
}

// ReadIconResourceSpecifier returns the icon resource reference of the
// addressed scheme, subgroup or setting as a NUL-terminated UTF-16LE buffer.
func ReadIconResourceSpecifier(scheme, subgroup, setting *guid.GUID) ([]byte, error) {
	return readString(procPowerReadIconResourceSpecifier, scheme, subgroup, setting)
}

// GetActiveScheme returns the identifier of the active power scheme.
func GetActiveScheme() (guid.GUID, error) {
	var p *rawGUID
	ret, _, _ := procPowerGetActiveScheme.Call(0, uintptr(unsafe.Pointer(&p)))
	if ret != 0 {
		return guid.GUID{}, syscall.Errno(ret)
	}
	g := fromRaw(p)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(p)))) //nolint:errcheck
	return g, nil
}

// SetActiveScheme makes the given scheme the active one.
func SetActiveScheme(scheme guid.GUID) error {
	rs := raw(&scheme)
	ret, _, _ := procPowerSetActiveScheme.Call(0, uintptr(unsafe.Pointer(rs)))
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}

// readValue runs the query-then-fetch protocol shared by the AC and DC
// value reads and returns the type tag and raw payload.
func readValue(proc *windows.LazyProc, scheme, subgroup, setting *guid.GUID) (uint32, []byte, error) {
	rs, rg, rt := raw(scheme), raw(subgroup), raw(setting)
	var size uint32
	ret, _, _ := proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		0,
		0,
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return 0, nil, syscall.Errno(ret)
	}
	var typ uint32
	if size == 0 {
		ret, _, _ = proc.Call(
			0,
			uintptr(unsafe.Pointer(rs)),
			uintptr(unsafe.Pointer(rg)),
			uintptr(unsafe.Pointer(rt)),
			uintptr(unsafe.Pointer(&typ)),
			0,
			uintptr(unsafe.Pointer(&size)),
		)
		if ret != 0 {
			return 0, nil, syscall.Errno(ret)
		}
		return typ, nil, nil
	}
	buf := make([]byte, size)
	ret, _, _ = proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(unsafe.Pointer(&typ)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return 0, nil, syscall.Errno(ret)
	}
	return typ, buf[:size], nil
}

// ReadACValue returns the type tag and raw payload of a setting's AC value.
// A nil scheme addresses the setting default.
func ReadACValue(scheme, subgroup, setting *guid.GUID) (uint32, []byte, error) {
	return readValue(procPowerReadACValue, scheme, subgroup, setting)
}

// ReadDCValue returns the type tag and raw payload of a setting's DC value.
// A nil scheme addresses the setting default.
func ReadDCValue(scheme, subgroup, setting *guid.GUID) (uint32, []byte, error) {
	return readValue(procPowerReadDCValue, scheme, subgroup, setting)
}

func readValueIndex(proc *windows.LazyProc, scheme, subgroup, setting *guid.GUID) (uint32, error) {
	rs, rg, rt := raw(scheme), raw(subgroup), raw(setting)
	var index uint32
	ret, _, _ := proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(unsafe.Pointer(&index)),
	)
	if ret != 0 {
		return 0, syscall.Errno(ret)
	}
	return index, nil
}

// ReadACValueIndex returns the value index of a setting's AC value.
func ReadACValueIndex(scheme, subgroup, setting *guid.GUID) (uint32, error) {
	return readValueIndex(procPowerReadACValueIndex, scheme, subgroup, setting)
}

// ReadDCValueIndex returns the value index of a setting's DC value.
func ReadDCValueIndex(scheme, subgroup, setting *guid.GUID) (uint32, error) {
	return readValueIndex(procPowerReadDCValueIndex, scheme, subgroup, setting)
}

func writeValueIndex(proc *windows.LazyProc, scheme, subgroup, setting *guid.GUID, index uint32) error {
	rs, rg, rt := raw(scheme), raw(subgroup), raw(setting)
	ret, _, _ := proc.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(index),
	)
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}

// WriteACValueIndex sets the value index of a setting's AC value.
func WriteACValueIndex(scheme, subgroup, setting *guid.GUID, index uint32) error {
	return writeValueIndex(procPowerWriteACValueIndex, scheme, subgroup, setting, index)
}

// WriteDCValueIndex sets the value index of a setting's DC value.
func WriteDCValueIndex(scheme, subgroup, setting *guid.GUID, index uint32) error {
	return writeValueIndex(procPowerWriteDCValueIndex, scheme, subgroup, setting, index)
}

// IsSettingRangeDefined reports whether the setting declares the range of
// possible values its indexes address.
func IsSettingRangeDefined(subgroup, setting *guid.GUID) bool {
	ret, _, _ := procPowerIsSettingRangeDefined.Call(
		uintptr(unsafe.Pointer(raw(subgroup))),
		uintptr(unsafe.Pointer(raw(setting))),
	)
	return ret == 0
}

// ReadPossibleValue returns the type tag and raw payload of the possible
// value a setting takes at the given value index.
func ReadPossibleValue(subgroup, setting *guid.GUID, index uint32) (uint32, []byte, error) {
	rg, rt := raw(subgroup), raw(setting)
	var size uint32
	ret, _, _ := procPowerReadPossibleValue.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		0,
		uintptr(index),
		0,
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return 0, nil, syscall.Errno(ret)
	}
	var typ uint32
	if size == 0 {
		ret, _, _ = procPowerReadPossibleValue.Call(
			0,
			uintptr(unsafe.Pointer(rg)),
			uintptr(unsafe.Pointer(rt)),
			uintptr(unsafe.Pointer(&typ)),
			uintptr(index),
			0,
			uintptr(unsafe.Pointer(&size)),
		)
		if ret != 0 {
			return 0, nil, syscall.Errno(ret)
		}
		return typ, nil, nil
	}
	buf := make([]byte, size)
	ret, _, _ = procPowerReadPossibleValue.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(unsafe.Pointer(&typ)),
		uintptr(index),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return 0, nil, syscall.Errno(ret)
	}
	return typ, buf[:size], nil
}

// readPossibleString runs the query-then-fetch protocol for the indexed
// name reads.
func readPossibleString(proc *windows.LazyProc, subgroup, setting *guid.GUID, index uint32) ([]byte, error) {
	rg, rt := raw(subgroup), raw(setting)
	var size uint32
	ret, _, _ := proc.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(index),
		0,
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return nil, syscall.Errno(ret)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	ret, _, _ = proc.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(index),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret != 0 {
		return nil, syscall.Errno(ret)
	}
	return buf[:size], nil
}

// ReadPossibleFriendlyName returns the display name of the possible value at
// the given value index as a NUL-terminated UTF-16LE buffer.
func ReadPossibleFriendlyName(subgroup, setting *guid.GUID, index uint32) ([]byte, error) {
	return readPossibleString(procPowerReadPossibleFriendlyName, subgroup, setting, index)
}

// ReadPossibleDescription returns the description of the possible value at
// the given value index as a NUL-terminated UTF-16LE buffer.
func ReadPossibleDescription(subgroup, setting *guid.GUID, index uint32) ([]byte, error) {
	return readPossibleString(procPowerReadPossibleDescription, subgroup, setting, index)
}

// CanRestoreIndividualDefaultPowerScheme reports whether the scheme can be
// restored to its default settings.
func CanRestoreIndividualDefaultPowerScheme(scheme guid.GUID) bool {
	rs := raw(&scheme)
	ret, _, _ := procPowerCanRestoreIndividualDefaultPowerScheme.Call(uintptr(unsafe.Pointer(rs)))
	return ret == 0
}

// CreateSetting registers a new setting under a subgroup.
func CreateSetting(subgroup, setting guid.GUID) error {
	rg, rt := raw(&subgroup), raw(&setting)
	ret, _, _ := procPowerCreateSetting.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
	)
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}

// CreatePossibleSetting registers a possible value slot for a setting at
// the given value index.
func CreatePossibleSetting(subgroup, setting guid.GUID, index uint32) error {
	rg, rt := raw(&subgroup), raw(&setting)
	ret, _, _ := procPowerCreatePossibleSetting.Call(
		0,
		uintptr(unsafe.Pointer(rg)),
		uintptr(unsafe.Pointer(rt)),
		uintptr(index),
	)
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}

// DeleteScheme removes the scheme from the store.
func DeleteScheme(scheme guid.GUID) error {
	rs := raw(&scheme)
	ret, _, _ := procPowerDeleteScheme.Call(0, uintptr(unsafe.Pointer(rs)))
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}

// DuplicateScheme copies the scheme and returns the identifier the service
// assigned to the copy.
func DuplicateScheme(scheme guid.GUID) (guid.GUID, error) {
	rs := raw(&scheme)
	var p *rawGUID
	ret, _, _ := procPowerDuplicateScheme.Call(
		0,
		uintptr(unsafe.Pointer(rs)),
		uintptr(unsafe.Pointer(&p)),
	)
	if ret != 0 {
		return guid.GUID{}, syscall.Errno(ret)
	}
	g := fromRaw(p)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(p)))) //nolint:errcheck
	return g, nil
}

// ImportPowerScheme loads a scheme from a .pow file and returns the
// identifier the service assigned to it.
func ImportPowerScheme(filename string) (guid.GUID, error) {
	name, err := windows.UTF16PtrFromString(filename)
	if err != nil {
		return guid.GUID{}, err
	}
	var p *rawGUID
	ret, _, _ := procPowerImportPowerScheme.Call(
		0,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&p)),
	)
	if ret != 0 {
		return guid.GUID{}, syscall.Errno(ret)
	}
	g := fromRaw(p)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(p)))) //nolint:errcheck
	return g, nil
}

// DeterminePlatformRoleEx returns the POWER_PLATFORM_ROLE value for the
// machine. Unlike the other calls it returns the role directly, not a
// status code.
func DeterminePlatformRoleEx(version uint32) int32 {
	ret, _, _ := procPowerDeterminePlatformRoleEx.Call(uintptr(version))
	return int32(ret)
}
