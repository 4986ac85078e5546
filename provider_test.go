package powercfg

import (
	"errors"
	"fmt"

	"github.com/smnsjas/go-powercfg/guid"
	"github.com/smnsjas/go-powercfg/value"
)

// Well-known identifiers used across the tests.
var (
	balancedID    = guid.MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	saverID       = guid.MustParse("a1841308-3541-4fab-bc81-f71556f20b4a")
	highPerfID    = guid.MustParse("8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c")
	videoIdleID   = guid.MustParse("3c0bc021-c8a8-4e07-a973-6b14cbcb2b7e")
	lidActionID   = guid.MustParse("5ca83367-6e45-459f-a27b-476b1d01c936")
	consoleLockID = guid.MustParse("0e796bdb-100d-47d6-a2d5-f7d2daa51f51")
)

var errFakeNotFound = errors.New("element not found")

type possibleEntry struct {
	val  value.Value
	name string
	desc string
}

// fakeProvider is an in-memory Provider for tests. Lookups key on the
// rendered path so tests can seed entries the same way entities address
// them.
type fakeProvider struct {
	schemes   []guid.GUID
	subgroups map[guid.GUID][]guid.GUID
	settings  map[[2]guid.GUID][]guid.GUID
	active    guid.GUID

	names  map[string]string
	descs  map[string]string
	icons  map[string]string
	values map[string]value.Value
	index  map[string]uint32

	ranged   map[[2]guid.GUID]bool
	possible map[[2]guid.GUID][]possibleEntry

	restorable map[guid.GUID]bool
	role       PlatformRole

	duplicateID guid.GUID
	importID    guid.GUID

	// Call records
	activations     []guid.GUID
	deleted         []guid.GUID
	created         [][2]guid.GUID
	createdPossible []uint32
	imported        []string

	enumerateErr error
}

func valueKey(src Source, p Path) string {
	return fmt.Sprintf("%s %s", src, p)
}

// newFakeProvider seeds a small store: two schemes, a Display subgroup with
// the display-timeout setting on Balanced, a password-on-wake setting
// directly under Balanced, and a list-valued lid-action setting under the
// system-button subgroup.
func newFakeProvider() *fakeProvider {
	f := &fakeProvider{
		schemes: []guid.GUID{balancedID, saverID},
		subgroups: map[guid.GUID][]guid.GUID{
			balancedID: {SubGroupDisplay, SubGroupSleep},
			saverID:    {SubGroupDisplay},
		},
		settings: map[[2]guid.GUID][]guid.GUID{
			{balancedID, SubGroupDisplay}: {videoIdleID},
			{balancedID, SubGroupNone}:    {consoleLockID},
		},
		active:     balancedID,
		names:      make(map[string]string),
		descs:      make(map[string]string),
		icons:      make(map[string]string),
		values:     make(map[string]value.Value),
		index:      make(map[string]uint32),
		ranged:     make(map[[2]guid.GUID]bool),
		possible:   make(map[[2]guid.GUID][]possibleEntry),
		restorable: map[guid.GUID]bool{balancedID: true},
		role:       RoleMobile,
	}

	f.names[Path{Scheme: &balancedID}.String()] = "Balanced"
	f.names[Path{Scheme: &saverID}.String()] = "Power saver"
	f.descs[Path{Scheme: &balancedID}.String()] = "Automatically balances performance"
	f.icons[Path{Scheme: &balancedID}.String()] = "%SystemRoot%\\system32\\powrprof.dll,-100"

	f.names[Path{Scheme: &balancedID, SubGroup: &SubGroupDisplay}.String()] = "Display"
	f.names[Path{Scheme: &balancedID, SubGroup: &SubGroupNone, Setting: &consoleLockID}.String()] = "Require a password on wakeup"

	displayIdle := Path{Scheme: &balancedID, SubGroup: &SubGroupDisplay, Setting: &videoIdleID}
	f.names[displayIdle.String()] = "Turn off display after"
	f.descs[displayIdle.String()] = "Idle time before the display powers off"
	f.values[valueKey(AC, displayIdle)] = value.Value{Type: value.TypeUint32LE, Raw: []byte{0x58, 0x02, 0x00, 0x00}}
	f.values[valueKey(DC, displayIdle)] = value.Value{Type: value.TypeUint32LE, Raw: []byte{0x2c, 0x01, 0x00, 0x00}}
	f.index[valueKey(AC, displayIdle)] = 600
	f.index[valueKey(DC, displayIdle)] = 300

	lid := [2]guid.GUID{SubGroupSystemButton, lidActionID}
	f.ranged[lid] = true
	f.possible[lid] = []possibleEntry{
		{val: value.Value{Type: value.TypeUint32LE, Raw: []byte{0, 0, 0, 0}}, name: "Do nothing", desc: "No action is taken"},
		{val: value.Value{Type: value.TypeUint32LE, Raw: []byte{1, 0, 0, 0}}, name: "Sleep", desc: "The system sleeps"},
		{val: value.Value{Type: value.TypeUint32LE, Raw: []byte{2, 0, 0, 0}}, name: "Hibernate", desc: "The system hibernates"},
		{val: value.Value{Type: value.TypeUint32LE, Raw: []byte{3, 0, 0, 0}}, name: "Shut down", desc: "The system shuts down"},
	}

	return f
}

var _ Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Enumerate(scope Scope, scheme, subgroup *guid.GUID, index uint32) (guid.GUID, error) {
	if f.enumerateErr != nil {
		return guid.GUID{}, f.enumerateErr
	}
	var list []guid.GUID
	switch scope {
	case ScopeScheme:
		list = f.schemes
	case ScopeSubGroup:
		if scheme != nil {
			list = f.subgroups[*scheme]
		}
	case ScopeSetting:
		if scheme != nil && subgroup != nil {
			list = f.settings[[2]guid.GUID{*scheme, *subgroup}]
		}
	}
	if int(index) >= len(list) {
		return guid.GUID{}, ErrNoMoreItems
	}
	return list[index], nil
}

func (f *fakeProvider) ActiveScheme() (guid.GUID, error) {
	return f.active, nil
}

func (f *fakeProvider) SetActiveScheme(scheme guid.GUID) error {
	f.active = scheme
	f.activations = append(f.activations, scheme)
	return nil
}

func (f *fakeProvider) FriendlyName(p Path) (string, error) {
	name, ok := f.names[p.String()]
	if !ok {
		return "", errFakeNotFound
	}
	return name, nil
}

func (f *fakeProvider) Description(p Path) (string, error) {
	desc, ok := f.descs[p.String()]
	if !ok {
		return "", errFakeNotFound
	}
	return desc, nil
}

func (f *fakeProvider) IconResourceSpecifier(p Path) (string, error) {
	icon, ok := f.icons[p.String()]
	if !ok {
		return "", errFakeNotFound
	}
	return icon, nil
}

func (f *fakeProvider) ReadValue(src Source, p Path) (value.Value, error) {
	v, ok := f.values[valueKey(src, p)]
	if !ok {
		return value.Value{}, errFakeNotFound
	}
	return v, nil
}

func (f *fakeProvider) ReadValueIndex(src Source, p Path) (uint32, error) {
	idx, ok := f.index[valueKey(src, p)]
	if !ok {
		return 0, errFakeNotFound
	}
	return idx, nil
}

func (f *fakeProvider) WriteValueIndex(src Source, p Path, index uint32) error {
	f.index[valueKey(src, p)] = index
	return nil
}

func (f *fakeProvider) IsRangeDefined(subgroup, setting *guid.GUID) bool {
	return f.ranged[[2]guid.GUID{*subgroup, *setting}]
}

func (f *fakeProvider) PossibleValue(subgroup, setting *guid.GUID, index uint32) (value.Value, error) {
	entries := f.possible[[2]guid.GUID{*subgroup, *setting}]
	if int(index) >= len(entries) {
		return value.Value{}, errFakeNotFound
	}
	return entries[index].val, nil
}

func (f *fakeProvider) PossibleFriendlyName(subgroup, setting *guid.GUID, index uint32) (string, error) {
	entries := f.possible[[2]guid.GUID{*subgroup, *setting}]
	if int(index) >= len(entries) {
		return "", errFakeNotFound
	}
	return entries[index].name, nil
}

func (f *fakeProvider) PossibleDescription(subgroup, setting *guid.GUID, index uint32) (string, error) {
	entries := f.possible[[2]guid.GUID{*subgroup, *setting}]
	if int(index) >= len(entries) {
		return "", errFakeNotFound
	}
	return entries[index].desc, nil
}

func (f *fakeProvider) CanRestoreIndividualDefaultScheme(scheme guid.GUID) bool {
	return f.restorable[scheme]
}

func (f *fakeProvider) DeleteScheme(scheme guid.GUID) error {
	f.deleted = append(f.deleted, scheme)
	for i, id := range f.schemes {
		if id == scheme {
			f.schemes = append(f.schemes[:i], f.schemes[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProvider) DuplicateScheme(scheme guid.GUID) (guid.GUID, error) {
	if f.duplicateID.IsZero() {
		return guid.GUID{}, errFakeNotFound
	}
	f.schemes = append(f.schemes, f.duplicateID)
	return f.duplicateID, nil
}

func (f *fakeProvider) ImportScheme(filename string) (guid.GUID, error) {
	if f.importID.IsZero() {
		return guid.GUID{}, errFakeNotFound
	}
	f.imported = append(f.imported, filename)
	f.schemes = append(f.schemes, f.importID)
	return f.importID, nil
}

func (f *fakeProvider) CreateSetting(subgroup, setting guid.GUID) error {
	f.created = append(f.created, [2]guid.GUID{subgroup, setting})
	return nil
}

func (f *fakeProvider) CreatePossibleSetting(subgroup, setting guid.GUID, index uint32) error {
	f.createdPossible = append(f.createdPossible, index)
	return nil
}

func (f *fakeProvider) PlatformRole() (PlatformRole, error) {
	return f.role, nil
}
