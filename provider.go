package powercfg

import (
	"fmt"

	"github.com/smnsjas/go-powercfg/guid"
	"github.com/smnsjas/go-powercfg/value"
)

// Scope selects which level of the store hierarchy an enumeration walks.
type Scope uint32

const (
	// ScopeScheme enumerates power schemes. Path filters are ignored.
	ScopeScheme Scope = iota

	// ScopeSubGroup enumerates the subgroups of one scheme.
	ScopeSubGroup

	// ScopeSetting enumerates the settings of one subgroup.
	ScopeSetting
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeScheme:
		return "scheme"
	case ScopeSubGroup:
		return "subgroup"
	case ScopeSetting:
		return "setting"
	default:
		return fmt.Sprintf("Scope(%d)", uint32(s))
	}
}

// Source selects which power source a setting value belongs to.
type Source uint32

const (
	// AC is the plugged-in power source.
	AC Source = iota

	// DC is the battery power source.
	DC
)

// String returns the conventional source abbreviation.
func (s Source) String() string {
	switch s {
	case AC:
		return "AC"
	case DC:
		return "DC"
	default:
		return fmt.Sprintf("Source(%d)", uint32(s))
	}
}

// Path addresses an entry in the store hierarchy. A nil field means "not
// specified" at that level, which the native service treats differently from
// the zero GUID: a nil scheme on a value read addresses the setting's
// default, and a nil subgroup addresses settings directly under the scheme.
//
// Providers must treat the pointed-to GUIDs as read-only.
type Path struct {
	Scheme   *guid.GUID
	SubGroup *guid.GUID
	Setting  *guid.GUID
}

// String renders the path segments that are present, for log output.
func (p Path) String() string {
	s := "/"
	if p.Scheme != nil {
		s += p.Scheme.Dashed()
	}
	if p.SubGroup != nil {
		s += "/" + p.SubGroup.Dashed()
	}
	if p.Setting != nil {
		s += "/" + p.Setting.Dashed()
	}
	return s
}

// Provider is the access boundary between the entity layer and a
// power-configuration service. The Windows implementation binds powrprof.dll;
// tests substitute an in-memory implementation.
//
// Enumerate returns ErrNoMoreItems once index is past the last entry.
// Methods taking a Path read only the levels their operation needs: name
// lookups use every non-nil level, value operations require SubGroup and
// Setting and treat a nil Scheme as the setting default.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	// Enumerate returns the identifier at index within scope. The scheme
	// and subgroup filters narrow the walk for ScopeSubGroup and
	// ScopeSetting.
	Enumerate(scope Scope, scheme, subgroup *guid.GUID, index uint32) (guid.GUID, error)

	// ActiveScheme returns the identifier of the active power scheme.
	ActiveScheme() (guid.GUID, error)

	// SetActiveScheme makes the given scheme the active one.
	SetActiveScheme(scheme guid.GUID) error

	// FriendlyName returns the display name of the addressed entry.
	FriendlyName(p Path) (string, error)

	// Description returns the description of the addressed entry.
	Description(p Path) (string, error)

	// IconResourceSpecifier returns the icon resource reference of the
	// addressed entry, in the usual "module,-id" form.
	IconResourceSpecifier(p Path) (string, error)

	// ReadValue returns the tagged value of a setting for one source.
	ReadValue(src Source, p Path) (value.Value, error)

	// ReadValueIndex returns the value index of a setting for one source.
	ReadValueIndex(src Source, p Path) (uint32, error)

	// WriteValueIndex sets the value index of a setting for one source.
	// The write is not applied to a running scheme until the scheme is
	// re-activated.
	WriteValueIndex(src Source, p Path, index uint32) error

	// IsRangeDefined reports whether the setting declares the range of
	// possible values its indexes address.
	IsRangeDefined(subgroup, setting *guid.GUID) bool

	// PossibleValue returns the tagged value a setting takes at the given
	// value index.
	PossibleValue(subgroup, setting *guid.GUID, index uint32) (value.Value, error)

	// PossibleFriendlyName returns the display name of the value at the
	// given value index.
	PossibleFriendlyName(subgroup, setting *guid.GUID, index uint32) (string, error)

	// PossibleDescription returns the description of the value at the
	// given value index.
	PossibleDescription(subgroup, setting *guid.GUID, index uint32) (string, error)

	// CanRestoreIndividualDefaultScheme reports whether the scheme can be
	// restored to its per-scheme defaults.
	CanRestoreIndividualDefaultScheme(scheme guid.GUID) bool

	// DeleteScheme removes the scheme from the store.
	DeleteScheme(scheme guid.GUID) error

	// DuplicateScheme copies the scheme and returns the identifier the
	// service assigned to the copy.
	DuplicateScheme(scheme guid.GUID) (guid.GUID, error)

	// ImportScheme loads a scheme from a .pow file and returns the
	// identifier the service assigned to it.
	ImportScheme(filename string) (guid.GUID, error)

	// CreateSetting registers a new setting under a subgroup.
	CreateSetting(subgroup, setting guid.GUID) error

	// CreatePossibleSetting registers a possible value slot for a setting
	// at the given value index.
	CreatePossibleSetting(subgroup, setting guid.GUID, index uint32) error

	// PlatformRole returns the machine form factor the power engine
	// assumes.
	PlatformRole() (PlatformRole, error)
}
