package powercfg

import (
	"fmt"

	"github.com/smnsjas/go-powercfg/guid"
)

// Scheme is a handle to one power scheme (profile), such as Balanced or
// High performance. Constructing a Scheme performs no native calls and no
// existence check; every method reads through the owning Store's provider.
type Scheme struct {
	store *Store
	id    guid.GUID
}

// Scheme returns a handle to the scheme with the given identifier.
func (s *Store) Scheme(id guid.GUID) Scheme {
	return Scheme{store: s, id: id}
}

// Schemes enumerates every power scheme in the store.
func (s *Store) Schemes() ([]Scheme, error) {
	ids, err := s.enumerate(ScopeScheme, nil, nil)
	if err != nil {
		return nil, err
	}
	schemes := make([]Scheme, len(ids))
	for i, id := range ids {
		schemes[i] = Scheme{store: s, id: id}
	}
	return schemes, nil
}

// ActiveScheme returns the scheme that is currently applied.
func (s *Store) ActiveScheme() (Scheme, error) {
	id, err := s.provider.ActiveScheme()
	if err != nil {
		return Scheme{}, fmt.Errorf("get active scheme: %w", err)
	}
	s.logf("active scheme is %s", id)
	return Scheme{store: s, id: id}, nil
}

// ImportScheme loads a scheme from a .pow file, as exported by
// "powercfg.exe /export", and returns the scheme the service created for it.
func (s *Store) ImportScheme(filename string) (Scheme, error) {
	id, err := s.provider.ImportScheme(filename)
	if err != nil {
		return Scheme{}, fmt.Errorf("import scheme from %q: %w", filename, err)
	}
	s.logf("imported scheme %s from %q", id, filename)
	return Scheme{store: s, id: id}, nil
}

// ID returns the scheme identifier.
func (sc Scheme) ID() guid.GUID {
	return sc.id
}

// String returns the braced form of the scheme identifier.
func (sc Scheme) String() string {
	return sc.id.String()
}

// FriendlyName returns the display name of the scheme, such as "Balanced".
func (sc Scheme) FriendlyName() (string, error) {
	name, err := sc.store.provider.FriendlyName(Path{Scheme: &sc.id})
	if err != nil {
		return "", fmt.Errorf("read friendly name of scheme %s: %w", sc.id, err)
	}
	return name, nil
}

// Description returns the description of the scheme.
func (sc Scheme) Description() (string, error) {
	desc, err := sc.store.provider.Description(Path{Scheme: &sc.id})
	if err != nil {
		return "", fmt.Errorf("read description of scheme %s: %w", sc.id, err)
	}
	return desc, nil
}

// IconResourceSpecifier returns the icon resource reference of the scheme.
func (sc Scheme) IconResourceSpecifier() (string, error) {
	icon, err := sc.store.provider.IconResourceSpecifier(Path{Scheme: &sc.id})
	if err != nil {
		return "", fmt.Errorf("read icon resource of scheme %s: %w", sc.id, err)
	}
	return icon, nil
}

// IsActive reports whether this scheme is the active one.
func (sc Scheme) IsActive() (bool, error) {
	active, err := sc.store.provider.ActiveScheme()
	if err != nil {
		return false, fmt.Errorf("get active scheme: %w", err)
	}
	return active == sc.id, nil
}

// SetActive makes this scheme the active one.
func (sc Scheme) SetActive() error {
	if err := sc.store.provider.SetActiveScheme(sc.id); err != nil {
		return fmt.Errorf("activate scheme %s: %w", sc.id, err)
	}
	sc.store.logf("activated scheme %s", sc.id)
	return nil
}

// Delete removes this scheme from the store. The active scheme cannot be
// deleted; the service rejects the call.
func (sc Scheme) Delete() error {
	if err := sc.store.provider.DeleteScheme(sc.id); err != nil {
		return fmt.Errorf("delete scheme %s: %w", sc.id, err)
	}
	sc.store.logf("deleted scheme %s", sc.id)
	return nil
}

// Duplicate copies this scheme and returns the copy. The service assigns
// the new scheme identifier.
func (sc Scheme) Duplicate() (Scheme, error) {
	id, err := sc.store.provider.DuplicateScheme(sc.id)
	if err != nil {
		return Scheme{}, fmt.Errorf("duplicate scheme %s: %w", sc.id, err)
	}
	sc.store.logf("duplicated scheme %s as %s", sc.id, id)
	return Scheme{store: sc.store, id: id}, nil
}

// CanRestoreIndividualDefault reports whether the scheme can be restored to
// its default settings.
func (sc Scheme) CanRestoreIndividualDefault() bool {
	return sc.store.provider.CanRestoreIndividualDefaultScheme(sc.id)
}

// SubGroup returns a handle to a subgroup of this scheme.
func (sc Scheme) SubGroup(id guid.GUID) SubGroup {
	return SubGroup{store: sc.store, scheme: sc.id, id: id}
}

// SubGroups enumerates the subgroups of this scheme.
func (sc Scheme) SubGroups() ([]SubGroup, error) {
	ids, err := sc.store.enumerate(ScopeSubGroup, &sc.id, nil)
	if err != nil {
		return nil, err
	}
	groups := make([]SubGroup, len(ids))
	for i, id := range ids {
		groups[i] = SubGroup{store: sc.store, scheme: sc.id, id: id}
	}
	return groups, nil
}

// Settings enumerates the settings that sit directly under the scheme,
// outside any subgroup.
func (sc Scheme) Settings() ([]Setting, error) {
	return sc.NoSubGroup().Settings()
}

// Setting returns a handle to a setting of this scheme, addressed by its
// subgroup and setting identifiers. Settings that sit directly under the
// scheme use SubGroupNone.
func (sc Scheme) Setting(subgroup, setting guid.GUID) Setting {
	scheme := sc.id
	return Setting{store: sc.store, scheme: &scheme, subgroup: subgroup, id: setting}
}

// Accessors for the well-known subgroups.

// NoSubGroup returns the pseudo subgroup holding the settings that sit
// directly under the scheme.
func (sc Scheme) NoSubGroup() SubGroup { return sc.SubGroup(SubGroupNone) }

// Disk returns the hard-disk subgroup.
func (sc Scheme) Disk() SubGroup { return sc.SubGroup(SubGroupDisk) }

// SystemButton returns the power-buttons-and-lid subgroup.
func (sc Scheme) SystemButton() SubGroup { return sc.SubGroup(SubGroupSystemButton) }

// ProcessorSettings returns the processor power-management subgroup.
func (sc Scheme) ProcessorSettings() SubGroup { return sc.SubGroup(SubGroupProcessor) }

// Display returns the display subgroup.
func (sc Scheme) Display() SubGroup { return sc.SubGroup(SubGroupDisplay) }

// Battery returns the battery subgroup.
func (sc Scheme) Battery() SubGroup { return sc.SubGroup(SubGroupBattery) }

// Sleep returns the sleep subgroup.
func (sc Scheme) Sleep() SubGroup { return sc.SubGroup(SubGroupSleep) }

// PCIExpress returns the PCI Express subgroup.
func (sc Scheme) PCIExpress() SubGroup { return sc.SubGroup(SubGroupPCIExpress) }
