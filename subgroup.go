package powercfg

import (
	"fmt"

	"github.com/smnsjas/go-powercfg/guid"
)

// Well-known subgroup identifiers, as published in winnt.h.
var (
	// SubGroupNone is the pseudo subgroup (NO_SUBGROUP_GUID) addressing
	// the settings that sit directly under a scheme.
	SubGroupNone = guid.MustParse("fea3413e-7e05-4911-9a71-700331f1c294")

	// SubGroupDisk holds the hard-disk settings (GUID_DISK_SUBGROUP).
	SubGroupDisk = guid.MustParse("0012ee47-9041-4b5d-9b77-535fba8b1442")

	// SubGroupSystemButton holds the power-button and lid settings
	// (GUID_SYSTEM_BUTTON_SUBGROUP).
	SubGroupSystemButton = guid.MustParse("4f971e89-eebd-4455-a8de-9e59040e7347")

	// SubGroupProcessor holds the processor power-management settings
	// (GUID_PROCESSOR_SETTINGS_SUBGROUP).
	SubGroupProcessor = guid.MustParse("54533251-82be-4824-96c1-47b60b740d00")

	// SubGroupDisplay holds the display settings (GUID_VIDEO_SUBGROUP).
	SubGroupDisplay = guid.MustParse("7516b95f-f776-4464-8c53-06167f40cc99")

	// SubGroupBattery holds the battery settings (GUID_BATTERY_SUBGROUP).
	SubGroupBattery = guid.MustParse("e73a048d-bf27-4f12-9731-8b2076e8891f")

	// SubGroupSleep holds the sleep settings (GUID_SLEEP_SUBGROUP).
	SubGroupSleep = guid.MustParse("238c9fa8-0aad-41ed-83f4-97be242c8f20")

	// SubGroupPCIExpress holds the PCI Express settings
	// (GUID_PCIEXPRESS_SETTINGS_SUBGROUP).
	SubGroupPCIExpress = guid.MustParse("501a4d13-42af-4429-9fd1-a8218c268e20")
)

// SubGroup is a handle to one subgroup of settings within a scheme, such as
// Display or Sleep. Like Scheme, it is a lightweight handle; every method
// reads through the owning Store's provider.
type SubGroup struct {
	store  *Store
	scheme guid.GUID
	id     guid.GUID
}

// ID returns the subgroup identifier.
func (sg SubGroup) ID() guid.GUID {
	return sg.id
}

// Scheme returns the scheme this subgroup belongs to.
func (sg SubGroup) Scheme() Scheme {
	return Scheme{store: sg.store, id: sg.scheme}
}

// String returns the braced form of the subgroup identifier.
func (sg SubGroup) String() string {
	return sg.id.String()
}

// FriendlyName returns the display name of the subgroup, such as "Display".
func (sg SubGroup) FriendlyName() (string, error) {
	name, err := sg.store.provider.FriendlyName(Path{Scheme: &sg.scheme, SubGroup: &sg.id})
	if err != nil {
		return "", fmt.Errorf("read friendly name of subgroup %s: %w", sg.id, err)
	}
	return name, nil
}

// Description returns the description of the subgroup.
func (sg SubGroup) Description() (string, error) {
	desc, err := sg.store.provider.Description(Path{Scheme: &sg.scheme, SubGroup: &sg.id})
	if err != nil {
		return "", fmt.Errorf("read description of subgroup %s: %w", sg.id, err)
	}
	return desc, nil
}

// IconResourceSpecifier returns the icon resource reference of the subgroup.
func (sg SubGroup) IconResourceSpecifier() (string, error) {
	icon, err := sg.store.provider.IconResourceSpecifier(Path{Scheme: &sg.scheme, SubGroup: &sg.id})
	if err != nil {
		return "", fmt.Errorf("read icon resource of subgroup %s: %w", sg.id, err)
	}
	return icon, nil
}

// Setting returns a handle to a setting within this subgroup.
func (sg SubGroup) Setting(id guid.GUID) Setting {
	scheme := sg.scheme
	return Setting{store: sg.store, scheme: &scheme, subgroup: sg.id, id: id}
}

// Settings enumerates the settings of this subgroup.
func (sg SubGroup) Settings() ([]Setting, error) {
	ids, err := sg.store.enumerate(ScopeSetting, &sg.scheme, &sg.id)
	if err != nil {
		return nil, err
	}
	settings := make([]Setting, len(ids))
	for i, id := range ids {
		scheme := sg.scheme
		settings[i] = Setting{store: sg.store, scheme: &scheme, subgroup: sg.id, id: id}
	}
	return settings, nil
}
