// Package powercfg provides typed access to the Windows power-configuration store.
//
// The store is the hierarchy behind powercfg.exe and the Power Options
// control panel: power schemes (profiles such as Balanced or High
// performance) contain subgroups (Display, Sleep, Battery, ...), subgroups
// contain individual settings, and each setting carries an AC value (plugged
// in) and a DC value (on battery) plus an enumeration of the values it may
// take.
//
// # Architecture
//
// The library is organized into layers:
//
//   - Store/Scheme/SubGroup/Setting: High-level API over the store hierarchy
//   - guid: the 16-byte mixed-endian identifier codec that keys everything
//   - value: the tagged binary value codec (registry value types)
//   - powrprof: the raw powrprof.dll binding (Windows only)
//
// Protocol logic is separated from the native boundary: the guid and value
// codecs and the whole entity layer are portable and fully testable on any
// platform against a fake Provider. Only the powrprof binding and Open are
// compiled for Windows.
//
// # Store Hierarchy
//
//	Store
//	  └─ Scheme ("Balanced")
//	       ├─ SubGroup (Display)
//	       │    └─ Setting (Turn off display after)
//	       │         ├─ AC value / DC value
//	       │         └─ PossibleSetting (the values it may take)
//	       └─ SubGroup (Sleep, Battery, ...)
//
// # Basic Usage
//
//	// Open the native store (Windows)
//	store, err := powercfg.Open()
//	if err != nil {
//	    return err
//	}
//
//	// Inspect the active scheme
//	active, err := store.ActiveScheme()
//	if err != nil {
//	    return err
//	}
//	name, _ := active.FriendlyName()
//
//	// Read a setting
//	setting := active.Display().Setting(videoIdle)
//	v, err := setting.ACValue()
//	fmt.Println(name, v.Decode())
//
// # Providers
//
// A Store reads and writes through a Provider. On Windows, Open wires the
// powrprof-backed provider; elsewhere, and in tests, any Provider
// implementation can drive the same entity API.
//
// # Reference
//
// Power management functions: https://learn.microsoft.com/en-us/windows/win32/power/power-management-functions
package powercfg

// Version is the library version.
const Version = "0.1.0-dev"
