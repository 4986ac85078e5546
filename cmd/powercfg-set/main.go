//go:build windows

// Command powercfg-set writes the AC and/or DC value index of one power
// setting, similar to "powercfg.exe /setacvalueindex", and re-applies the
// owning scheme when it is the active one. The defaults address the display
// brightness setting of the active scheme.
package main

import (
	"flag"
	"fmt"
	"log"

	powercfg "github.com/smnsjas/go-powercfg"
	"github.com/smnsjas/go-powercfg/guid"
)

// displayBrightness is GUID_DEVICE_POWER_POLICY_VIDEO_BRIGHTNESS, the
// display brightness level in percent.
var displayBrightness = guid.MustParse("aded5e82-b909-4619-9949-f5d71dac0bcb")

var (
	schemeFlag   = flag.String("scheme", "", "scheme GUID (default: the active scheme)")
	subgroupFlag = flag.String("subgroup", powercfg.SubGroupDisplay.Dashed(), "subgroup GUID")
	settingFlag  = flag.String("setting", displayBrightness.Dashed(), "setting GUID")
	acFlag       = flag.Int64("ac", -1, "AC value index to write (-1: leave unchanged)")
	dcFlag       = flag.Int64("dc", -1, "DC value index to write (-1: leave unchanged)")
	verboseFlag  = flag.Bool("v", false, "enable debug logging to stderr")
)

func main() {
	flag.Parse()

	if *acFlag < 0 && *dcFlag < 0 {
		log.Fatal("Nothing to write: pass -ac and/or -dc")
	}

	store, err := powercfg.Open()
	if err != nil {
		log.Fatalf("Failed to open the power store: %v", err)
	}
	if *verboseFlag {
		store.EnableDebugLogging()
	}

	scheme, err := selectScheme(store)
	if err != nil {
		log.Fatalf("Failed to resolve the scheme: %v", err)
	}
	setting := scheme.Setting(mustGUID(*subgroupFlag), mustGUID(*settingFlag))

	if *acFlag >= 0 {
		log.Printf("Writing AC value index %d of setting %s...", *acFlag, setting)
		if err := setting.SetACValueIndex(uint32(*acFlag)); err != nil {
			log.Fatalf("Failed to write the AC value index: %v", err)
		}
	}
	if *dcFlag >= 0 {
		log.Printf("Writing DC value index %d of setting %s...", *dcFlag, setting)
		if err := setting.SetDCValueIndex(uint32(*dcFlag)); err != nil {
			log.Fatalf("Failed to write the DC value index: %v", err)
		}
	}

	applied, err := setting.ApplyChanges()
	if err != nil {
		log.Fatalf("Failed to apply the changes: %v", err)
	}
	if applied {
		log.Println("Changes applied to the running configuration.")
	} else {
		log.Println("Scheme is not active; changes are stored but not applied.")
	}

	for _, src := range []powercfg.Source{powercfg.AC, powercfg.DC} {
		index, err := setting.ValueIndex(src)
		if err != nil {
			fmt.Printf("%s value index: <error: %v>\n", src, err)
			continue
		}
		fmt.Printf("%s value index: %d\n", src, index)
	}
}

// selectScheme resolves the -scheme flag, defaulting to the active scheme.
func selectScheme(store *powercfg.Store) (powercfg.Scheme, error) {
	if *schemeFlag == "" {
		return store.ActiveScheme()
	}
	id, err := parseGUID(*schemeFlag)
	if err != nil {
		return powercfg.Scheme{}, err
	}
	return store.Scheme(id), nil
}

func mustGUID(s string) guid.GUID {
	id, err := parseGUID(s)
	if err != nil {
		log.Fatalf("Failed to parse GUID %q: %v", s, err)
	}
	return id
}

func parseGUID(s string) (guid.GUID, error) {
	if len(s) > 0 && s[0] == '{' {
		return guid.ParseBraced(s)
	}
	return guid.ParseDashed(s)
}
