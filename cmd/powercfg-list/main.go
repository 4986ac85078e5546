//go:build windows

// Command powercfg-list walks the power-configuration store and prints the
// schemes, subgroups and settings it finds, similar to "powercfg.exe /query".
package main

import (
	"flag"
	"fmt"
	"log"

	powercfg "github.com/smnsjas/go-powercfg"
	"github.com/smnsjas/go-powercfg/guid"
)

var (
	schemeFlag   = flag.String("scheme", "", "list only this scheme (dashed or braced GUID, default: all)")
	settingsFlag = flag.Bool("settings", false, "descend into subgroups and settings with their AC/DC values")
	possibleFlag = flag.Bool("possible", false, "also print the possible values of each setting (implies -settings)")
	verboseFlag  = flag.Bool("v", false, "enable debug logging to stderr")
)

func main() {
	flag.Parse()

	store, err := powercfg.Open()
	if err != nil {
		log.Fatalf("Failed to open the power store: %v", err)
	}
	if *verboseFlag {
		store.EnableDebugLogging()
	}
	if *possibleFlag {
		*settingsFlag = true
	}

	role, err := store.PlatformRole()
	if err != nil {
		log.Fatalf("Failed to determine the platform role: %v", err)
	}
	fmt.Printf("Platform role: %s\n", role)

	active, err := store.ActiveScheme()
	if err != nil {
		log.Fatalf("Failed to get the active scheme: %v", err)
	}

	schemes, err := selectSchemes(store)
	if err != nil {
		log.Fatalf("Failed to enumerate schemes: %v", err)
	}

	for _, scheme := range schemes {
		marker := ""
		if scheme.ID() == active.ID() {
			marker = " (active)"
		}
		fmt.Printf("Scheme %s %q%s\n", scheme, nameOf(scheme), marker)

		if !*settingsFlag {
			continue
		}
		groups, err := scheme.SubGroups()
		if err != nil {
			log.Fatalf("Failed to enumerate subgroups of %s: %v", scheme, err)
		}
		for _, group := range groups {
			fmt.Printf("  SubGroup %s %q\n", group, nameOf(group))
			settings, err := group.Settings()
			if err != nil {
				log.Fatalf("Failed to enumerate settings of %s: %v", group, err)
			}
			for _, setting := range settings {
				fmt.Printf("    Setting %s %q\n", setting, nameOf(setting))
				printValue(setting, powercfg.AC)
				printValue(setting, powercfg.DC)
				if *possibleFlag {
					printPossible(setting.PossibleSetting())
				}
			}
		}
	}
}

// selectSchemes resolves the -scheme filter, defaulting to every scheme.
func selectSchemes(store *powercfg.Store) ([]powercfg.Scheme, error) {
	if *schemeFlag == "" {
		return store.Schemes()
	}
	id, err := parseGUID(*schemeFlag)
	if err != nil {
		return nil, err
	}
	return []powercfg.Scheme{store.Scheme(id)}, nil
}

func printValue(setting powercfg.Setting, src powercfg.Source) {
	v, err := setting.Value(src)
	if err != nil {
		fmt.Printf("      %s: <error: %v>\n", src, err)
		return
	}
	fmt.Printf("      %s: %s (%s)\n", src, v, v.Type)
}

func printPossible(ps powercfg.PossibleSetting) {
	for _, index := range ps.Indexes() {
		v, err := ps.Value(index)
		if err != nil {
			fmt.Printf("      possible %d: <error: %v>\n", index, err)
			continue
		}
		name, err := ps.FriendlyName(index)
		if err != nil {
			name = "(unnamed)"
		}
		fmt.Printf("      possible %d: %s %q\n", index, v, name)
	}
}

// named is anything with a friendly name, for uniform display.
type named interface {
	FriendlyName() (string, error)
}

func nameOf(n named) string {
	name, err := n.FriendlyName()
	if err != nil {
		return "(unnamed)"
	}
	return name
}

func parseGUID(s string) (guid.GUID, error) {
	if len(s) > 0 && s[0] == '{' {
		return guid.ParseBraced(s)
	}
	return guid.ParseDashed(s)
}
