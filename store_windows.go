//go:build windows

package powercfg

import (
	"fmt"

	"github.com/smnsjas/go-powercfg/powrprof"
)

// Open returns a Store over the native power-configuration service.
func Open() (*Store, error) {
	if err := powrprof.Load(); err != nil {
		return nil, fmt.Errorf("load powrprof.dll: %w", err)
	}
	return New(nativeProvider{}), nil
}
