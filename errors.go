package powercfg

import "errors"

// Sentinel errors returned by Provider implementations and the entity layer.
// Native provider errors not listed here are returned as syscall.Errno values
// wrapped with the failing operation.
var (
	// ErrNoMoreItems reports that an enumeration index is past the last
	// entry. The entity layer consumes it while collecting enumerations, so
	// callers of Schemes, SubGroups and Settings never observe it.
	ErrNoMoreItems = errors.New("no more items")
)
