// Package guid implements the 16-byte globally unique identifier format used
// throughout the Windows power-configuration store.
//
// Power schemes, subgroups and individual settings are all keyed by GUIDs.
// The native APIs exchange them in their in-memory layout, which is
// mixed-endian per the Windows GUID structure (guiddef.h):
//
//	┌──────────────────────────────────────────────────────────┐
//	│  Bytes 0-3:   Data1 (uint32) - LITTLE-ENDIAN             │
//	├──────────────────────────────────────────────────────────┤
//	│  Bytes 4-5:   Data2 (uint16) - LITTLE-ENDIAN             │
//	├──────────────────────────────────────────────────────────┤
//	│  Bytes 6-7:   Data3 (uint16) - LITTLE-ENDIAN             │
//	├──────────────────────────────────────────────────────────┤
//	│  Bytes 8-9:   clock-seq (uint16) - BIG-ENDIAN            │
//	├──────────────────────────────────────────────────────────┤
//	│  Bytes 10-15: node (48-bit) - BIG-ENDIAN                 │
//	└──────────────────────────────────────────────────────────┘
//
// The first three fields are stored little-endian while the last eight bytes
// keep network order. This matches .NET's System.Guid serialization and
// differs from the pure big-endian RFC 4122 wire format; FromUUID and
// GUID.UUID convert between the two.
//
// # Text Forms
//
// Two textual encodings exist, both lowercase zero-padded hex:
//
//	Dashed: 381b4222-f694-41f0-9685-ff5bb260df2e          (36 chars)
//	Braced: {381b4222-f694-41f0-9685-ff5bb260df2e}        (38 chars)
//
// The braced form is what Windows tools such as powercfg.exe display and is
// the GUID's canonical String() form.
//
// # Reference
//
// GUID structure: https://learn.microsoft.com/en-us/windows/win32/api/guiddef/ns-guiddef-guid
package guid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Size is the encoded identifier size in bytes.
const Size = 16

const (
	dashedLen = 36
	bracedLen = 38
)

var (
	// ErrFormat is returned when identifier text has the wrong shape:
	// wrong length, misplaced dashes or braces, or non-hex characters.
	ErrFormat = errors.New("malformed GUID")
	// ErrRange is returned when a numeric field exceeds its bit width.
	ErrRange = errors.New("GUID field out of range")
)

// GUID is a 128-bit identifier held in its native Windows memory layout.
//
// GUID is a comparable value type: == compares all 16 bytes, and the zero
// value is the all-zero (nil) identifier. Once constructed a GUID is never
// mutated; all operations return new values.
type GUID struct {
	b [Size]byte
}

// FromParts builds a GUID from the five fields of the dashed text form,
// given as integers. The parameters are deliberately wider than the fields
// they fill so that out-of-range inputs are representable and rejected:
// a must fit 32 bits, b/c/d 16 bits each, and e 48 bits, otherwise an
// ErrRange error is returned.
func FromParts(a, b, c, d, e uint64) (GUID, error) {
	if a > 0xFFFFFFFF {
		return GUID{}, fmt.Errorf("%w: first field %#x exceeds 32 bits", ErrRange, a)
	}
	if b > 0xFFFF {
		return GUID{}, fmt.Errorf("%w: second field %#x exceeds 16 bits", ErrRange, b)
	}
	if c > 0xFFFF {
		return GUID{}, fmt.Errorf("%w: third field %#x exceeds 16 bits", ErrRange, c)
	}
	if d > 0xFFFF {
		return GUID{}, fmt.Errorf("%w: fourth field %#x exceeds 16 bits", ErrRange, d)
	}
	if e > 0xFFFFFFFFFFFF {
		return GUID{}, fmt.Errorf("%w: fifth field %#x exceeds 48 bits", ErrRange, e)
	}

	var g GUID

	// Data1 (4 bytes, little-endian)
	g.b[0] = byte(a)
	g.b[1] = byte(a >> 8)
	g.b[2] = byte(a >> 16)
	g.b[3] = byte(a >> 24)

	// Data2 (2 bytes, little-endian)
	g.b[4] = byte(b)
	g.b[5] = byte(b >> 8)

	// Data3 (2 bytes, little-endian)
	g.b[6] = byte(c)
	g.b[7] = byte(c >> 8)

	// Clock-seq (2 bytes, big-endian)
	g.b[8] = byte(d >> 8)
	g.b[9] = byte(d)

	// Node (6 bytes, big-endian)
	g.b[10] = byte(e >> 40)
	g.b[11] = byte(e >> 32)
	g.b[12] = byte(e >> 24)
	g.b[13] = byte(e >> 16)
	g.b[14] = byte(e >> 8)
	g.b[15] = byte(e)

	return g, nil
}

// FromDefine builds a GUID from the eleven arguments of the Windows SDK
// DEFINE_GUID macro: Data1, Data2, Data3 and the eight Data4 bytes. The
// parameter types enforce the field widths, so no error is possible.
func FromDefine(a uint32, b, c uint16, d, e, f, g, h, i, j, k byte) GUID {
	var out GUID

	out.b[0] = byte(a)
	out.b[1] = byte(a >> 8)
	out.b[2] = byte(a >> 16)
	out.b[3] = byte(a >> 24)

	out.b[4] = byte(b)
	out.b[5] = byte(b >> 8)

	out.b[6] = byte(c)
	out.b[7] = byte(c >> 8)

	// Data4 bytes are already in memory order.
	out.b[8], out.b[9], out.b[10], out.b[11] = d, e, f, g
	out.b[12], out.b[13], out.b[14], out.b[15] = h, i, j, k

	return out
}

// FromBytes builds a GUID from its 16-byte native layout. The input is
// copied, so the caller keeps ownership of b.
func FromBytes(b []byte) (GUID, error) {
	if len(b) != Size {
		return GUID{}, fmt.Errorf("%w: need %d bytes, got %d", ErrFormat, Size, len(b))
	}
	var g GUID
	copy(g.b[:], b)
	return g, nil
}

// ParseDashed parses the 36-character dashed form
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx". Both hex cases are accepted.
func ParseDashed(s string) (GUID, error) {
	if len(s) != dashedLen {
		return GUID{}, fmt.Errorf("%w: dashed form must be %d characters, got %d", ErrFormat, dashedLen, len(s))
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return GUID{}, fmt.Errorf("%w: dashes expected at offsets 8, 13, 18 and 23 in %q", ErrFormat, s)
	}

	var fields [5]uint64
	for i, seg := range [5]string{s[0:8], s[9:13], s[14:18], s[19:23], s[24:36]} {
		v, ok := parseHexField(seg)
		if !ok {
			return GUID{}, fmt.Errorf("%w: non-hex character in segment %q", ErrFormat, seg)
		}
		fields[i] = v
	}

	// Segment widths already bound every field, so FromParts cannot fail here.
	return FromParts(fields[0], fields[1], fields[2], fields[3], fields[4])
}

// ParseBraced parses the 38-character braced form
// "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}".
func ParseBraced(s string) (GUID, error) {
	if len(s) != bracedLen {
		return GUID{}, fmt.Errorf("%w: braced form must be %d characters, got %d", ErrFormat, bracedLen, len(s))
	}
	if s[0] != '{' || s[bracedLen-1] != '}' {
		return GUID{}, fmt.Errorf("%w: missing braces in %q", ErrFormat, s)
	}
	return ParseDashed(s[1 : bracedLen-1])
}

// MustParse parses either text form, choosing by the leading brace, and
// panics if the input is malformed. It is intended for package-level
// declarations of well-known identifiers.
func MustParse(s string) GUID {
	var (
		g   GUID
		err error
	)
	if len(s) > 0 && s[0] == '{' {
		g, err = ParseBraced(s)
	} else {
		g, err = ParseDashed(s)
	}
	if err != nil {
		panic(fmt.Sprintf("guid: MustParse(%q): %v", s, err))
	}
	return g
}

// New returns a random (version 4) GUID in native layout.
func New() GUID {
	return FromUUID(uuid.New())
}

// FromUUID converts an RFC 4122 UUID (big-endian byte order) to the native
// layout by byte-swapping the first three fields.
func FromUUID(u uuid.UUID) GUID {
	var g GUID

	// Time-low (4 bytes) - reverse for little-endian
	g.b[0], g.b[1], g.b[2], g.b[3] = u[3], u[2], u[1], u[0]

	// Time-mid (2 bytes) - reverse for little-endian
	g.b[4], g.b[5] = u[5], u[4]

	// Time-hi-and-version (2 bytes) - reverse for little-endian
	g.b[6], g.b[7] = u[7], u[6]

	// Clock-seq and node (8 bytes) - keep as-is (already in correct order)
	copy(g.b[8:], u[8:])

	return g
}

// UUID converts the GUID to its RFC 4122 representation. The textual forms
// of the two types agree: g.Dashed() == g.UUID().String().
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID

	// Time-low (4 bytes) - reverse from little-endian
	u[0], u[1], u[2], u[3] = g.b[3], g.b[2], g.b[1], g.b[0]

	// Time-mid (2 bytes) - reverse from little-endian
	u[4], u[5] = g.b[5], g.b[4]

	// Time-hi-and-version (2 bytes) - reverse from little-endian
	u[6], u[7] = g.b[7], g.b[6]

	// Clock-seq and node (8 bytes) - keep as-is
	copy(u[8:], g.b[8:])

	return u
}

// Bytes returns the 16-byte native layout as a fresh slice.
func (g GUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, g.b[:])
	return b
}

// Parts returns the five fields of the dashed text form as integers,
// the inverse of FromParts.
func (g GUID) Parts() (a uint32, b, c, d uint16, e uint64) {
	a = uint32(g.b[0]) | uint32(g.b[1])<<8 | uint32(g.b[2])<<16 | uint32(g.b[3])<<24
	b = uint16(g.b[4]) | uint16(g.b[5])<<8
	c = uint16(g.b[6]) | uint16(g.b[7])<<8
	d = uint16(g.b[8])<<8 | uint16(g.b[9])
	e = uint64(g.b[10])<<40 | uint64(g.b[11])<<32 | uint64(g.b[12])<<24 |
		uint64(g.b[13])<<16 | uint64(g.b[14])<<8 | uint64(g.b[15])
	return a, b, c, d, e
}

// IsZero reports whether g is the all-zero identifier.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// Dashed renders the 36-character dashed form in lowercase hex.
func (g GUID) Dashed() string {
	a, b, c, d, e := g.Parts()
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x", a, b, c, d, e)
}

// Braced renders the 38-character braced form in lowercase hex.
func (g GUID) Braced() string {
	return "{" + g.Dashed() + "}"
}

// String returns the braced form, matching how Windows tools display
// power-configuration identifiers.
func (g GUID) String() string {
	return g.Braced()
}

// parseHexField parses a fixed-width hex field into an integer.
// The caller bounds the width; 16 hex digits is the most that fits.
func parseHexField(s string) (uint64, bool) {
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint64(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
