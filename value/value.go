// Package value implements the tagged binary value format of the Windows
// power-configuration store.
//
// Reading a power setting yields two things: a 32-bit type tag and a raw
// byte buffer. The tag values are the registry value types from winnt.h
// (REG_NONE through REG_QWORD), because power settings are ultimately backed
// by registry storage under HKLM\SYSTEM\CurrentControlSet\Control\Power.
//
// # Decoding
//
// Value pairs a tag with its bytes; Decode interprets the bytes:
//
//	┌────────────────────────────┬────┬─────────────────────────────────┐
//	│ Tag                        │ ID │ Decoded form                    │
//	├────────────────────────────┼────┼─────────────────────────────────┤
//	│ TypeNone                   │  0 │ nil                             │
//	│ TypeString                 │  1 │ string (UTF-16LE, terminated)   │
//	│ TypeExpandString           │  2 │ string with %NAME% expanded     │
//	│ TypeBinary                 │  3 │ []byte unchanged                │
//	│ TypeUint32LE               │  4 │ uint32, little-endian           │
//	│ TypeUint32BE               │  5 │ uint32, big-endian              │
//	│ TypeLink                   │  6 │ []byte unchanged                │
//	│ TypeMultiString            │  7 │ []string                        │
//	│ TypeResourceList           │  8 │ []byte unchanged                │
//	│ TypeFullResourceDescriptor │  9 │ []byte unchanged                │
//	│ TypeResourceRequirements-  │ 10 │ []byte unchanged                │
//	│ List                       │    │                                 │
//	│ TypeUint64LE               │ 11 │ uint64, little-endian           │
//	└────────────────────────────┴────┴─────────────────────────────────┘
//
// Decode is total: tags this package does not recognize fall back to the
// raw bytes unchanged, so values written by newer systems pass through
// intact. Buffers shorter than a tag's documented terminator or integer
// width are an upstream contract violation; the decoder tolerates them by
// reading the bytes that are present rather than failing.
//
// # Text Encoding
//
// String-typed buffers are UTF-16LE with a trailing 2-byte null terminator
// (4-byte double null for multi-strings). The terminator is sliced off
// without inspection. The same encoding carries friendly names, descriptions
// and icon resource specifiers in the rest of the store; WideString is
// exported so those call sites share one decoder.
//
// # Reference
//
// Registry value types: https://learn.microsoft.com/en-us/windows/win32/sysinfo/registry-value-types
package value

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
)

// Type identifies the binary encoding of a stored value. The numeric values
// are the winnt.h registry value types and must not be renumbered.
type Type uint32

const (
	// TypeNone is REG_NONE: no defined value.
	TypeNone Type = 0
	// TypeString is REG_SZ: null-terminated UTF-16LE text.
	TypeString Type = 1
	// TypeExpandString is REG_EXPAND_SZ: text with %NAME% environment references.
	TypeExpandString Type = 2
	// TypeBinary is REG_BINARY: free-form bytes.
	TypeBinary Type = 3
	// TypeUint32LE is REG_DWORD: a 32-bit little-endian integer.
	TypeUint32LE Type = 4
	// TypeUint32BE is REG_DWORD_BIG_ENDIAN: a 32-bit big-endian integer.
	TypeUint32BE Type = 5
	// TypeLink is REG_LINK: a symbolic link target.
	TypeLink Type = 6
	// TypeMultiString is REG_MULTI_SZ: a null-separated, double-null-terminated string list.
	TypeMultiString Type = 7
	// TypeResourceList is REG_RESOURCE_LIST.
	TypeResourceList Type = 8
	// TypeFullResourceDescriptor is REG_FULL_RESOURCE_DESCRIPTOR.
	TypeFullResourceDescriptor Type = 9
	// TypeResourceRequirementsList is REG_RESOURCE_REQUIREMENTS_LIST.
	TypeResourceRequirementsList Type = 10
	// TypeUint64LE is REG_QWORD: a 64-bit little-endian integer.
	TypeUint64LE Type = 11
)

// String returns the tag name, or "Type(N)" for tags outside the known set.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeString:
		return "String"
	case TypeExpandString:
		return "ExpandString"
	case TypeBinary:
		return "Binary"
	case TypeUint32LE:
		return "Uint32LE"
	case TypeUint32BE:
		return "Uint32BE"
	case TypeLink:
		return "Link"
	case TypeMultiString:
		return "MultiString"
	case TypeResourceList:
		return "ResourceList"
	case TypeFullResourceDescriptor:
		return "FullResourceDescriptor"
	case TypeResourceRequirementsList:
		return "ResourceRequirementsList"
	case TypeUint64LE:
		return "Uint64LE"
	default:
		return fmt.Sprintf("Type(%d)", uint32(t))
	}
}

// Value is a stored value paired with the type tag that governs its
// interpretation. Values are immutable once constructed; callers must not
// modify Raw afterwards.
type Value struct {
	Type Type
	Raw  []byte
}

// Decode interprets Raw according to the type tag. The dynamic type of the
// result is one of nil, string, []string, []byte, uint32 or uint64 per the
// package table. Decode never fails: unknown tags return Raw unchanged.
func (v Value) Decode() interface{} {
	switch v.Type {
	case TypeNone:
		return nil
	case TypeString:
		return WideString(v.Raw)
	case TypeExpandString:
		return ExpandEnv(WideString(v.Raw))
	case TypeBinary:
		return v.Raw
	case TypeUint32LE:
		return uint32(uintLE(v.Raw, 4))
	case TypeUint32BE:
		return uint32(uintBE(v.Raw, 4))
	case TypeMultiString:
		return multiString(v.Raw)
	case TypeUint64LE:
		return uintLE(v.Raw, 8)
	default:
		// TypeLink, the three resource tags, and anything newer.
		return v.Raw
	}
}

// String renders the decoded value for log output and diagnostics.
// The rendering is not round-trippable; use Decode for typed access.
func (v Value) String() string {
	switch d := v.Decode().(type) {
	case nil:
		return "<none>"
	case string:
		return d
	case []string:
		return strings.Join(d, ", ")
	case []byte:
		return fmt.Sprintf("% x", d)
	default:
		return fmt.Sprint(d)
	}
}

// WideString decodes a UTF-16LE text buffer as produced by the native store,
// slicing off the trailing 2-byte null terminator the APIs always append.
// The terminator bytes are not inspected. Buffers shorter than the
// terminator decode to the empty string.
func WideString(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	return decodeUTF16LE(raw[:len(raw)-2])
}

// ExpandEnv substitutes %NAME% environment references in s, the notation
// REG_EXPAND_SZ values carry (for example "%SystemRoot%\system32").
//
// A doubled percent sign collapses to one literal percent. References to
// unset variables, and an unterminated trailing reference, stay in the text
// unchanged.
func ExpandEnv(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(s) && s[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			// Unterminated reference, keep the tail verbatim.
			b.WriteString(s[i:])
			break
		}

		name := s[i+1 : i+1+end]
		if val, ok := os.LookupEnv(name); ok {
			b.WriteString(val)
		} else {
			b.WriteString(s[i : i+end+2])
		}
		i += end + 2
	}

	return b.String()
}

// decodeUTF16LE converts little-endian UTF-16 code units to a string.
// A dangling odd byte at the end is dropped.
func decodeUTF16LE(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		units = append(units, uint16(raw[i])|uint16(raw[i+1])<<8)
	}
	return string(utf16.Decode(units))
}

// multiString decodes a REG_MULTI_SZ buffer: slice off the 4-byte double
// null terminator, decode UTF-16LE, then split on the single nulls that
// separate the entries. An empty buffer yields one empty string, mirroring
// how the store represents an empty list.
func multiString(raw []byte) []string {
	if len(raw) < 4 {
		raw = nil
	} else {
		raw = raw[:len(raw)-4]
	}
	return strings.Split(decodeUTF16LE(raw), "\x00")
}

// uintLE reads an unsigned little-endian integer from the first width bytes
// of raw. Missing high-order bytes read as zero.
func uintLE(raw []byte, width int) uint64 {
	if len(raw) < width {
		width = len(raw)
	}
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(raw[i])
	}
	return v
}

// uintBE reads an unsigned big-endian integer from the first width bytes of raw.
func uintBE(raw []byte, width int) uint64 {
	if len(raw) < width {
		width = len(raw)
	}
	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(raw[i])
	}
	return v
}
