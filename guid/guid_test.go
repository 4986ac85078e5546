package guid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestFromPartsLayout(t *testing.T) {
	// Sequential field values make the byte positions easy to verify.
	g, err := FromParts(0x00010203, 0x0405, 0x0607, 0x0809, 0x0a0b0c0d0e0f)
	if err != nil {
		t.Fatalf("FromParts failed: %v", err)
	}

	// Expected native layout:
	expected := []byte{
		// Data1: 0x00010203 (little-endian)
		0x03, 0x02, 0x01, 0x00,
		// Data2: 0x0405 (little-endian)
		0x05, 0x04,
		// Data3: 0x0607 (little-endian)
		0x07, 0x06,
		// Clock-seq: 0x0809 (big-endian - no swap)
		0x08, 0x09,
		// Node: 0x0a0b0c0d0e0f (big-endian - no swap)
		0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}

	if !bytes.Equal(g.Bytes(), expected) {
		t.Errorf("native layout mismatch:\ngot:  %x\nwant: %x", g.Bytes(), expected)
	}
}

func TestPartsRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		a, b, c, d, e uint64
	}{
		{"zero", 0, 0, 0, 0, 0},
		{"sequential", 0x00010203, 0x0405, 0x0607, 0x0809, 0x0a0b0c0d0e0f},
		{"max fields", 0xFFFFFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFFFFFFFFFF},
		{"balanced scheme", 0x381b4222, 0xf694, 0x41f0, 0x9685, 0xff5bb260df2e},
		{"IUnknown", 0, 0, 0, 0xC000, 0x46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromParts(tt.a, tt.b, tt.c, tt.d, tt.e)
			if err != nil {
				t.Fatalf("FromParts failed: %v", err)
			}

			a, b, c, d, e := g.Parts()
			if uint64(a) != tt.a || uint64(b) != tt.b || uint64(c) != tt.c || uint64(d) != tt.d || e != tt.e {
				t.Errorf("Parts mismatch: got (%#x, %#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x, %#x)",
					a, b, c, d, e, tt.a, tt.b, tt.c, tt.d, tt.e)
			}
		})
	}
}

func TestFromPartsRangeErrors(t *testing.T) {
	tests := []struct {
		name          string
		a, b, c, d, e uint64
	}{
		{"a exceeds 32 bits", 0x1_0000_0000, 0, 0, 0, 0},
		{"b exceeds 16 bits", 0, 0x1_0000, 0, 0, 0},
		{"c exceeds 16 bits", 0, 0, 0x1_0000, 0, 0},
		{"d exceeds 16 bits", 0, 0, 0, 0x1_0000, 0},
		{"e exceeds 48 bits", 0, 0, 0, 0, 0x1_0000_0000_0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromParts(tt.a, tt.b, tt.c, tt.d, tt.e)
			if !errors.Is(err, ErrRange) {
				t.Errorf("expected ErrRange, got %v", err)
			}
		})
	}
}

func TestParseDashed(t *testing.T) {
	// IID_IUnknown exercises leading zeros and the high clock-seq bit.
	g, err := ParseDashed("00000000-0000-0000-c000-000000000046")
	if err != nil {
		t.Fatalf("ParseDashed failed: %v", err)
	}

	a, b, c, d, e := g.Parts()
	if a != 0 || b != 0 || c != 0 || d != 0xC000 || e != 0x46 {
		t.Errorf("Parts mismatch: got (%#x, %#x, %#x, %#x, %#x), want (0, 0, 0, 0xc000, 0x46)",
			a, b, c, d, e)
	}

	if got, want := g.Braced(), "{00000000-0000-0000-c000-000000000046}"; got != want {
		t.Errorf("Braced mismatch: got %q, want %q", got, want)
	}
	if got, want := g.Dashed(), "00000000-0000-0000-c000-000000000046"; got != want {
		t.Errorf("Dashed mismatch: got %q, want %q", got, want)
	}
}

func TestParseDashedAcceptsUppercase(t *testing.T) {
	lower, err := ParseDashed("381b4222-f694-41f0-9685-ff5bb260df2e")
	if err != nil {
		t.Fatalf("ParseDashed lowercase failed: %v", err)
	}
	upper, err := ParseDashed("381B4222-F694-41F0-9685-FF5BB260DF2E")
	if err != nil {
		t.Fatalf("ParseDashed uppercase failed: %v", err)
	}
	if lower != upper {
		t.Errorf("case sensitivity: %s != %s", lower, upper)
	}
	// Rendering is always lowercase regardless of input case.
	if got, want := upper.Dashed(), "381b4222-f694-41f0-9685-ff5bb260df2e"; got != want {
		t.Errorf("Dashed mismatch: got %q, want %q", got, want)
	}
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (GUID, error)
		input string
	}{
		{"dashed empty", ParseDashed, ""},
		{"dashed too short", ParseDashed, "381b4222-f694-41f0-9685"},
		{"dashed too long", ParseDashed, "381b4222-f694-41f0-9685-ff5bb260df2e00"},
		{"dashed misplaced dash", ParseDashed, "381b42-22f694-41f0-9685-ff5bb260df2e"},
		{"dashed non-hex", ParseDashed, "381b4222-f694-41f0-9685-ff5bb260dfzz"},
		{"dashed braced input", ParseDashed, "{381b4222-f694-41f0-9685-ff5bb260df2e}"},
		{"braced empty", ParseBraced, ""},
		{"braced missing open", ParseBraced, "381b4222-f694-41f0-9685-ff5bb260df2e}x"},
		{"braced missing close", ParseBraced, "{381b4222-f694-41f0-9685-ff5bb260df2ex"},
		{"braced bare input", ParseBraced, "381b4222-f694-41f0-9685-ff5bb260df2e"},
		{"braced non-hex", ParseBraced, "{381b4222-f694-41f0-9685-ff5bb260dfzz}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.input)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("expected ErrFormat for %q, got %v", tt.input, err)
			}
		})
	}
}

func TestParseBraced(t *testing.T) {
	g, err := ParseBraced("{381b4222-f694-41f0-9685-ff5bb260df2e}")
	if err != nil {
		t.Fatalf("ParseBraced failed: %v", err)
	}

	fromDashed, err := ParseDashed("381b4222-f694-41f0-9685-ff5bb260df2e")
	if err != nil {
		t.Fatalf("ParseDashed failed: %v", err)
	}

	if g != fromDashed {
		t.Errorf("braced and dashed parses disagree: %s != %s", g, fromDashed)
	}
}

func TestTextRoundTrip(t *testing.T) {
	inputs := []string{
		"00000000-0000-0000-0000-000000000000",
		"00000000-0000-0000-c000-000000000046",
		"381b4222-f694-41f0-9685-ff5bb260df2e",
		"fea3413e-7e05-4911-9a71-700331f1c294",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			g, err := ParseDashed(in)
			if err != nil {
				t.Fatalf("ParseDashed failed: %v", err)
			}
			if got := g.Dashed(); got != in {
				t.Errorf("dashed round-trip: got %q, want %q", got, in)
			}

			braced := "{" + in + "}"
			g2, err := ParseBraced(braced)
			if err != nil {
				t.Fatalf("ParseBraced failed: %v", err)
			}
			if got := g2.Braced(); got != braced {
				t.Errorf("braced round-trip: got %q, want %q", got, braced)
			}
			if g != g2 {
				t.Errorf("parses disagree: %s != %s", g, g2)
			}
		})
	}
}

func TestFromPartsMatchesParse(t *testing.T) {
	parsed, err := ParseDashed("381b4222-f694-41f0-9685-ff5bb260df2e")
	if err != nil {
		t.Fatalf("ParseDashed failed: %v", err)
	}

	built, err := FromParts(0x381b4222, 0xf694, 0x41f0, 0x9685, 0xff5bb260df2e)
	if err != nil {
		t.Fatalf("FromParts failed: %v", err)
	}

	if parsed != built {
		t.Errorf("FromParts and ParseDashed disagree: %s != %s", built, parsed)
	}
}

func TestFromDefine(t *testing.T) {
	// DEFINE_GUID(GUID_SLEEP_SUBGROUP, 0x238C9FA8, 0x0AAD, 0x41ED,
	//             0x83, 0xF4, 0x97, 0xBE, 0x24, 0x2C, 0x8F, 0x20)
	g := FromDefine(0x238C9FA8, 0x0AAD, 0x41ED, 0x83, 0xF4, 0x97, 0xBE, 0x24, 0x2C, 0x8F, 0x20)

	want, err := ParseDashed("238c9fa8-0aad-41ed-83f4-97be242c8f20")
	if err != nil {
		t.Fatalf("ParseDashed failed: %v", err)
	}
	if g != want {
		t.Errorf("FromDefine mismatch: got %s, want %s", g, want)
	}
}

func TestFromBytes(t *testing.T) {
	raw := []byte{
		0x22, 0x42, 0x1b, 0x38,
		0x94, 0xf6,
		0xf0, 0x41,
		0x96, 0x85,
		0xff, 0x5b, 0xb2, 0x60, 0xdf, 0x2e,
	}

	g, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if got, want := g.Dashed(), "381b4222-f694-41f0-9685-ff5bb260df2e"; got != want {
		t.Errorf("Dashed mismatch: got %q, want %q", got, want)
	}
	if !bytes.Equal(g.Bytes(), raw) {
		t.Errorf("Bytes round-trip mismatch:\ngot:  %x\nwant: %x", g.Bytes(), raw)
	}

	// Bytes must return a copy, not a view of the backing array.
	b := g.Bytes()
	b[0] ^= 0xFF
	if !bytes.Equal(g.Bytes(), raw) {
		t.Error("mutating the Bytes result changed the GUID")
	}
}

func TestFromBytesWrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		if _, err := FromBytes(make([]byte, n)); !errors.Is(err, ErrFormat) {
			t.Errorf("FromBytes(%d bytes): expected ErrFormat, got %v", n, err)
		}
	}
}

func TestMustParse(t *testing.T) {
	dashed := MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	braced := MustParse("{381b4222-f694-41f0-9685-ff5bb260df2e}")
	if dashed != braced {
		t.Errorf("MustParse forms disagree: %s != %s", dashed, braced)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if !strings.Contains(r.(string), "MustParse") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	MustParse("not a guid")
}

func TestUUIDConversion(t *testing.T) {
	u := uuid.MustParse("12345678-1234-5678-9abc-def012345678")
	g := FromUUID(u)

	// Native layout swaps the first three fields.
	expected := []byte{
		0x78, 0x56, 0x34, 0x12,
		0x34, 0x12,
		0x78, 0x56,
		0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78,
	}
	if !bytes.Equal(g.Bytes(), expected) {
		t.Errorf("native bytes mismatch:\ngot:  %x\nwant: %x", g.Bytes(), expected)
	}

	// Round-trip back to RFC 4122.
	if back := g.UUID(); back != u {
		t.Errorf("UUID round-trip failed: got %s, want %s", back, u)
	}

	// Both types render identical dashed text.
	if g.Dashed() != u.String() {
		t.Errorf("text forms disagree: guid %q, uuid %q", g.Dashed(), u.String())
	}
}

func TestNew(t *testing.T) {
	a := New()
	b := New()
	if a.IsZero() || b.IsZero() {
		t.Error("New returned the zero GUID")
	}
	if a == b {
		t.Errorf("two New GUIDs collided: %s", a)
	}
}

func TestIsZero(t *testing.T) {
	var zero GUID
	if !zero.IsZero() {
		t.Error("zero value not reported as zero")
	}
	if got, want := zero.Dashed(), "00000000-0000-0000-0000-000000000000"; got != want {
		t.Errorf("zero Dashed mismatch: got %q, want %q", got, want)
	}

	g := MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	if g.IsZero() {
		t.Error("non-zero GUID reported as zero")
	}
}

func TestEquality(t *testing.T) {
	a := MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	b := MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	c := MustParse("8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c")

	if a != b {
		t.Error("identical GUIDs compare unequal")
	}
	if a == c {
		t.Error("distinct GUIDs compare equal")
	}
}

func BenchmarkParseDashed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := ParseDashed("381b4222-f694-41f0-9685-ff5bb260df2e")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDashed(b *testing.B) {
	g := MustParse("381b4222-f694-41f0-9685-ff5bb260df2e")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Dashed()
	}
}
