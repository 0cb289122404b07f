package uuidgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewV4Bits(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := NewV4()
		if u.Version() != 4 {
			t.Fatalf("expected version 4, got %d (%s)", u.Version(), u)
		}
		if u[8]&0xC0 != 0x80 {
			t.Fatalf("expected variant bits 10, got byte %02x (%s)", u[8], u)
		}
	}
}

func TestNewV7Bits(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := NewV7()
		if u.Version() != 7 {
			t.Fatalf("expected version 7, got %d (%s)", u.Version(), u)
		}
		if u[8]&0xC0 != 0x80 {
			t.Fatalf("expected variant bits 10, got byte %02x (%s)", u[8], u)
		}
	}
}

func TestNewV7TimestampEncoding(t *testing.T) {
	ms := int64(0x0123456789AB)
	u := NewV7At(ms)
	want := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB}
	if !bytes.Equal(u[:6], want) {
		t.Fatalf("timestamp bytes = %x, want %x", u[:6], want)
	}
}

func TestNewV7Ordering(t *testing.T) {
	// Strictly increasing millisecond timestamps must produce UUIDs that
	// sort correctly in byte order.
	base := int64(1_700_000_000_000)
	prev := NewV7At(base)
	for i := int64(1); i <= 500; i++ {
		next := NewV7At(base + i)
		if bytes.Compare(prev[:], next[:]) >= 0 {
			t.Fatalf("uuid at t+%d (%s) does not sort after uuid at t+%d (%s)", i, next, i-1, prev)
		}
		if prev.String() >= next.String() {
			t.Fatalf("lexicographic order violated: %s >= %s", prev, next)
		}
		prev = next
	}
}

func TestFormatTransforms(t *testing.T) {
	u := NewV4()
	canonical := Format(u, false, false)
	if len(canonical) != 36 {
		t.Fatalf("canonical form length = %d, want 36", len(canonical))
	}
	if canonical != strings.ToLower(canonical) {
		t.Fatalf("canonical form not lowercase: %s", canonical)
	}

	upper := Format(u, true, false)
	if upper != strings.ToUpper(canonical) {
		t.Fatalf("uppercase form = %s, want %s", upper, strings.ToUpper(canonical))
	}

	stripped := Format(u, false, true)
	if len(stripped) != 32 {
		t.Fatalf("dash-stripped form length = %d, want 32", len(stripped))
	}

	// Re-inserting dashes at positions 8, 13, 18, 23 reconstructs the
	// canonical form.
	rebuilt := stripped[0:8] + "-" + stripped[8:12] + "-" + stripped[12:16] + "-" + stripped[16:20] + "-" + stripped[20:32]
	if rebuilt != canonical {
		t.Fatalf("rebuilt form = %s, want %s", rebuilt, canonical)
	}

	// All three renderings round-trip to the same 128-bit value.
	for _, s := range []string{canonical, upper, rebuilt} {
		parsed, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if parsed != u {
			t.Fatalf("round-trip mismatch for %q", s)
		}
	}
}

func TestGenerateBatch(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		version     int
		uppercase   bool
		stripDashes bool
		wantErr     bool
	}{
		{name: "five v4", count: 5, version: 4},
		{name: "five v7", count: 5, version: 7},
		{name: "uppercase stripped", count: 3, version: 4, uppercase: true, stripDashes: true},
		{name: "max batch", count: 1000, version: 4},
		{name: "zero rejected", count: 0, version: 4, wantErr: true},
		{name: "negative rejected", count: -1, version: 4, wantErr: true},
		{name: "over max rejected", count: 1001, version: 4, wantErr: true},
		{name: "bad version", count: 1, version: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateBatch(tt.count, tt.version, tt.uppercase, tt.stripDashes)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d uuids", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("got %d uuids, want %d", len(got), tt.count)
			}
			seen := make(map[string]bool, len(got))
			for _, s := range got {
				if seen[s] {
					t.Fatalf("duplicate uuid in batch: %s", s)
				}
				seen[s] = true

				norm := strings.ToLower(s)
				if tt.stripDashes {
					if len(s) != 32 {
						t.Fatalf("stripped uuid length = %d, want 32: %s", len(s), s)
					}
					norm = norm[0:8] + "-" + norm[8:12] + "-" + norm[12:16] + "-" + norm[16:20] + "-" + norm[20:32]
				}
				parsed, err := uuid.Parse(norm)
				if err != nil {
					t.Fatalf("invalid uuid %q: %v", s, err)
				}
				if int(parsed.Version()) != tt.version {
					t.Fatalf("uuid %s has version %d, want %d", s, parsed.Version(), tt.version)
				}
				if tt.uppercase && s != strings.ToUpper(s) {
					t.Fatalf("uuid not uppercase: %s", s)
				}
			}
		})
	}
}
