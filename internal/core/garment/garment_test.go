package garment

import "testing"

func TestIsKnownKind(t *testing.T) {
	if len(Kinds) != 17 {
		t.Fatalf("expected 17 kinds, got %d", len(Kinds))
	}
	for _, k := range Kinds {
		if !IsKnownKind(k) {
			t.Errorf("IsKnownKind(%q) = false", k)
		}
	}
	for _, k := range []string{"", "socks", "Hoodies", "t-shirts"} {
		if IsKnownKind(k) {
			t.Errorf("IsKnownKind(%q) = true, want false", k)
		}
	}
}

func TestPhotoPath(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "photo/1.jpg"},
		{42, "photo/42.jpg"},
		{1000, "photo/1000.jpg"},
	}
	for _, tt := range tests {
		if got := PhotoPath(tt.id); got != tt.want {
			t.Errorf("PhotoPath(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestParsePhotoID(t *testing.T) {
	tests := []struct {
		ref  string
		want int
	}{
		{"photo/7.jpg", 7},
		{"photo/120.jpg", 120},
		{"photo/7.png", -1},
		{"sets/Set_from_05_09_2024.png", -1},
		{"photo/abc.jpg", -1},
		{"", -1},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := ParsePhotoID(tt.ref); got != tt.want {
				t.Errorf("ParsePhotoID(%q) = %d, want %d", tt.ref, got, tt.want)
			}
		})
	}
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"987364", true},
		{"ff987364", true},
		{"FF98AB64", true},
		{"98736", false},
		{"ff98736", false},
		{"zz987364", false},
		{"#987364", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidColor(tt.in); got != tt.want {
				t.Errorf("IsValidColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeColor(t *testing.T) {
	if got := NormalizeColor("  #FF9873AB "); got != "ff9873ab" {
		t.Errorf("NormalizeColor = %q", got)
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"ff987364", 0x98, 0x73, 0x64, true},
		{"00102030", 0x10, 0x20, 0x30, true},
		{"102030", 0x10, 0x20, 0x30, true},
		{"#FFFFFF", 0xff, 0xff, 0xff, true},
		{"", 0, 0, 0, false},
		{"nothex", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, ok := RGB(tt.in)
			if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGB(%q) = (%d,%d,%d,%v), want (%d,%d,%d,%v)",
					tt.in, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
			}
		})
	}
}

func TestClearValue(t *testing.T) {
	if ClearValue(true) != "True" || ClearValue(false) != "False" {
		t.Error("unexpected clear values")
	}
	if !IsClean("True") || IsClean("False") || IsClean("true") {
		t.Error("IsClean mismatch")
	}
}
