package garment

import (
	"testing"

	"github.com/example/morg/internal/apperr"
)

func TestCanCreateGarment(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateGarmentContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can create garment with name, kind and colours",
			ctx: CreateGarmentContext{
				Name:   "Blue Hoodie",
				Kind:   "hoodies",
				Colors: [3]string{"ff1f3a93", "", ""},
			},
			wantAllowed: true,
		},
		{
			name:        "cannot create garment with empty name",
			ctx:         CreateGarmentContext{Name: "", Kind: "hoodies"},
			wantAllowed: false,
			wantReason:  "garment name cannot be empty",
		},
		{
			name:        "cannot create garment with whitespace-only name",
			ctx:         CreateGarmentContext{Name: "   ", Kind: "hoodies"},
			wantAllowed: false,
			wantReason:  "garment name cannot be empty",
		},
		{
			name:        "cannot create garment with unknown kind",
			ctx:         CreateGarmentContext{Name: "Socks", Kind: "socks"},
			wantAllowed: false,
			wantReason:  `unknown garment kind "socks"`,
		},
		{
			name: "cannot create garment with malformed colour",
			ctx: CreateGarmentContext{
				Name:   "Red Shirt",
				Kind:   "shirts",
				Colors: [3]string{"ff0000", "12345", ""},
			},
			wantAllowed: false,
			wantReason:  `color2 "12345" is not a 6 or 8 digit hex code`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateGarment(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanRename(t *testing.T) {
	if !CanRename("Green Hoodie").Allowed {
		t.Error("expected rename to be allowed")
	}
	if CanRename(" ").Allowed {
		t.Error("expected blank rename to be rejected")
	}
}

func TestCanSetRate(t *testing.T) {
	for _, r := range []string{"1", "5", "?"} {
		if !CanSetRate(r).Allowed {
			t.Errorf("expected rate %q to be allowed", r)
		}
	}
	if CanSetRate("0").Allowed {
		t.Error("expected rate 0 to be rejected")
	}
}

func TestCanSetClear(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"True", true},
		{"False", true},
		{"true", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CanSetClear(tt.in).Allowed; got != tt.want {
			t.Errorf("CanSetClear(%q).Allowed = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGuardResult_Error(t *testing.T) {
	if err := (GuardResult{Allowed: true}).Error(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	err := GuardResult{Allowed: false, Reason: "garment name cannot be empty"}.Error()
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if err.Error() != "garment name cannot be empty" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
