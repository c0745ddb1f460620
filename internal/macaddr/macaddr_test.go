package macaddr

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AA:BB:CC:DD:EE:FF", "aabbccddeeff"},
		{"aa-bb-cc-dd-ee-ff", "aabbccddeeff"},
		{"aabb.ccdd.eeff", "aabbccddeeff"},
		{"AABBCCDDEEFF", "aabbccddeeff"},
		{"  00:11:22:33:44:55  ", "001122334455"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"not-a-mac",
		"aa:bb:cc:dd:ee",
		"gg:bb:cc:dd:ee:ff",
		"aabbccddee",
		// EUI-64は拒否する
		"02:00:5e:10:00:00:00:01",
	}
	for _, in := range inputs {
		if _, err := Normalize(in); !errors.Is(err, ErrInvalidMAC) {
			t.Errorf("Normalize(%q) error = %v, want ErrInvalidMAC", in, err)
		}
	}
}

func TestIsLocallyAdministered(t *testing.T) {
	tests := []struct {
		mac  string
		want bool
	}{
		{"aabbccddeeff", true},  // 0xaa = 10101010, LAビットあり
		{"001122334455", false}, // グローバル一意
		{"020000000001", true},  // ランダム化の典型
		{"fc1122334455", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLocallyAdministered(tt.mac); got != tt.want {
			t.Errorf("IsLocallyAdministered(%q) = %v, want %v", tt.mac, got, tt.want)
		}
	}
}
