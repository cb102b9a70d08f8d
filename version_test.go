package gridtext

import "testing"

func TestEmbeddedVersionIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionString(t *testing.T) {
	if got, want := VersionString(), "gridtext v"+Version(); got != want {
		t.Fatalf("VersionString: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	tests := map[string]bool{
		"0.1.0":         true,
		"1.2.3-alpha.1": true,
		"2.0.0+build.7": true,
		" 3.0.0\n":      true,
		"v1.2.3":        false,
		"1.2":           false,
		"01.2.3":        false,
	}
	for in, want := range tests {
		if got := IsSemver(in); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", in, got, want)
		}
	}
}
