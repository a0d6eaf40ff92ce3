package content

import "testing"

func TestNormalizeSlug(t *testing.T) {
	tests := map[string]string{
		"Real-Time Proving": "real-time-proving",
		"zkVM":              "zkvm",
		"  spaced out  ":    "spaced-out",
		"Sécurité":          "securite",
		"under_score":       "under-score",
		"a -- b":            "a-b",
	}

	for input, want := range tests {
		got, err := NormalizeSlug(input)
		if err != nil {
			t.Fatalf("NormalizeSlug(%q) unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("NormalizeSlug(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeSlugInvalid(t *testing.T) {
	inputs := []string{"", "../etc/passwd", "white space?", "Привет", "---"}
	for _, input := range inputs {
		if _, err := NormalizeSlug(input); err == nil {
			t.Fatalf("NormalizeSlug(%q) expected error", input)
		}
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"hello-world", "2025-roadmap", "zk_evm"}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Fatalf("ValidSlug(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "../secret", "Upper", "-leading", "a/b", "a..b"}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Fatalf("ValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSlugTitle(t *testing.T) {
	if got, want := SlugTitle("real-time-proving"), "Real Time Proving"; got != want {
		t.Fatalf("SlugTitle() = %q, want %q", got, want)
	}
	if got, want := SlugTitle("client_integration"), "Client Integration"; got != want {
		t.Fatalf("SlugTitle() = %q, want %q", got, want)
	}
}
