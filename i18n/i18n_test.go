package i18n

import "testing"

func TestTag(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "en", want: "en"},
		{raw: "ne", want: "ne"},
		{raw: "", want: "en"},
		{raw: "fr", want: "en"},
		{raw: "not-a-tag", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Tag(tt.raw); got.String() != tt.want {
				t.Errorf("Tag(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	en := Printer("en").Sprintf(MsgPasswordMismatch)
	if en != "Passwords do not match." {
		t.Errorf("english lookup = %q", en)
	}

	ne := Printer("ne").Sprintf(MsgPasswordMismatch)
	if ne != "पासवर्डहरू मेल खाँदैनन्।" {
		t.Errorf("nepali lookup = %q", ne)
	}

	// Unsupported languages fall back to English
	fr := Printer("fr").Sprintf(MsgSignedOut)
	if fr != "You have been signed out." {
		t.Errorf("fallback lookup = %q", fr)
	}
}
