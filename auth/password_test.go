package auth

import "testing"

func TestDigestIsLowercaseHex(t *testing.T) {
	d := Digest("password")

	if len(d) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(d))
	}
	for _, r := range d {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("unexpected character %q in digest %s", r, d)
		}
	}
}

func TestDigestKnownVector(t *testing.T) {
	// sha256("password")
	want := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := Digest("password"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	if Digest("s3cret!") != Digest("s3cret!") {
		t.Fatal("same input must produce the same digest")
	}
	if Digest("s3cret!") == Digest("s3cret?") {
		t.Fatal("different inputs must produce different digests")
	}
}
