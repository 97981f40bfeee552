package cryptox

import (
	"bytes"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, salt := HashPassword([]byte("correct horse battery staple"))

	if len(hash) != hashSize {
		t.Fatalf("hash length = %d, want %d", len(hash), hashSize)
	}
	if len(salt) != saltSize {
		t.Fatalf("salt length = %d, want %d", len(salt), saltSize)
	}
	if !VerifyPassword([]byte("correct horse battery staple"), salt, hash) {
		t.Fatalf("correct password should verify")
	}
	if VerifyPassword([]byte("wrong password"), salt, hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, s1 := HashPassword([]byte("pw"))
	h2, s2 := HashPassword([]byte("pw"))

	if bytes.Equal(s1, s2) {
		t.Fatalf("two hashes of the same password should use different salts")
	}
	if bytes.Equal(h1, h2) {
		t.Fatalf("different salts should produce different hashes")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	a := DeriveKey([]byte("pw"), salt)
	b := DeriveKey([]byte("pw"), salt)
	if !bytes.Equal(a, b) {
		t.Fatalf("DeriveKey must be deterministic for equal inputs")
	}
}
