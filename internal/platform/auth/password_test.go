package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Errorf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Errorf("correct password should verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Errorf("wrong password must not verify")
	}
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Errorf("empty password must be rejected")
	}
}
