package encrypter

import (
	"strings"
	"testing"
)

func TestEncryptDecrypt(t *testing.T) {
	e := New("0123456789abcdef0123456789abcdef")

	t.Run("roundtrip", func(t *testing.T) {
		ciphertext, err := e.Encrypt("0901234567")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if ciphertext == "0901234567" {
			t.Fatal("ciphertext equals plaintext")
		}
		plaintext, err := e.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if plaintext != "0901234567" {
			t.Errorf("got %q, want %q", plaintext, "0901234567")
		}
	})

	t.Run("empty passphrase rejected", func(t *testing.T) {
		bad := New("")
		if _, err := bad.Encrypt("data"); err == nil {
			t.Error("expected error for empty passphrase")
		}
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		ciphertext, err := e.Encrypt("secret")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		tampered := strings.Replace(ciphertext, ciphertext[:1], "A", 1)
		if tampered == ciphertext {
			tampered = "B" + ciphertext[1:]
		}
		if _, err := e.Decrypt(tampered); err == nil {
			t.Error("expected error for tampered ciphertext")
		}
	})

	t.Run("ciphertext too short", func(t *testing.T) {
		if _, err := e.Decrypt("aGk="); err == nil {
			t.Error("expected error for short ciphertext")
		}
	})
}

func TestKeyDerivation(t *testing.T) {
	t.Run("same passphrase decrypts across instances", func(t *testing.T) {
		a := New("0123456789abcdef0123456789abcdef")
		b := New("0123456789abcdef0123456789abcdef")
		ciphertext, err := a.Encrypt("0901234567")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		plaintext, err := b.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if plaintext != "0901234567" {
			t.Errorf("got %q, want %q", plaintext, "0901234567")
		}
	})

	t.Run("different passphrase cannot decrypt", func(t *testing.T) {
		a := New("0123456789abcdef0123456789abcdef")
		b := New("ffffffffffffffffffffffffffffffff")
		ciphertext, err := a.Encrypt("secret")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if _, err := b.Decrypt(ciphertext); err == nil {
			t.Error("expected error decrypting with a different passphrase")
		}
	})
}
