package cipherkit

import (
	"errors"
	"testing"
)

func TestDeriveCaesarShift(t *testing.T) {
	k, err := DeriveCaesarShift("open sesame", []byte("salt"))
	if err != nil {
		t.Fatalf("DeriveCaesarShift() error = %v", err)
	}
	if k < 1 || k > 25 {
		t.Errorf("DeriveCaesarShift() = %d, want [1, 25]", k)
	}

	again, err := DeriveCaesarShift("open sesame", []byte("salt"))
	if err != nil {
		t.Fatalf("DeriveCaesarShift() error = %v", err)
	}
	if again != k {
		t.Errorf("DeriveCaesarShift() not deterministic: %d != %d", again, k)
	}
}

func TestDeriveAffineKey_UsableForAffine(t *testing.T) {
	for _, passphrase := range []string{"a", "b", "open sesame", "swordfish", "hunter2"} {
		a, b, err := DeriveAffineKey(passphrase, nil)
		if err != nil {
			t.Fatalf("DeriveAffineKey(%q) error = %v", passphrase, err)
		}

		ct, err := AffineEncrypt("HELLO", a, b)
		if err != nil {
			t.Fatalf("AffineEncrypt() with derived key (%d, %d) error = %v", a, b, err)
		}
		pt, err := AffineDecrypt(ct, a, b)
		if err != nil {
			t.Fatalf("AffineDecrypt() error = %v", err)
		}
		if pt != "HELLO" {
			t.Errorf("round trip with derived key (%d, %d) = %q", a, b, pt)
		}
	}
}

func TestDerive_EmptyPassphrase(t *testing.T) {
	if _, err := DeriveCaesarShift("", nil); !errors.Is(err, ErrInvalidPassphrase) {
		t.Errorf("DeriveCaesarShift(\"\") error = %v, want ErrInvalidPassphrase", err)
	}
	if _, _, err := DeriveAffineKey("", nil); !errors.Is(err, ErrInvalidPassphrase) {
		t.Errorf("DeriveAffineKey(\"\") error = %v, want ErrInvalidPassphrase", err)
	}
}

func TestNewSalt(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error = %v", err)
	}
	if len(salt) != SaltSize {
		t.Errorf("len(NewSalt()) = %d, want %d", len(salt), SaltSize)
	}
}
