package auth

import "testing"

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	t.Parallel()

	const plaintext = "secret1"

	h1, err := HashPassword(plaintext)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(plaintext)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// salted: two hashes of the same plaintext must differ
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for identical plaintexts")
	}

	for _, h := range []string{h1, h2} {
		ok, err := CheckPassword(plaintext, h)
		if err != nil {
			t.Fatalf("CheckPassword error: %v", err)
		}
		if !ok {
			t.Fatalf("expected plaintext to verify against its own hash")
		}
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("wrong", h)
	if err != nil {
		t.Fatalf("wrong password must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if _, err := CheckPassword("secret1", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed stored hash")
	}
}
