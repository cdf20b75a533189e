package password

import (
	"errors"
	"strings"
	"testing"
)

// low cost keeps the test suite fast; policy default stays 12 in production.
func testHasher() *Hasher {
	return NewHasher(Config{Cost: 4})
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := testHasher().Hash("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestHash_SaltRandomization(t *testing.T) {
	h := testHasher()
	d1, err := h.Hash("Same-Password1!")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := h.Hash("Same-Password1!")
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Error("two hashes of the same password must differ (random salt)")
	}
	if !h.Verify("Same-Password1!", d1) || !h.Verify("Same-Password1!", d2) {
		t.Error("both digests must verify against the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := testHasher()
	digest, err := h.Hash("Correct-Horse1!")
	if err != nil {
		t.Fatal(err)
	}
	if h.Verify("Wrong-Horse1!", digest) {
		t.Error("wrong password must not verify")
	}
}

func TestVerify_NeverErrors(t *testing.T) {
	h := testHasher()
	cases := []struct {
		name             string
		password, digest string
	}{
		{"empty password", "", "$2a$12$abcdefghijklmnopqrstuv"},
		{"empty digest", "secret", ""},
		{"garbage digest", "secret", "not-a-bcrypt-digest"},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if h.Verify(tc.password, tc.digest) {
				t.Error("expected false")
			}
		})
	}
}

func TestHash_LongPasswordTruncation(t *testing.T) {
	h := testHasher()
	long := strings.Repeat("A", 100) + "a1!"
	digest, err := h.Hash(long)
	if err != nil {
		t.Fatalf("hashing a 100+ char password should succeed: %v", err)
	}
	if !h.Verify(long, digest) {
		t.Error("long password must verify against its own digest")
	}
}

func TestValidateStrength_AllRulesReported(t *testing.T) {
	res := testHasher().ValidateStrength("abc")
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
		"Password must contain at least one special character",
	}
	if len(res.Errors) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(res.Errors), res.Errors)
	}
	for i, rule := range want {
		if res.Errors[i] != rule {
			t.Errorf("violation %d: want %q, got %q", i, rule, res.Errors[i])
		}
	}
}

func TestValidateStrength_Empty(t *testing.T) {
	res := testHasher().ValidateStrength("")
	if res.Valid || len(res.Errors) != 1 || res.Errors[0] != "Password is required" {
		t.Fatalf("unexpected result for empty password: %+v", res)
	}
}

func TestValidateStrength_TooLong(t *testing.T) {
	res := testHasher().ValidateStrength("Aa1!" + strings.Repeat("x", 130))
	if res.Valid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if e == "Password must be at most 128 characters long" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected max-length violation, got %v", res.Errors)
	}
}

func TestValidateStrength_Valid(t *testing.T) {
	for _, p := range []string{"Strong1!", "C0mpl3x#Passw0rd", "Aa1~bcdef"} {
		res := testHasher().ValidateStrength(p)
		if !res.Valid {
			t.Errorf("%q should be valid, violations: %v", p, res.Errors)
		}
		if len(res.Errors) != 0 {
			t.Errorf("%q: expected no violations, got %v", p, res.Errors)
		}
	}
}

func TestValidateStrength_SevenCharsBoundary(t *testing.T) {
	res := testHasher().ValidateStrength("Weak1!x")
	if res.Valid {
		t.Fatal("7-char password should fail")
	}
	if res.Errors[0] != "Password must be at least 8 characters long" {
		t.Errorf("expected min-length as first violation, got %v", res.Errors)
	}
}
