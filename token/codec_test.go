package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func testCodec() *Codec {
	return NewCodec(Config{Secret: testSecret})
}

func TestSign_Decode_RoundTrip(t *testing.T) {
	c := testCodec()
	signed, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	if len(strings.Split(signed, ".")) != 3 {
		t.Fatalf("expected 3 segments, got %q", signed)
	}

	claims := c.Decode(signed)
	if claims == nil {
		t.Fatal("decode returned nil for a well-formed token")
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	iat := claims.IssuedAt.Time
	exp := claims.ExpiresAt.Time
	if !iat.Before(exp) {
		t.Error("iat must precede exp")
	}
	if got := exp.Sub(iat); got != 24*time.Hour {
		t.Errorf("exp - iat must be 24h, got %s", got)
	}
}

func TestSign_InvalidPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload Payload
	}{
		{"missing userId", Payload{Email: "a@b.com"}},
		{"missing email", Payload{UserID: "user-1"}},
		{"blank userId", Payload{UserID: "   ", Email: "a@b.com"}},
		{"blank email", Payload{UserID: "user-1", Email: " "}},
		{"both missing", Payload{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// The codec has no secret: payload validation must fire first.
			c := NewCodec(Config{})
			_, err := c.Sign(tc.payload)
			if !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestSign_SecretMissing(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		c := NewCodec(Config{Secret: secret})
		_, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
		if !errors.Is(err, ErrSecretMissing) {
			t.Fatalf("secret %q: expected ErrSecretMissing, got %v", secret, err)
		}
	}
}

func TestVerify_Success(t *testing.T) {
	c := testCodec()
	signed, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := c.Verify(signed)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerify_SecretMissing(t *testing.T) {
	c := NewCodec(Config{})
	_, err := c.Verify("a.b.c")
	if !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected ErrSecretMissing, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	c := testCodec()
	for _, tok := range []string{"", "onesegment", "two.segments", "a.b.c.d", "..", "a..c", ".b.c", "a.b."} {
		if _, err := c.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	c := testCodec()
	signed, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(signed, ".")
	parts[2] = flipLastChar(parts[2])
	if _, err := c.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	c := testCodec()
	signed, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(signed, ".")
	parts[1] = flipLastChar(parts[1])
	if _, err := c.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := testCodec().Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	other := NewCodec(Config{Secret: "a-different-secret"})
	if _, err := other.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	issuer := NewCodec(Config{Secret: testSecret}, WithClock(func() time.Time { return past }))
	signed, err := issuer.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := testCodec().Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecode_StructuralFailures(t *testing.T) {
	c := testCodec()
	for _, tok := range []string{"", "a.b", "a.b.c.d", "a.!!!notbase64.c"} {
		if claims := c.Decode(tok); claims != nil {
			t.Errorf("token %q: expected nil, got %+v", tok, claims)
		}
	}
}

func TestDecode_IgnoresSignature(t *testing.T) {
	c := testCodec()
	signed, err := c.Sign(Payload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(signed, ".")
	parts[2] = flipLastChar(parts[2])
	claims := c.Decode(strings.Join(parts, "."))
	if claims == nil || claims.UserID != "user-1" {
		t.Error("decode must parse the payload regardless of the signature")
	}
}

func flipLastChar(s string) string {
	last := s[len(s)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	return s[:len(s)-1] + string(replacement)
}
