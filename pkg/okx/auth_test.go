package okx

import "testing"

func TestSign(t *testing.T) {
	var got string
	var want string
	timestamp := "2022-02-07T21:37:33.383Z"

	t.Run("known signatures secret-foo", func(t *testing.T) {
		got = Sign("secret-foo", timestamp, "GET", "/orders")
		want = "bI6DJV5K+G4laid4txciR/5p/pX4tjf39B5jIc6nFck="
		if got != want {
			t.Errorf("Sign() returned incorrect signature | got: %v, want: %v", got, want)
		}
		got = Sign("secret-foo", timestamp, "GET", "/orders?before=2&limit=30")
		want = "olT7YgbofkVgIdeD5OxL6VHVfOMXRDHP+EjKCDGoFYU="
		if got != want {
			t.Errorf("Sign() returned incorrect signature with query | got: %v, want: %v", got, want)
		}
	})

	t.Run("known signatures secret-bar", func(t *testing.T) {
		got = Sign("secret-bar", timestamp, "GET", "/orders")
		want = "gdct2bwMcqtQpGJTN7h3iGzkSs+nYHvtSV001gvZV34="
		if got != want {
			t.Errorf("Sign() returned incorrect signature | got: %v, want: %v", got, want)
		}
		got = Sign("secret-bar", timestamp, "GET", "/orders?before=2&limit=30")
		want = "5gRqlGFBITlsVMK7Js2lWvS1z9UIZkJb07dtLlAL2Ig="
		if got != want {
			t.Errorf("Sign() returned incorrect signature with query | got: %v, want: %v", got, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := Sign("secret-foo", timestamp, "GET", "/orders")
		second := Sign("secret-foo", timestamp, "GET", "/orders")
		if first != second {
			t.Errorf("Sign() not deterministic | got: %v and %v", first, second)
		}
	})

	t.Run("sensitive to every input", func(t *testing.T) {
		base := Sign("secret-foo", timestamp, "GET", "/orders")
		if Sign("secret-bar", timestamp, "GET", "/orders") == base {
			t.Error("Sign() did not change with secret key")
		}
		if Sign("secret-foo", "2022-02-07T21:37:33.384Z", "GET", "/orders") == base {
			t.Error("Sign() did not change with timestamp")
		}
		if Sign("secret-foo", timestamp, "GET", "/orders?limit=1") == base {
			t.Error("Sign() did not change with query string")
		}
	})

	t.Run("empty secret key still signs", func(t *testing.T) {
		got = Sign("", timestamp, "GET", "/orders")
		if got == "" {
			t.Error("Sign() with empty secret returned empty string | want: non-empty")
		}
	})
}

func TestCredentialsHasSecret(t *testing.T) {
	creds := Credentials{APIKey: "key", Passphrase: "phrase"}
	if creds.HasSecret() {
		t.Error("HasSecret() on empty secret | got: true, want: false")
	}
	creds.SecretKey = "secret-foo"
	if !creds.HasSecret() {
		t.Error("HasSecret() on set secret | got: false, want: true")
	}
}
