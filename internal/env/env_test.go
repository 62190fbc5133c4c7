package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte("IMAGO_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatalf("failed to write dotenv file: %v", err)
	}

	// Guarantee cleanup even though LoadEnv sets the variable itself
	t.Setenv("IMAGO_TEST_DOTENV", "")
	os.Unsetenv("IMAGO_TEST_DOTENV")

	LoadEnv(envPath)
	if got := GetString("IMAGO_TEST_DOTENV", "fallback"); got != "from-file" {
		t.Errorf("GetString() after LoadEnv = %q, want %q", got, "from-file")
	}

	// A missing file must not disturb anything
	LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
}

func TestGetString(t *testing.T) {
	t.Setenv("IMAGO_TEST_STRING", "hello")

	if got := GetString("IMAGO_TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("GetString() = %q, want %q", got, "hello")
	}
	if got := GetString("IMAGO_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("IMAGO_TEST_INT", "42")
	t.Setenv("IMAGO_TEST_INT_BAD", "forty-two")

	if got := GetInt("IMAGO_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt() = %d, want 42", got)
	}
	if got := GetInt("IMAGO_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetInt() on unparsable value = %d, want fallback 7", got)
	}
	if got := GetInt("IMAGO_TEST_UNSET", 7); got != 7 {
		t.Errorf("GetInt() = %d, want fallback 7", got)
	}
}

func TestGetFloat(t *testing.T) {
	t.Setenv("IMAGO_TEST_FLOAT", "1.5")
	t.Setenv("IMAGO_TEST_FLOAT_BAD", "one and a half")

	if got := GetFloat("IMAGO_TEST_FLOAT", 2.0); got != 1.5 {
		t.Errorf("GetFloat() = %g, want 1.5", got)
	}
	if got := GetFloat("IMAGO_TEST_FLOAT_BAD", 2.0); got != 2.0 {
		t.Errorf("GetFloat() on unparsable value = %g, want fallback 2", got)
	}
	if got := GetFloat("IMAGO_TEST_UNSET", 2.0); got != 2.0 {
		t.Errorf("GetFloat() = %g, want fallback 2", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("IMAGO_TEST_BOOL", "true")
	t.Setenv("IMAGO_TEST_BOOL_BAD", "yep")

	if got := GetBool("IMAGO_TEST_BOOL", false); got != true {
		t.Errorf("GetBool() = %v, want true", got)
	}
	if got := GetBool("IMAGO_TEST_BOOL_BAD", true); got != true {
		t.Errorf("GetBool() on unparsable value = %v, want fallback true", got)
	}
	if got := GetBool("IMAGO_TEST_UNSET", true); got != true {
		t.Errorf("GetBool() = %v, want fallback true", got)
	}
}
