package apkin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apkin/apkin/android"
)

func TestNewRenamePlan(t *testing.T) {
	for _, testCase := range []struct {
		badging *android.Badging
		name    string
		target  string
	}{
		{
			badging: &android.Badging{Label: "Example", VersionName: "1.2.0"},
			name:    filepath.Join("some", "dir", "app-release.apk"),
			target:  filepath.Join("some", "dir", "Example_1.2.0.apk"),
		},
		{
			// Version falls back to the version code.
			badging: &android.Badging{Label: "Example", VersionCode: 7},
			name:    "app.apk",
			target:  "Example_7.apk",
		},
		{
			// Label falls back to the package name.
			badging: &android.Badging{Package: "com.example.app", VersionName: "1.2.0"},
			name:    "app.apk",
			target:  "com.example.app_1.2.0.apk",
		},
		{
			// Illegal filename characters are stripped.
			badging: &android.Badging{Label: `Ex:a*m?p"l<e>|`, VersionName: `1/2\0`},
			name:    "app.apk",
			target:  "Example_120.apk",
		},
		{
			badging: &android.Badging{},
			name:    "app-release.apk",
			target:  "app-release.apk",
		},
	} {
		plan := NewRenamePlan(testCase.badging, testCase.name)
		if plan.Target != testCase.target {
			t.Errorf("target = %q, want %q", plan.Target, testCase.target)
		}

		// Planning is pure: the same badging yields the same target.
		if again := NewRenamePlan(testCase.badging, testCase.name); again.Target != plan.Target {
			t.Errorf("target not deterministic: %q != %q", again.Target, plan.Target)
		}
	}
}

func TestRenamePlanApply(t *testing.T) {
	var (
		dir    = t.TempDir()
		source = filepath.Join(dir, "app-release.apk")
	)
	if err := os.WriteFile(source, []byte("PK"), 0o600); err != nil {
		t.Error(err)
		t.FailNow()
	}

	plan := NewRenamePlan(&android.Badging{Label: "Example", VersionName: "1.2.0"}, source)
	if err := plan.Apply(); err != nil {
		t.Error(err)
		t.FailNow()
	}

	if _, err := os.Stat(plan.Target); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(source); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("source still exists: %v", err)
	}
}

func TestRenamePlanConflict(t *testing.T) {
	var (
		dir    = t.TempDir()
		source = filepath.Join(dir, "app-release.apk")
		target = filepath.Join(dir, "Example_1.2.0.apk")
	)
	for _, name := range []string{source, target} {
		if err := os.WriteFile(name, []byte("PK"), 0o600); err != nil {
			t.Error(err)
			t.FailNow()
		}
	}

	plan := NewRenamePlan(&android.Badging{Label: "Example", VersionName: "1.2.0"}, source)
	if err := plan.Apply(); !errors.Is(err, ErrRenameConflict) {
		t.Errorf("err = %v", err)
	}

	// The original file is untouched on failure.
	if _, err := os.Stat(source); err != nil {
		t.Error(err)
	}
}
