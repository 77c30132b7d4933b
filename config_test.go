package apkin

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "apkin.yml")
	if err := os.WriteFile(name, []byte("aapt: /opt/android/aapt2\nlocales:\n  - en-US\n  - ja\n"), 0o600); err != nil {
		t.Error(err)
		t.FailNow()
	}

	config, err := LoadConfig(name)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if config.AAPT != "/opt/android/aapt2" {
		t.Errorf("aapt = %q", config.AAPT)
	}

	if len(config.Locales) != 2 || config.Locales[1] != "ja" {
		t.Errorf("locales = %v", config.Locales)
	}

	if len(config.InspectOpts()) != 1 {
		t.Errorf("opts = %d", len(config.InspectOpts()))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "apkin.yml"))
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if config.AAPT != "" || len(config.Locales) != 0 {
		t.Errorf("config = %+v", config)
	}
}
