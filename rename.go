package apkin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apkin/apkin/android"
	"github.com/apkin/apkin/internal/apkinregexp"
)

// ErrRenameConflict reports that the rename destination already
// exists. The caller decides whether to overwrite; apkin never does.
var ErrRenameConflict = errors.New("rename destination already exists")

// RenamePlan renames an APK file to <label>_<version>.apk in its own
// directory. Computing the plan has no side effects; Apply performs
// the rename.
type RenamePlan struct {
	Source string
	Target string
}

// NewRenamePlan derives the target filename from the badging's
// preferred label and version, stripping characters that are illegal
// in filenames. The label falls back to the package name, the version
// to the version code.
func NewRenamePlan(badging *android.Badging, name string) *RenamePlan {
	label := badging.Label
	if label == "" {
		label = badging.Package
	}

	base := apkinregexp.SanitizeFilename(label)
	if version := apkinregexp.SanitizeFilename(badging.Version()); version != "" && base != "" {
		base += "_" + version
	} else if base == "" {
		base = version
	}

	if base == "" {
		base = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	return &RenamePlan{
		Source: name,
		Target: filepath.Join(filepath.Dir(name), base+".apk"),
	}
}

// Apply renames Source to Target, refusing to clobber an existing
// file. On failure the original file is left untouched.
func (p *RenamePlan) Apply() error {
	if p.Source == p.Target {
		return nil
	}

	if _, err := os.Lstat(p.Target); err == nil {
		return fmt.Errorf("%w: %s", ErrRenameConflict, p.Target)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(p.Source, p.Target); err != nil {
		return fmt.Errorf("rename %s: %w", p.Source, err)
	}

	return nil
}
