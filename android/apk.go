package android

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/shogo82148/androidbinary"
)

// APK reads resource entries out of an APK's zip container. It is
// owned by a single inspection and must be closed when that
// inspection ends.
type APK struct {
	f  *os.File
	zr *zip.Reader

	tableOnce sync.Once
	table     *androidbinary.TableFile
}

// OpenAPK opens the file at name for reading.
func OpenAPK(name string) (*APK, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	a, err := NewAPK(f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	a.f = f

	return a, nil
}

// NewAPK reads an APK out of r, which must contain a zip archive.
func NewAPK(r io.ReaderAt, size int64) (*APK, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	return &APK{zr: zr}, nil
}

// Close releases the underlying file when the APK was opened with
// OpenAPK. It never mutates the source file.
func (a *APK) Close() error {
	if a.f == nil {
		return nil
	}

	return a.f.Close()
}

// ReadFile reads the named entry out of the archive.
func (a *APK) ReadFile(name string) ([]byte, error) {
	for _, f := range a.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()

			return io.ReadAll(rc)
		}
	}

	return nil, fmt.Errorf("%s not found in archive", name)
}

// resources lazily decodes resources.arsc. It is nil for APKs with a
// missing or obfuscated resource table, in which case resource-ID
// references cannot be resolved.
func (a *APK) resources() *androidbinary.TableFile {
	a.tableOnce.Do(func() {
		data, err := a.ReadFile("resources.arsc")
		if err != nil {
			return
		}

		a.table, _ = androidbinary.NewTableFile(bytes.NewReader(data))
	})

	return a.table
}
