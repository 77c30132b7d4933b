package apkin

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/apkin/apkin/aapt"
	"github.com/apkin/apkin/android"
	"github.com/apkin/apkin/keytool"
	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
)

// Inspection is everything apkin can tell about one APK file.
type Inspection struct {
	ID                     string           `json:"id,omitempty"`
	Name                   string           `json:"name,omitempty"`
	Size                   int64            `json:"size,omitempty"`
	Digest                 digest.Digest    `json:"digest,omitempty"`
	SHA256CertFingerprints string           `json:"sha256CertFingerprints,omitempty"`
	Badging                *android.Badging `json:"badging,omitempty"`
	HasIcon                bool             `json:"hasIcon"`
}

type inspector struct {
	aapt    string
	keytool string
}

type InspectOpt func(*inspector)

func WithAAPT(name string) InspectOpt {
	return func(i *inspector) {
		i.aapt = name
	}
}

func WithKeytool(name string) InspectOpt {
	return func(i *inspector) {
		i.keytool = name
	}
}

// Inspect runs `aapt2 dump badging` against the APK at name and
// structures the result, alongside the file's size and digest and, when
// keytool is around, its signing certificate fingerprint. The composited
// launcher icon is returned separately: the icon pipeline and the
// badging pipeline are independent, and an undecodable icon leaves
// HasIcon false without failing the inspection.
func Inspect(ctx context.Context, name string, opts ...InspectOpt) (*Inspection, image.Image, error) {
	var (
		log = LoggerFrom(ctx)
		i   = &inspector{}
	)
	for _, opt := range opts {
		opt(i)
	}

	aaptCmd := aapt.Command(i.aapt)
	if i.aapt == "" {
		var err error
		if aaptCmd, err = aapt.Find(); err != nil {
			return nil, nil, err
		}
	}

	inspection := &Inspection{Name: filepath.Base(name)}

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		out, err := aaptCmd.DumpBadging(egctx, name)
		if err != nil {
			return err
		}

		inspection.Badging, err = android.ParseBadging(out)
		return err
	})

	eg.Go(func() error {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			return err
		}

		inspection.Size = fi.Size()

		inspection.Digest, err = digest.FromReader(f)
		return err
	})

	eg.Go(func() error {
		// Fingerprints are nice to have. Most machines that have
		// aapt2 do not have a JDK.
		fingerprints, err := sha256CertFingerprints(egctx, i.keytool, name)
		if err != nil {
			log.V(1).Info("skipping cert fingerprints", "err", err.Error())
			return nil
		}

		inspection.SHA256CertFingerprints = fingerprints
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	icon, err := Icon(name, inspection.Badging)
	if err != nil {
		log.V(1).Info("no icon preview", "err", err.Error())
		return inspection, nil, nil
	}

	inspection.HasIcon = true

	return inspection, icon, nil
}

// Icon opens the APK at name and composites the best launcher icon
// that badging declares.
func Icon(name string, badging *android.Badging) (image.Image, error) {
	a, err := android.OpenAPK(name)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return a.Icon(badging.BestIcon())
}

func sha256CertFingerprints(ctx context.Context, name, apk string) (string, error) {
	if name != "" {
		return keytool.Command(name).SHA256CertFingerprints(ctx, apk)
	}

	return keytool.SHA256CertFingerprints(ctx, apk)
}
