package android

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/apkin/apkin/internal/apkinregexp"
)

// Badging is the structured form of `aapt2 dump badging` output.
// It is built once per inspection and not mutated afterwards.
type Badging struct {
	Package                  string            `json:"package"`
	VersionCode              int               `json:"versionCode,omitempty"`
	VersionName              string            `json:"versionName,omitempty"`
	PlatformBuildVersionName string            `json:"platformBuildVersionName,omitempty"`
	PlatformBuildVersionCode string            `json:"platformBuildVersionCode,omitempty"`
	CompileSDKVersion        string            `json:"compileSdkVersion,omitempty"`
	CompileSDKCodename       string            `json:"compileSdkVersionCodename,omitempty"`
	MinSDK                   string            `json:"minSdkVersion,omitempty"`
	TargetSDK                string            `json:"targetSdkVersion,omitempty"`
	Label                    string            `json:"label,omitempty"`
	Labels                   map[string]string `json:"labels,omitempty"`
	Icon                     string            `json:"icon,omitempty"`
	Icons                    map[int]string    `json:"icons,omitempty"`
	LaunchableActivity       string            `json:"launchableActivity,omitempty"`
	Permissions              []string          `json:"permissions,omitempty"`
	Features                 []string          `json:"features,omitempty"`
	ImpliedFeatures          []string          `json:"impliedFeatures,omitempty"`
	SupportsScreens          []string          `json:"supportsScreens,omitempty"`
	SupportsAnyDensity       string            `json:"supportsAnyDensity,omitempty"`
	Densities                []string          `json:"densities,omitempty"`
	Locales                  []string          `json:"locales,omitempty"`
	NativeCode               []string          `json:"nativeCode,omitempty"`
	Raw                      string            `json:"-"`
}

// ParseError reports badging output that is missing a required key.
type ParseError struct {
	Key string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("badging output missing %s", e.Key)
}

// defaultLabelLocales is the locale preference applied when the badging
// output carries localized application labels.
var defaultLabelLocales = []string{"zh-CN", "zh-HK", "zh-TW"}

// ParseBadging scrapes the text output of `aapt2 dump badging`. Optional
// keys that are absent leave the corresponding field empty; only the
// `package:` line is required.
func ParseBadging(text string) (*Badging, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Key: "package:"}
	}

	b := &Badging{
		Labels: map[string]string{},
		Icons:  map[int]string{},
		Raw:    strings.TrimSpace(text),
	}

	pkg := apkinregexp.Package.FindStringSubmatch(text)
	if pkg == nil {
		return nil, &ParseError{Key: "package:"}
	}

	b.Package = pkg[1]
	// aapt2 quotes versionCode, but it is numeric in every manifest
	// that installs. Keep zero when it is not.
	b.VersionCode, _ = strconv.Atoi(pkg[2])
	b.VersionName = pkg[3]

	b.PlatformBuildVersionName = findOne(apkinregexp.PlatformBuildVersionName, text)
	b.PlatformBuildVersionCode = findOne(apkinregexp.PlatformBuildVersionCode, text)
	b.CompileSDKVersion = findOne(apkinregexp.CompileSDKVersion, text)
	b.CompileSDKCodename = findOne(apkinregexp.CompileSDKCodename, text)
	b.MinSDK = findOne(apkinregexp.MinSDK, text)
	b.TargetSDK = findOne(apkinregexp.TargetSDK, text)
	b.LaunchableActivity = findOne(apkinregexp.LaunchableActivity, text)
	b.SupportsAnyDensity = findOne(apkinregexp.SupportsAnyDensity, text)

	for _, m := range apkinregexp.LocalizedLabel.FindAllStringSubmatch(text, -1) {
		b.Labels[m[1]] = m[2]
	}

	if app := apkinregexp.Application.FindStringSubmatch(text); app != nil {
		if len(app) > 2 {
			b.Icon = app[2]
		}

		b.Label = app[1]
	}

	// A bare application-label-zh line outranks the application node
	// label but not the generic application-label line.
	if label := b.Labels["zh"]; label != "" {
		b.Label = label
	}

	if label := findOne(apkinregexp.Label, text); label != "" {
		b.Label = label
	}

	if label := b.PreferredLabel(defaultLabelLocales...); label != "" {
		b.Label = label
	}

	b.Permissions = findAll(apkinregexp.UsesPermission, text)
	b.Features = findAll(apkinregexp.UsesFeature, text)
	b.ImpliedFeatures = findAll(apkinregexp.UsesImpliedFeature, text)
	b.SupportsScreens = findQuotedList(apkinregexp.SupportsScreens, text)
	b.Densities = findQuotedList(apkinregexp.Densities, text)
	b.Locales = findQuotedList(apkinregexp.Locales, text)

	for _, m := range apkinregexp.DensityIcon.FindAllStringSubmatch(text, -1) {
		if density, err := strconv.Atoi(m[1]); err == nil {
			b.Icons[density] = m[2]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "native-code:") || strings.HasPrefix(line, "alt-native-code:") {
			for _, m := range apkinregexp.Quoted.FindAllStringSubmatch(line, -1) {
				b.NativeCode = append(b.NativeCode, m[1])
			}
		}
	}

	return b, nil
}

func findOne(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}

func findAll(re *regexp.Regexp, text string) []string {
	var all []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		all = append(all, m[1])
	}

	return all
}

func findQuotedList(re *regexp.Regexp, text string) []string {
	var all []string
	if m := re.FindStringSubmatch(text); m != nil {
		for _, q := range apkinregexp.Quoted.FindAllStringSubmatch(m[1], -1) {
			all = append(all, q[1])
		}
	}

	return all
}

// PreferredLabel returns the first non-empty localized label following
// the given locale preference, falling back to the unlocalized label.
func (b *Badging) PreferredLabel(locales ...string) string {
	for _, locale := range locales {
		if label := b.Labels[locale]; label != "" {
			return label
		}

		// zh-CN also satisfies a bare zh preference.
		for known, label := range b.Labels {
			if label != "" && strings.HasPrefix(known, locale+"-") {
				return label
			}
		}
	}

	return b.Label
}

// Version is the version used to identify the app to a user,
// falling back to the version code when no versionName was set.
func (b *Badging) Version() string {
	if b.VersionName != "" {
		return b.VersionName
	}

	if b.VersionCode > 0 {
		return strconv.Itoa(b.VersionCode)
	}

	return ""
}

// BestIcon returns the icon reference for the highest density the APK
// declares, falling back to the application node's icon attribute.
func (b *Badging) BestIcon() string {
	var (
		best        string
		bestDensity int
	)
	for density, name := range b.Icons {
		if density > bestDensity {
			best, bestDensity = name, density
		}
	}

	if best == "" {
		return b.Icon
	}

	return best
}
