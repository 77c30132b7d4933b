package apkin

// Semver is the version of apkin. A real build stamps it
// via -ldflags.
var Semver = "0.1.0"

func SemVer() string {
	return "v" + Semver
}
