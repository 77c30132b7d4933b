package android

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
)

//go:embed sdk_versions.json
var sdkVersionsJSON []byte

type sdkVersion struct {
	APILevel int    `json:"apiLevel"`
	Version  string `json:"version"`
	Codename string `json:"codename"`
}

var sdkVersions = sync.OnceValue(func() map[string]string {
	var versions []sdkVersion
	if err := json.Unmarshal(sdkVersionsJSON, &versions); err != nil {
		return map[string]string{}
	}

	m := make(map[string]string, len(versions))
	for _, v := range versions {
		name := strings.TrimPrefix(v.Version, "Android ")
		if codename := strings.ReplaceAll(v.Codename, " ", ""); codename != "" {
			name += " " + codename
		}

		m[strconv.Itoa(v.APILevel)] = name
	}

	return m
})

// FormatSDK renders an API level like "34(14 UpsideDownCake)" when
// the level is known, or unchanged otherwise.
func FormatSDK(level string) string {
	if level == "" {
		return "?"
	}

	if name, ok := sdkVersions()[level]; ok {
		return level + "(" + name + ")"
	}

	return level
}
