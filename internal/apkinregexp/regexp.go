package apkinregexp

import "regexp"

// Patterns for scraping the line-oriented output of `aapt2 dump badging`.
var (
	Package                  = regexp.MustCompile(`package:\s*name='([^']+)'\s+versionCode='([^']*)'\s+versionName='([^']*)'`)
	PlatformBuildVersionName = regexp.MustCompile(`platformBuildVersionName='([^']+)'`)
	PlatformBuildVersionCode = regexp.MustCompile(`platformBuildVersionCode='([^']+)'`)
	CompileSDKVersion        = regexp.MustCompile(`compileSdkVersion='([^']+)'`)
	CompileSDKCodename       = regexp.MustCompile(`compileSdkVersionCodename='([^']+)'`)
	// aapt2 labels the line minSdkVersion, older aapt just sdkVersion.
	MinSDK                   = regexp.MustCompile(`(?m)^(?:minSdkVersion|sdkVersion):'([^']+)'`)
	TargetSDK                = regexp.MustCompile(`targetSdkVersion:'([^']+)'`)
	LocalizedLabel           = regexp.MustCompile(`application-label-([\w-]+):'([^']*)'`)
	Label                    = regexp.MustCompile(`application-label:'([^']*)'`)
	Application              = regexp.MustCompile(`application:\s+label='([^']*)'(?:\s+icon='([^']*)')?`)
	LaunchableActivity       = regexp.MustCompile(`launchable-activity:\s+name='([^']*)'`)
	UsesPermission           = regexp.MustCompile(`uses-permission:\s+name='([^']+)'`)
	UsesFeature              = regexp.MustCompile(`uses-feature:\s+name='([^']+)'`)
	UsesImpliedFeature       = regexp.MustCompile(`uses-implied-feature:\s+name='([^']+)'`)
	SupportsScreens          = regexp.MustCompile(`supports-screens:\s+((?:'[^']+'\s*)+)`)
	SupportsAnyDensity       = regexp.MustCompile(`supports-any-density:\s+'([^']+)'`)
	Densities                = regexp.MustCompile(`densities:\s+((?:'[^']+'\s*)+)`)
	Locales                  = regexp.MustCompile(`locales:\s+((?:'[^']+'\s*)+)`)
	DensityIcon              = regexp.MustCompile(`application-icon-([0-9]+):'([^']+)'`)
	Quoted                   = regexp.MustCompile(`'([^']+)'`)
)

var (
	UUID = regexp.MustCompile("^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$")
	// APK admits relative and absolute paths on both separators,
	// including drive-letter prefixes like C:\apps\x.apk and the
	// non-ASCII labels renaming bakes into filenames.
	APK = regexp.MustCompile(`(?i)^[\p{L}\p{N}_:\\/.~ -]+\.apk$`)

	// IllegalFilename matches characters that cannot appear in a
	// filename on Windows, the strictest of the supported targets.
	IllegalFilename = regexp.MustCompile(`[\x00-\x1f\\/:*?"<>|]+`)
)
