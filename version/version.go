package version

// Overridden at build time with -ldflags "-X github.com/bulga138/hecto/version.Version=...".
var (
	Version   = "1.0.0"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}

func GetBuildTime() string {
	return BuildTime
}

func GetFullVersion() string {
	return GetVersion() + " (" + GetCommit() + ") built at " + GetBuildTime()
}
