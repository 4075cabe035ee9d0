package version

const (
	// SemVer is used as the fallback version of native-utils when not using
	// git describe. It uses semantic versioning format.
	SemVer = "1.0.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find the commit hash, which is
// helpful when working with the native-utils binary. See Makefile.
var GitCommitHash = ""

// Version returns the semantic version, with the commit hash appended when
// one was stamped at build time.
func Version() string {
	v := SemVer
	if GitCommitHash != "" {
		v += "+" + GitCommitHash
	}
	return v
}
