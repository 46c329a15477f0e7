package lockbox

// version is the release of this build. It can be overwritten at link time:
//
//   go build -ldflags "-X github.com/iov-one/lockbox.version=v1.2.3"
var version = "v0.1.0-dev"

// GitCommit is set by build flags.
var GitCommit = ""

// Version returns the release, followed by the commit if known.
func Version() string {
	if GitCommit == "" {
		return version
	}
	return version + " " + GitCommit
}
