package goalchain

// Release is the version of this code base. Untagged builds carry the
// "-dev" suffix.
const Release = "v0.1.0-dev"

// GitCommit is the commit the binary was built from, set at link time:
//
//	go build -ldflags "-X github.com/iov-one/goalchain.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version is reported by the "version" command and in the ABCI Info
// response.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
