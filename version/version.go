package version

import "fmt"

const (
	majorVersion uint32 = 1
	minorVersion uint32 = 0
	patchVersion uint32 = 0
)

var (
	// gitCommit is set at build time:
	//   go build -ldflags "-X massnet.org/hexsum/version.gitCommit=$(git rev-parse HEAD)"
	gitCommit string
	ver       *version
)

type version struct {
	majorVersion  uint32
	minorVersion  uint32
	patchVersion  uint32
	gitCommit     string
	versionString string
}

// Format version to "<majorVersion>.<minorVersion>.<patchVersion>[+<gitCommit>]",
// like "1.0.0", or "1.0.0+1a2b3c4d".
func (v *version) String() string {
	if v.versionString == "" {
		v.versionString = v.format()
	}
	return v.versionString
}

func (v *version) format() string {
	s := fmt.Sprintf("%d.%d.%d", v.majorVersion, v.minorVersion, v.patchVersion)
	if len(v.gitCommit) >= 8 {
		s += "+" + v.gitCommit[:8]
	}
	return s
}

func GetVersion() string {
	return ver.String()
}

func init() {
	ver = &version{
		majorVersion: majorVersion,
		minorVersion: minorVersion,
		patchVersion: patchVersion,
		gitCommit:    gitCommit,
	}
	ver.versionString = ver.format()
}
