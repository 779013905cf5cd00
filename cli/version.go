package cli

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

// Version describes the build of the binary
type Version struct {
	Tag  string `json:"tag"`
	Time string `json:"time,omitempty"`
	SHA  string `json:"sha,omitempty"`
}

// GetVersion returns the version of this build. The tag is "dirty" for untagged builds.
func GetVersion() Version {
	tag := BuildTag
	if tag == `` {
		tag = `dirty`
	}
	return Version{Tag: tag, Time: BuildTime, SHA: BuildSHA}
}

func getVersion() Version {
	return GetVersion()
}

// String returns a simplified version string consisting of <Git SHA>-<Git Tag>
func (v Version) String() string {
	return fmt.Sprintf("%s-%s", v.SHA, v.Tag)
}
