package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ToolVersion is a parsed toolchain version. Raw preserves the dotted
// version string as printed by the tool, without the name prefix.
type ToolVersion struct {
	Major int
	Minor int
	Raw   string
}

// ParseToolVersion extracts a version token of shape
// <prefix><major>.<minor>[.<patch>] from a whitespace-separated version
// line. For example, "go version go1.24.0 darwin/arm64" with prefix "go"
// yields {Major: 1, Minor: 24, Raw: "1.24.0"}.
//
// The token's position among the surrounding fields is not assumed; the
// first field matching the shape wins. A line that yields no parseable
// token is an error, never a silent default.
func ParseToolVersion(output, prefix string) (ToolVersion, error) {
	for _, field := range strings.Fields(output) {
		rest, ok := strings.CutPrefix(field, prefix)
		if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
			continue
		}

		parts := strings.SplitN(rest, ".", 3)
		if len(parts) < 2 {
			continue
		}

		major, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		minor, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		return ToolVersion{Major: major, Minor: minor, Raw: rest}, nil
	}

	return ToolVersion{}, zerr.With(ErrVersionUnrecognized, "output", strings.TrimSpace(output))
}

// AtLeast reports whether the version is at least major.minor, comparing
// numerically on major first, then minor. The boundary is inclusive.
func (v ToolVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v ToolVersion) String() string {
	return v.Raw
}
