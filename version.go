// Package texted is a text edit widget for Bubble Tea programs. The widget
// itself lives in package textedit; this package carries the module version.
package texted

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre, Build          string
}

// ParseSemver parses v, which must not carry a leading "v".
func ParseSemver(v string) (Semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, fmt.Errorf("texted: %q is not a semver version", v)
	}
	var s Semver
	for i, p := range []*int{&s.Major, &s.Minor, &s.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Semver{}, fmt.Errorf("texted: version %q: %w", v, err)
		}
		*p = n
	}
	s.Pre, s.Build = m[4], m[5]
	return s, nil
}

func (s Semver) String() string {
	v := fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
	if s.Pre != "" {
		v += "-" + s.Pre
	}
	if s.Build != "" {
		v += "+" + s.Build
	}
	return v
}

// Version returns the module version without the leading "v".
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns the git tag form of Version.
func VersionTag() string { return "v" + Version() }
