package execinfo

import "strings"

// Target names a section within the executable.
type Target struct {
	Segment string
	Section string
}

var (
	// InfoPlist is the section holding the embedded Info.plist.
	InfoPlist = Target{Segment: "__TEXT", Section: "__info_plist"}
	// LaunchdPlist is the section holding the embedded launchd.plist.
	LaunchdPlist = Target{Segment: "__TEXT", Section: "__launchd_plist"}
)

// Custom returns a target for an arbitrary section within the __TEXT segment.
func Custom(section string) Target {
	return Target{Segment: "__TEXT", Section: section}
}

// ParseTarget parses "info", "launchd", "<segment>,<section>" or a bare section name within __TEXT.
func ParseTarget(s string) Target {
	switch s {
	case "info":
		return InfoPlist
	case "launchd":
		return LaunchdPlist
	}
	if seg, sect, ok := strings.Cut(s, ","); ok {
		return Target{Segment: seg, Section: sect}
	}
	return Custom(s)
}

func (t Target) String() string {
	return t.Segment + "," + t.Section
}
