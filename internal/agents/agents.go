// Package agents defines the closed set of job-listing providers the router
// can dispatch to. The string form of an ID is the canonical identifier used
// at the system boundary (registry files, API payloads, log fields); Parse is
// the single place that mapping is derived.
package agents

import "fmt"

// ID identifies one job-listing provider.
type ID string

const (
	LinkedIn     ID = "linkedin"
	Indeed       ID = "indeed"
	Glassdoor    ID = "glassdoor"
	Google       ID = "google"
	ZipRecruiter ID = "ziprecruiter"
	Seek         ID = "seek"
	Naukri       ID = "naukri"
	Bayt         ID = "bayt"
	BDJobs       ID = "bdjobs"
)

// All lists every known agent in a fixed order.
var All = []ID{
	LinkedIn,
	Indeed,
	Glassdoor,
	Google,
	ZipRecruiter,
	Seek,
	Naukri,
	Bayt,
	BDJobs,
}

var known = func() map[ID]struct{} {
	m := make(map[ID]struct{}, len(All))
	for _, id := range All {
		m[id] = struct{}{}
	}
	return m
}()

func (id ID) String() string {
	return string(id)
}

// Valid reports whether id is a member of the closed agent set.
func (id ID) Valid() bool {
	_, ok := known[id]
	return ok
}

// Parse converts an external string identifier into an agent ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown agent %q", s)
	}
	return id, nil
}

// Strings converts a slice of IDs to their canonical string form.
func Strings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
