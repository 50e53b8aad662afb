// internal/catalog/regions.go
package catalog

import "jobsearch-router/internal/agents"

// Region is one geographic market: the tokens that identify it in query text
// and the agents that cover it best. Regions are static configuration data,
// loaded once and never mutated; the matching algorithm lives in the
// classifier, not here.
type Region struct {
	Name            string
	Countries       []string
	States          []string
	Cities          []string
	Keywords        []string
	PrimaryAgents   []agents.ID
	SecondaryAgents []agents.ID

	// ShortTokenConflicts disambiguates short administrative codes: a token
	// listed here must not win the match when the query also contains any of
	// the conflicting tokens. Keyed by the short token, values are the
	// conflicting tokens. Extending disambiguation is a data change only.
	ShortTokenConflicts map[string][]string
}

// Regions is the static region catalog, in evaluation order.
var Regions = []Region{
	{
		Name:      "australia",
		Countries: []string{"australia"},
		States: []string{
			"new south wales", "victoria", "queensland",
			"western australia", "south australia", "tasmania",
			"nsw", "qld", "vic",
		},
		Cities: []string{
			"sydney", "melbourne", "brisbane", "perth", "adelaide", "canberra",
		},
		Keywords:        []string{"aussie"},
		PrimaryAgents:   []agents.ID{agents.Seek, agents.Indeed},
		SecondaryAgents: []agents.ID{agents.LinkedIn, agents.Glassdoor},
		ShortTokenConflicts: map[string][]string{
			"vic": {"victoria falls"},
			"qld": nil,
			"nsw": nil,
		},
	},
	{
		Name:      "usa",
		Countries: []string{"usa", "united states", "america"},
		States: []string{
			"california", "texas", "new york", "washington", "florida",
			"illinois", "massachusetts", "colorado", "georgia",
			"ny", "ca", "tx", "wa", "fl", "in",
		},
		Cities: []string{
			"san francisco", "seattle", "austin", "boston", "chicago",
			"los angeles", "new york city", "denver", "atlanta",
		},
		PrimaryAgents:   []agents.ID{agents.Indeed, agents.ZipRecruiter},
		SecondaryAgents: []agents.ID{agents.LinkedIn, agents.Glassdoor, agents.Google},
		ShortTokenConflicts: map[string][]string{
			"ca": {"canada"},
			"in": {"india"},
			"wa": {"australia", "western australia"},
		},
	},
	{
		Name:      "canada",
		Countries: []string{"canada"},
		States: []string{
			"ontario", "quebec", "british columbia", "alberta", "manitoba", "bc",
		},
		Cities: []string{
			"toronto", "vancouver", "montreal", "ottawa", "calgary", "edmonton",
		},
		PrimaryAgents:   []agents.ID{agents.Indeed, agents.LinkedIn},
		SecondaryAgents: []agents.ID{agents.Glassdoor, agents.Google},
		ShortTokenConflicts: map[string][]string{
			"bc": nil,
		},
	},
	{
		Name:      "uk",
		Countries: []string{"united kingdom", "uk", "england", "scotland", "wales"},
		Cities: []string{
			"london", "manchester", "edinburgh", "birmingham", "glasgow", "leeds",
		},
		PrimaryAgents:   []agents.ID{agents.Indeed, agents.LinkedIn},
		SecondaryAgents: []agents.ID{agents.Glassdoor, agents.Google},
	},
	{
		Name:      "india",
		Countries: []string{"india"},
		States:    []string{"karnataka", "maharashtra", "telangana", "tamil nadu"},
		Cities: []string{
			"bangalore", "bengaluru", "mumbai", "delhi", "hyderabad",
			"chennai", "pune", "gurgaon", "noida", "kolkata",
		},
		PrimaryAgents:   []agents.ID{agents.Naukri, agents.Indeed},
		SecondaryAgents: []agents.ID{agents.LinkedIn, agents.Glassdoor},
	},
	{
		Name: "middle_east",
		Countries: []string{
			"uae", "united arab emirates", "saudi arabia", "qatar",
			"kuwait", "bahrain", "oman",
		},
		Cities: []string{
			"dubai", "abu dhabi", "riyadh", "doha", "jeddah", "sharjah",
		},
		Keywords:        []string{"دبي", "الرياض", "الإمارات"},
		PrimaryAgents:   []agents.ID{agents.Bayt, agents.Indeed},
		SecondaryAgents: []agents.ID{agents.LinkedIn},
	},
	{
		Name:            "bangladesh",
		Countries:       []string{"bangladesh"},
		Cities:          []string{"dhaka", "chittagong", "sylhet"},
		PrimaryAgents:   []agents.ID{agents.BDJobs, agents.Indeed},
		SecondaryAgents: []agents.ID{agents.LinkedIn},
	},
	{
		Name:            "germany",
		Countries:       []string{"germany", "deutschland"},
		Cities:          []string{"berlin", "munich", "hamburg", "frankfurt", "cologne"},
		PrimaryAgents:   []agents.ID{agents.Indeed, agents.LinkedIn},
		SecondaryAgents: []agents.ID{agents.Glassdoor},
	},
}

// DefaultGlobalAgents is the provider set used when a query carries no
// geographic signal at all.
var DefaultGlobalAgents = []agents.ID{
	agents.LinkedIn, agents.Indeed, agents.Glassdoor, agents.Google,
}

// DefaultFallbackAgents are the globally reliable, unrestricted agents used
// to seed the fallback set.
var DefaultFallbackAgents = []agents.ID{
	agents.Indeed, agents.LinkedIn,
}

// RegionByName returns the region with the given name, or nil.
func RegionByName(name string) *Region {
	for i := range Regions {
		if Regions[i].Name == name {
			return &Regions[i]
		}
	}
	return nil
}
