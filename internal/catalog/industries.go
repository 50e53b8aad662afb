// internal/catalog/industries.go
package catalog

import "jobsearch-router/internal/agents"

// Industry is one job sector with the keywords that identify it and the
// agents that index it best. Weight scales the confidence contribution of an
// industry match.
type Industry struct {
	Name            string
	Keywords        []string
	PreferredAgents []agents.ID
	Weight          float64
}

// Industries is the static industry catalog, in evaluation order. Ties on
// keyword-hit count keep the earlier entry.
var Industries = []Industry{
	{
		Name: "technology",
		Keywords: []string{
			"software", "engineer", "developer", "programmer", "devops",
			"frontend", "backend", "fullstack", "data scientist", "cloud",
			"machine learning", "cybersecurity", "sre", "tech",
		},
		PreferredAgents: []agents.ID{agents.LinkedIn, agents.Indeed},
		Weight:          1.0,
	},
	{
		Name: "healthcare",
		Keywords: []string{
			"nurse", "doctor", "medical", "health", "hospital",
			"pharmacist", "clinic", "physician", "dental",
		},
		PreferredAgents: []agents.ID{agents.Indeed, agents.Glassdoor},
		Weight:          0.9,
	},
	{
		Name: "finance",
		Keywords: []string{
			"finance", "accounting", "banking", "analyst", "audit",
			"investment", "fintech", "actuary",
		},
		PreferredAgents: []agents.ID{agents.LinkedIn, agents.Glassdoor},
		Weight:          0.9,
	},
	{
		Name: "hospitality",
		Keywords: []string{
			"chef", "hotel", "restaurant", "barista", "waiter",
			"tourism", "housekeeping", "bartender",
		},
		PreferredAgents: []agents.ID{agents.Indeed},
		Weight:          0.8,
	},
	{
		Name: "education",
		Keywords: []string{
			"teacher", "professor", "tutor", "school", "university",
			"lecturer", "curriculum",
		},
		PreferredAgents: []agents.ID{agents.Indeed},
		Weight:          0.8,
	},
	{
		Name: "retail",
		Keywords: []string{
			"retail", "sales associate", "store", "cashier", "merchandiser",
			"warehouse",
		},
		PreferredAgents: []agents.ID{agents.Indeed, agents.ZipRecruiter},
		Weight:          0.7,
	},
}
