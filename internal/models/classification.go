// internal/models/classification.go
package models

import "jobsearch-router/internal/catalog"

// DistanceConstraint is a radius limit parsed out of the query text,
// normalized to kilometers.
type DistanceConstraint struct {
	Km      float64 `json:"km"`
	IsLocal bool    `json:"isLocal"` // radius <= 100 km
}

// Classification is the structured signal set extracted from a raw query.
// Absent matches are nil; classification never fails. Created fresh per
// query and never persisted.
type Classification struct {
	Region       *catalog.Region     `json:"-"`
	MatchedToken string              `json:"matchedToken,omitempty"`
	Industry     *catalog.Industry   `json:"-"`
	Distance     *DistanceConstraint `json:"distance,omitempty"`
	Language     string              `json:"language"` // advisory, not yet gating selection
}

// IsLocalSearch reports whether the query carries a local-radius signal.
func (c Classification) IsLocalSearch() bool {
	return c.Distance != nil && c.Distance.IsLocal
}
