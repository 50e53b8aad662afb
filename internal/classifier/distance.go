// internal/classifier/distance.go
package classifier

import (
	"regexp"
	"strconv"

	"jobsearch-router/internal/models"
)

// milesToKm converts statute miles to kilometers.
const milesToKm = 1.609

// localSearchRadiusKm is the radius at or under which a query counts as a
// local search.
const localSearchRadiusKm = 100.0

// distancePatterns is evaluated in order; the first match wins. Each pattern
// captures the numeric radius in group 1.
var distancePatterns = []struct {
	re   *regexp.Regexp
	toKm float64
}{
	{regexp.MustCompile(`within\s+(\d+(?:\.\d+)?)\s*(?:kms?|kilomet(?:er|re)s?)`), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:kms?|kilomet(?:er|re)s?)\b`), 1},
	{regexp.MustCompile(`within\s+(\d+(?:\.\d+)?)\s*(?:miles?|mi)\b`), milesToKm},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:miles?|mi)\b`), milesToKm},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*公里`), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*キロ`), 1},
}

// parseDistance scans the lowered query for a radius constraint and
// normalizes it to kilometers. No constraint returns nil.
func parseDistance(lowered string) *models.DistanceConstraint {
	for _, p := range distancePatterns {
		m := p.re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		km := value * p.toKm
		return &models.DistanceConstraint{
			Km:      km,
			IsLocal: km <= localSearchRadiusKm,
		}
	}
	return nil
}
