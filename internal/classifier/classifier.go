// internal/classifier/classifier.go
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"jobsearch-router/internal/catalog"
	"jobsearch-router/internal/models"
)

// shortTokenLen is the boundary between word-boundary matching and plain
// substring containment. A 2-3 letter code like "nsw" or "ca" must match as
// a standalone word or it matches inside ordinary prose.
const shortTokenLen = 3

// Classifier extracts structured routing signals from raw query text. It is
// pure and deterministic: no I/O, no failure modes, absence of a signal is a
// nil field, never an error.
type Classifier struct {
	regions    []catalog.Region
	industries []catalog.Industry
}

// New builds a classifier over the given static catalogs.
func New(regions []catalog.Region, industries []catalog.Industry) *Classifier {
	return &Classifier{regions: regions, industries: industries}
}

// NewDefault builds a classifier over the compiled-in catalogs.
func NewDefault() *Classifier {
	return New(catalog.Regions, catalog.Industries)
}

// Classify runs geography, industry, distance and language detection over
// the query text and returns a best-effort classification.
func (c *Classifier) Classify(text string) models.Classification {
	lowered := strings.ToLower(text)

	region, token := c.matchRegion(lowered)
	industry := c.matchIndustry(lowered)
	distance := parseDistance(lowered)
	language := detectLanguage(text)

	return models.Classification{
		Region:       region,
		MatchedToken: token,
		Industry:     industry,
		Distance:     distance,
		Language:     language,
	}
}

// matchRegion scans every region's token lists against the lowered query.
// The longest matched token wins across all regions, so a generic 2-3 letter
// code never overrides a full country or city name found elsewhere in the
// same query.
func (c *Classifier) matchRegion(lowered string) (*catalog.Region, string) {
	var (
		best      *catalog.Region
		bestToken string
	)

	for i := range c.regions {
		region := &c.regions[i]
		for _, group := range [][]string{region.Countries, region.States, region.Cities, region.Keywords} {
			for _, token := range group {
				if !tokenMatches(lowered, token) {
					continue
				}
				if conflicted(lowered, region, token) {
					continue
				}
				if len(token) > len(bestToken) {
					best = region
					bestToken = token
				}
			}
		}
	}

	return best, bestToken
}

// conflicted applies the data-driven short-token disambiguation: the token
// loses when the query also contains any of its configured conflicts.
func conflicted(lowered string, region *catalog.Region, token string) bool {
	for _, other := range region.ShortTokenConflicts[token] {
		if strings.Contains(lowered, other) {
			return true
		}
	}
	return false
}

// tokenMatches tests a single catalog token against the lowered query.
// Short ASCII tokens require word boundaries; longer tokens and non-Latin
// scripts use substring containment.
func tokenMatches(lowered, token string) bool {
	if utf8.RuneCountInString(token) > shortTokenLen || !isASCII(token) {
		return strings.Contains(lowered, token)
	}
	return containsWord(lowered, token)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// containsWord reports whether w occurs in s delimited by non-alphanumeric
// runes on both sides.
func containsWord(s, w string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], w)
		if idx < 0 {
			return false
		}
		idx += start

		leftOK := idx == 0 || !isWordRune(runeBefore(s, idx))
		after := idx + len(w)
		rightOK := after >= len(s) || !isWordRune(runeAt(s, after))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runeBefore(s string, idx int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return r
}

func runeAt(s string, idx int) rune {
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return r
}

// matchIndustry counts keyword hits per category; the highest count wins and
// ties keep the first-seen category. Zero hits everywhere means no match.
func (c *Classifier) matchIndustry(lowered string) *catalog.Industry {
	var (
		best     *catalog.Industry
		bestHits int
	)

	for i := range c.industries {
		industry := &c.industries[i]
		hits := 0
		for _, kw := range industry.Keywords {
			if strings.Contains(lowered, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = industry
			bestHits = hits
		}
	}

	return best
}
