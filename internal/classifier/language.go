// internal/classifier/language.go
package classifier

import "unicode"

// nonLatinThreshold is the share of codepoints in a non-Latin script needed
// to tag the query with that script's language.
const nonLatinThreshold = 0.30

// detectLanguage tags queries dominated by a known non-Latin script.
// Advisory only: the tag is threaded through the classification but does not
// currently gate agent selection.
func detectLanguage(text string) string {
	var total, cjk, kana, hangul, arabic int

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		switch {
		case r >= 0x3040 && r <= 0x30FF:
			kana++
		case (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF):
			cjk++
		case r >= 0xAC00 && r <= 0xD7AF:
			hangul++
		case r >= 0x0600 && r <= 0x06FF:
			arabic++
		}
	}

	if total == 0 {
		return "en"
	}

	threshold := int(float64(total) * nonLatinThreshold)
	switch {
	// Kana separates Japanese from Chinese; Japanese prose mixes kana with
	// kanji, so kana presence takes precedence over the CJK count.
	case kana > 0 && kana+cjk > threshold:
		return "ja"
	case hangul > threshold:
		return "ko"
	case cjk > threshold:
		return "zh"
	case arabic > threshold:
		return "ar"
	default:
		return "en"
	}
}
