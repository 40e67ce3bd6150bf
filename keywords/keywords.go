// Package keywords computes a deterministic keyword overlap between a
// structured resume and a job description.
package keywords

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/models"
)

// MaxMissing caps missing_keywords_basic
const MaxMissing = 10

// FailureMessage is reported when the overlap cannot be computed
const FailureMessage = "Failed to analyze keywords"

var keywordPattern = regexp.MustCompile(`^[a-zA-Z]{3,}$`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "a": {}, "an": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {},
}

// isWordRune matches the characters that form a word for boundary purposes.
// Non-ASCII letters count, so "résumé" yields no keyword.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// ExtractKeywords returns the distinct candidate keywords of a text in
// first-seen order: lower-cased words of three or more ASCII letters that
// are not stop words.
func ExtractKeywords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	seen := make(map[string]struct{}, len(words))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if !keywordPattern.MatchString(word) {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	return keywords
}

// ComputeOverlap checks which job description keywords occur anywhere in the
// serialized resume. A keyword matches when it is a substring of the
// lower-cased JSON text, so "java" also matches "javascript".
func ComputeOverlap(resume models.ResumeContent, jobDescription string) models.KeywordAnalysis {
	resumeText, err := serialize(resume)
	if err != nil {
		logger := logging.Component("keywords")
		logger.Error().Err(err).Msg("Error in keyword analysis")
		return models.KeywordAnalysis{Error: FailureMessage}
	}

	keywords := ExtractKeywords(jobDescription)

	matched := 0
	missing := make([]string, 0, MaxMissing)
	for _, kw := range keywords {
		if strings.Contains(resumeText, kw) {
			matched++
			continue
		}
		if len(missing) < MaxMissing {
			missing = append(missing, kw)
		}
	}

	var score float64
	if len(keywords) > 0 {
		score = float64(matched) / float64(len(keywords)) * 100
	}

	return models.KeywordAnalysis{
		TotalJobKeywords:     len(keywords),
		MatchedKeywords:      matched,
		MissingKeywordsBasic: missing,
		KeywordMatchScore:    math.Round(score*10) / 10,
	}
}

func serialize(resume models.ResumeContent) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resume); err != nil {
		return "", err
	}
	return strings.ToLower(buf.String()), nil
}
