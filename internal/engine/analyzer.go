package engine

import (
	"log/slog"
	"regexp"
	"strings"
)

// Analysis is the structured result of analyzing a natural-language question.
// It is created fresh per request and never shared.
type Analysis struct {
	OriginalQuery     string     `json:"original_query"`
	Intent            Intent     `json:"type"`
	Complexity        Complexity `json:"complexity"`
	Entities          []string   `json:"entities_found"`
	Keywords          []string   `json:"keywords,omitempty"`
	TimeConstraint    TimeTag    `json:"time_constraint,omitempty"`
	IntentDescription string     `json:"intent"`
}

// entityPattern detects a known actor alias in the question text.
type entityPattern struct {
	pattern *regexp.Regexp
	entity  string
}

// devAliasPatterns detect the named developer agents. Matching any of these
// yields a short alias token that the generator maps to a node identifier.
var devAliasPatterns = []entityPattern{
	{regexp.MustCompile(`(?i)infrastructure.*architect.*ai`), "infrastructure"},
	{regexp.MustCompile(`(?i)code.*architect.*ai`), "code"},
	{regexp.MustCompile(`인프라.*아키텍트`), "infrastructure"},
	{regexp.MustCompile(`코드.*아키텍트`), "code"},
}

// skillVocabulary is the fixed list of domain and skill terms recognized as
// entities, matched case-insensitively as substrings.
var skillVocabulary = []string{
	"terraform", "python", "neo4j", "cypher",
	"gcp", "클라우드", "보안", "파이프라인",
}

// importantWords is the fixed keyword vocabulary. Keywords are collected in
// vocabulary order, not in text order.
var importantWords = []string{
	"최근", "가장", "많은", "적은", "빠른", "느린",
	"개발자", "프로젝트", "스킬", "기술", "성과",
	"완료", "진행", "작업", "활동", "관계", "협업",
}

// timePatterns map temporal phrases to time tags. Order matters: the tag of
// the first matching pattern wins.
var timePatterns = []struct {
	pattern *regexp.Regexp
	tag     TimeTag
}{
	{regexp.MustCompile(`최근`), TimeRecent},
	{regexp.MustCompile(`오늘`), TimeToday},
	{regexp.MustCompile(`어제`), TimeYesterday},
	{regexp.MustCompile(`이번.*주`), TimeThisWeek},
	{regexp.MustCompile(`지난.*주`), TimeLastWeek},
	{regexp.MustCompile(`이번.*달`), TimeThisMonth},
	{regexp.MustCompile(`지난.*달`), TimeLastMonth},
}

// Analyzer classifies questions against a pattern library and extracts
// entities, keywords, and time constraints. It is stateless per call and
// safe for concurrent use.
type Analyzer struct {
	library *Library
	logger  *slog.Logger
}

// NewAnalyzer creates an Analyzer over the given pattern library.
func NewAnalyzer(library *Library, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{library: library, logger: logger}
}

// Analyze classifies the question and extracts its entities, keywords, and
// time constraint. It never fails: empty or unmatched input resolves to
// IntentUnknown with ComplexitySimple and empty extraction sets.
func (a *Analyzer) Analyze(question string) Analysis {
	clean := strings.ToLower(strings.TrimSpace(question))

	intent := IntentUnknown
	complexity := ComplexitySimple
	if rule, ok := a.library.Match(clean); ok {
		intent = rule.Intent
		complexity = rule.Complexity
		a.logger.Debug("pattern matched", "rule", rule.Name, "intent", intent)
	}

	analysis := Analysis{
		OriginalQuery:     question,
		Intent:            intent,
		Complexity:        complexity,
		Entities:          extractEntities(clean),
		Keywords:          extractKeywords(clean),
		TimeConstraint:    extractTimeConstraint(clean),
		IntentDescription: DescribeIntent(intent),
	}

	a.logger.Debug("question analyzed",
		"intent", analysis.Intent,
		"complexity", analysis.Complexity,
		"entities", len(analysis.Entities))

	return analysis
}

// extractEntities scans the text for actor aliases and skill vocabulary
// terms. The result is deduplicated, preserving first-seen order so the
// extraction is deterministic for a given input.
func extractEntities(text string) []string {
	entities := []string{}
	seen := map[string]bool{}

	add := func(entity string) {
		if !seen[entity] {
			seen[entity] = true
			entities = append(entities, entity)
		}
	}

	for _, dp := range devAliasPatterns {
		if dp.pattern.MatchString(text) {
			add(dp.entity)
		}
	}

	lower := strings.ToLower(text)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			add(skill)
		}
	}

	return entities
}

// extractKeywords returns the important words present in the text, in
// vocabulary order.
func extractKeywords(text string) []string {
	keywords := []string{}
	for _, word := range importantWords {
		if strings.Contains(text, word) {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// extractTimeConstraint returns the tag of the first matching temporal
// pattern, or TimeNone.
func extractTimeConstraint(text string) TimeTag {
	for _, tp := range timePatterns {
		if tp.pattern.MatchString(text) {
			return tp.tag
		}
	}
	return TimeNone
}
