package engine

import (
	"log/slog"
	"strings"
)

// devIDAliases maps extracted actor aliases to graph node identifiers.
// Read-only after process start.
var devIDAliases = map[string]string{
	"infrastructure": "infrastructure_architect_ai",
	"infra":          "infrastructure_architect_ai",
	"인프라":            "infrastructure_architect_ai",
	"code":           "code_architect_ai",
	"코드":             "code_architect_ai",
}

// fallbackTemplates are generic per-intent templates used when no pattern
// rule matches the question.
var fallbackTemplates = map[Intent]string{
	IntentWho: `MATCH (dev:Developer)
RETURN dev.name as name, dev.role as role, dev.status as status
ORDER BY dev.name`,
	IntentWhat: `MATCH (project:Project)
RETURN project.name as name, project.phase as phase, project.status as status`,
	IntentCount: `MATCH (n)
RETURN labels(n)[0] as type, count(n) as count
ORDER BY count DESC`,
	IntentSkill: `MATCH (skill:Skill)
RETURN skill.name as skill, skill.category as category
ORDER BY skill.name`,
}

// countAllTemplate is the unconditional last-resort template.
const countAllTemplate = "MATCH (n) RETURN count(n) as total_nodes"

// timeFilters maps extracted time tags to Cypher filter expressions.
// Tags without an entry yield no filter and are silently ignored.
var timeFilters = map[TimeTag]string{
	TimeRecent:    "r.timestamp > datetime() - duration('P7D')",
	TimeToday:     "date(r.timestamp) = date()",
	TimeThisWeek:  "r.timestamp > datetime() - duration('P7D')",
	TimeThisMonth: "r.timestamp > datetime() - duration('P30D')",
}

// Generator turns a question analysis into an executable Cypher query
// string. It is stateless per call and safe for concurrent use.
type Generator struct {
	library *Library
	logger  *slog.Logger
}

// NewGenerator creates a Generator over the given pattern library.
func NewGenerator(library *Library, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{library: library, logger: logger}
}

// Generate selects a template for the analysis, substitutes extracted
// entities and time constraints into its placeholders, and returns the
// resulting Cypher string. Placeholders whose entity was never extracted
// remain verbatim in the result; the execution boundary rejects them as
// invalid syntax.
func (g *Generator) Generate(analysis Analysis) string {
	template := g.selectTemplate(analysis)

	params := buildParams(analysis)
	query := substitute(template, params)

	if analysis.TimeConstraint != TimeNone {
		if filter, ok := timeFilters[analysis.TimeConstraint]; ok {
			query = applyTimeFilter(query, filter)
		}
	}

	g.logger.Debug("cypher generated",
		"intent", analysis.Intent,
		"length", len(query))

	return query
}

// selectTemplate re-runs library detection against the original question
// (same first-match-wins policy as the analyzer), then falls back to the
// per-intent generic templates, then to the count-all template.
func (g *Generator) selectTemplate(analysis Analysis) string {
	clean := strings.ToLower(strings.TrimSpace(analysis.OriginalQuery))
	if rule, ok := g.library.Match(clean); ok {
		return strings.TrimSpace(rule.Template)
	}

	if template, ok := fallbackTemplates[analysis.Intent]; ok {
		return template
	}

	return countAllTemplate
}

// buildParams builds the placeholder parameter map deterministically from
// the extracted entities, in extraction order. The first eligible entity
// claims a placeholder; later entities never overwrite it. Actor aliases
// fill {dev_id}; all other entities fill {skill_name}.
func buildParams(analysis Analysis) map[string]string {
	params := map[string]string{}

	for _, entity := range analysis.Entities {
		lower := strings.ToLower(entity)
		if devID, ok := devIDAliases[lower]; ok {
			if _, taken := params["dev_id"]; !taken {
				params["dev_id"] = devID
			}
			continue
		}

		if _, taken := params["skill_name"]; !taken {
			params["skill_name"] = normalizeSkillName(entity)
		}
	}

	return params
}

// normalizeSkillName capitalizes the reserved skill name "python" so it
// matches the stored node property, and passes every other entity through
// verbatim.
func normalizeSkillName(entity string) string {
	if strings.EqualFold(entity, "python") {
		return "Python"
	}
	return entity
}

// substitute performs a single substitution pass, replacing every {name}
// placeholder that has a value in params. Templates without placeholders
// are returned unchanged.
func substitute(template string, params map[string]string) string {
	query := template
	for _, name := range []string{"dev_id", "skill_name"} {
		if value, ok := params[name]; ok {
			query = strings.ReplaceAll(query, "{"+name+"}", value)
		}
	}
	return query
}

// applyTimeFilter conjoins the filter into an existing WHERE clause, or
// inserts a new WHERE clause immediately before the final RETURN.
func applyTimeFilter(query, filter string) string {
	if idx := strings.Index(query, "WHERE"); idx >= 0 {
		return query[:idx] + "WHERE " + filter + " AND" + query[idx+len("WHERE"):]
	}

	if idx := strings.LastIndex(query, "RETURN"); idx >= 0 {
		return query[:idx] + "WHERE " + filter + "\n" + query[idx:]
	}

	return query
}
