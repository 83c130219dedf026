package engine

import "regexp"

// Rule is a named, immutable mapping from a detectable question shape to an
// intent, a complexity, and a parameterized Cypher template.
//
// Detection patterns are matched case-insensitively against the lower-cased,
// trimmed question text, unanchored: a rule matches if its pattern occurs
// anywhere in the text.
type Rule struct {
	Name       string
	Intent     Intent
	Complexity Complexity
	Template   string

	pattern *regexp.Regexp
}

// Matches reports whether the rule's detection pattern occurs in text.
func (r Rule) Matches(text string) bool {
	return r.pattern.MatchString(text)
}

// mustRule compiles a detection pattern into a Rule, panicking on an invalid
// expression. Only used for the static catalog below.
func mustRule(name, pattern string, intent Intent, complexity Complexity, template string) Rule {
	return Rule{
		Name:       name,
		Intent:     intent,
		Complexity: complexity,
		Template:   template,
		pattern:    regexp.MustCompile("(?i)" + pattern),
	}
}

// Library is an ordered, read-only catalog of pattern rules. Rule order is a
// semantic contract: detection is first-match-wins, so reordering rules
// changes classification outcomes for ambiguous questions. The library is
// constructed once at startup and safe for unlimited concurrent readers.
type Library struct {
	rules []Rule
}

// NewLibrary creates a Library from rules, preserving their order.
func NewLibrary(rules []Rule) *Library {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Library{rules: copied}
}

// Rules returns the rules in detection order. Callers must not modify the
// returned slice.
func (l *Library) Rules() []Rule {
	return l.rules
}

// Match returns the first rule whose detection pattern occurs in text, in
// library order. The second return value is false when no rule matches.
func (l *Library) Match(text string) (Rule, bool) {
	for _, rule := range l.rules {
		if rule.Matches(text) {
			return rule, true
		}
	}
	return Rule{}, false
}

// DefaultLibrary returns the built-in pattern catalog. The catalog covers
// who/what/count/skill/relationship questions over the developer knowledge
// graph, with Korean and English detection phrases.
func DefaultLibrary() *Library {
	return NewLibrary([]Rule{
		mustRule("recent_developer",
			`(최근|마지막|가장.*최근).*작업.*개발자`,
			IntentWho, ComplexityMedium, `
MATCH (dev:Developer)
OPTIONAL MATCH (dev)-[r:CREATED|AUTHORED|COMPLETED]->(activity)
WHERE r.timestamp IS NOT NULL
RETURN dev.name as developer, dev.role as role,
       max(r.timestamp) as last_activity,
       count(activity) as activity_count
ORDER BY last_activity DESC
LIMIT 5`),

		mustRule("skilled_developer",
			`(누가|어떤.*개발자).*\b(\w+)\b.*(스킬|기술|능력)`,
			IntentWho, ComplexityMedium, `
MATCH (dev:Developer)-[r:HAS_SKILL]->(skill:Skill)
WHERE skill.name CONTAINS '{skill_name}' OR skill.category CONTAINS '{skill_name}'
RETURN dev.name as developer, dev.role as role,
       skill.name as skill, r.level as level, r.proficiency as proficiency
ORDER BY r.proficiency DESC`),

		mustRule("project_status",
			`(프로젝트|상태|진행.*상황)`,
			IntentWhat, ComplexitySimple, `
MATCH (project:Project)
OPTIONAL MATCH (project)<-[:WORKS_ON]-(dev:Developer)
OPTIONAL MATCH (project)<-[:PART_OF]-(achievement:Achievement)
RETURN project.name as project, project.phase as phase,
       project.status as status, count(dev) as developers,
       count(achievement) as achievements`),

		mustRule("latest_achievements",
			`(최근.*성과|성취|완료.*작업)`,
			IntentWhat, ComplexityMedium, `
MATCH (achievement:Achievement)
WHERE achievement.completed_date IS NOT NULL
RETURN achievement.name as achievement, achievement.description as description,
       achievement.completed_date as completed_date,
       achievement.importance as importance
ORDER BY achievement.completed_date DESC
LIMIT 10`),

		mustRule("skill_count",
			`(몇.*개|개수|얼마나.*많은).*(스킬|기술)`,
			IntentCount, ComplexitySimple, `
MATCH (skill:Skill)
RETURN skill.category as category, count(skill) as skill_count
ORDER BY skill_count DESC`),

		mustRule("developer_count",
			`(몇.*명|몇.*개|개수|전체).*(개발자|AI)`,
			IntentCount, ComplexitySimple, `
MATCH (dev:Developer)
RETURN dev.role as role, count(dev) as developer_count
ORDER BY developer_count DESC`),

		mustRule("developer_skills",
			`(\w+).*개발자.*(스킬|기술|능력)`,
			IntentSkill, ComplexityMedium, `
MATCH (dev:Developer {id: '{dev_id}'})-[r:HAS_SKILL]->(skill:Skill)
RETURN skill.name as skill, skill.category as category,
       r.level as level, r.proficiency as proficiency
ORDER BY r.proficiency DESC`),

		mustRule("skill_based_search",
			`(\w+).*(스킬|기술).*가진.*개발자`,
			IntentWho, ComplexityMedium, `
MATCH (dev:Developer)-[r:HAS_SKILL]->(skill:Skill)
WHERE skill.name CONTAINS '{skill_name}' OR skill.category CONTAINS '{skill_name}'
RETURN dev.name as developer, dev.role as role,
       skill.name as skill, r.level as level, r.proficiency as proficiency
ORDER BY r.proficiency DESC`),

		mustRule("knowledge_gaps",
			`(부족|격차|모자란).*(지식|기술|스킬)`,
			IntentRelationship, ComplexityComplex, `
MATCH (dev:Developer)
OPTIONAL MATCH (dev)-[r:HAS_SKILL]->(skill:Skill)
WITH dev, count(skill) as skill_count
WHERE skill_count < 3
RETURN dev.name as developer, dev.role as role, skill_count
ORDER BY skill_count ASC`),

		mustRule("collaboration_network",
			`(협업|함께.*작업|관계)`,
			IntentRelationship, ComplexityComplex, `
MATCH (dev1:Developer)-[r:HANDS_OFF_TO|WORKS_ON]-(dev2:Developer)
RETURN dev1.name as developer1, dev2.name as developer2,
       type(r) as relationship`),
	})
}
