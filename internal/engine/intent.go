package engine

// Intent classifies the purpose of a natural-language question.
// Exactly one intent is assigned per question; IntentUnknown is the default
// when no pattern rule matches.
type Intent string

const (
	IntentWho          Intent = "who"
	IntentWhat         Intent = "what"
	IntentWhen         Intent = "when"
	IntentWhere        Intent = "where"
	IntentHow          Intent = "how"
	IntentWhy          Intent = "why"
	IntentCount        Intent = "count"
	IntentRecent       Intent = "recent"
	IntentSkill        Intent = "skill"
	IntentRelationship Intent = "relationship"
	IntentUnknown      Intent = "unknown"
)

// String returns the string representation of the Intent.
func (i Intent) String() string {
	return string(i)
}

// Complexity is a coarse estimate of how many connected entities a
// question's answer requires.
type Complexity string

const (
	// ComplexitySimple is a single entity lookup.
	ComplexitySimple Complexity = "simple"
	// ComplexityMedium connects 2-3 entities.
	ComplexityMedium Complexity = "medium"
	// ComplexityComplex is a multi-hop pattern.
	ComplexityComplex Complexity = "complex"
	// ComplexityAdvanced requires aggregation or inference.
	ComplexityAdvanced Complexity = "advanced"
)

// String returns the string representation of the Complexity.
func (c Complexity) String() string {
	return string(c)
}

// TimeTag identifies a temporal constraint extracted from a question.
// The zero value means no constraint was found.
type TimeTag string

const (
	TimeNone      TimeTag = ""
	TimeRecent    TimeTag = "recent"
	TimeToday     TimeTag = "today"
	TimeYesterday TimeTag = "yesterday"
	TimeThisWeek  TimeTag = "this_week"
	TimeLastWeek  TimeTag = "last_week"
	TimeThisMonth TimeTag = "this_month"
	TimeLastMonth TimeTag = "last_month"
)

// intentDescriptions maps intents to a human-readable sentence describing
// what the user is after. Intents without an entry fall back to
// unknownIntentDescription.
var intentDescriptions = map[Intent]string{
	IntentWho:          "사용자가 특정 인물이나 개발자에 대한 정보를 찾고 있습니다",
	IntentWhat:         "사용자가 특정 사물, 프로젝트, 또는 개념에 대한 정보를 원합니다",
	IntentWhen:         "사용자가 시간적 정보나 일정에 대해 질문합니다",
	IntentCount:        "사용자가 수량이나 통계 정보를 요구합니다",
	IntentSkill:        "사용자가 기술이나 능력에 대한 정보를 찾습니다",
	IntentRelationship: "사용자가 관계나 연결에 대한 분석을 원합니다",
	IntentRecent:       "사용자가 최근 활동이나 변화를 궁금해합니다",
}

const unknownIntentDescription = "사용자의 의도를 파악하기 어렵습니다"

// DescribeIntent returns the fixed description sentence for an intent, or
// the generic unknown-intent sentence for intents without an entry.
func DescribeIntent(i Intent) string {
	if desc, ok := intentDescriptions[i]; ok {
		return desc
	}
	return unknownIntentDescription
}
