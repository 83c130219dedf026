package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Detection is first-match-wins, so the catalog order is part of the
// library's contract. This test pins the order; changing it changes
// classification outcomes for ambiguous questions and must be deliberate.
func TestDefaultLibrary_RuleOrder(t *testing.T) {
	expected := []string{
		"recent_developer",
		"skilled_developer",
		"project_status",
		"latest_achievements",
		"skill_count",
		"developer_count",
		"developer_skills",
		"skill_based_search",
		"knowledge_gaps",
		"collaboration_network",
	}

	rules := DefaultLibrary().Rules()
	require.Len(t, rules, len(expected))
	for i, rule := range rules {
		assert.Equal(t, expected[i], rule.Name, "rule at position %d", i)
	}
}

func TestLibrary_Match_FirstMatchWins(t *testing.T) {
	library := NewLibrary([]Rule{
		mustRule("first", `개발자`, IntentWho, ComplexitySimple, "RETURN 1"),
		mustRule("second", `개발자`, IntentCount, ComplexityMedium, "RETURN 2"),
	})

	rule, ok := library.Match("개발자 목록")
	require.True(t, ok)
	assert.Equal(t, "first", rule.Name)
}

func TestLibrary_Match_NoMatch(t *testing.T) {
	_, ok := DefaultLibrary().Match("completely unrelated text")
	assert.False(t, ok)
}

func TestRule_Matches_Unanchored(t *testing.T) {
	rule := mustRule("r", `프로젝트`, IntentWhat, ComplexitySimple, "RETURN 1")

	assert.True(t, rule.Matches("우리 프로젝트 상태"))
	assert.True(t, rule.Matches("프로젝트"))
	assert.False(t, rule.Matches("스킬"))
}

func TestDefaultLibrary_Classification(t *testing.T) {
	tests := []struct {
		question   string
		rule       string
		intent     Intent
		complexity Complexity
	}{
		{
			question:   "가장 최근에 작업한 개발자는 누구인가?",
			rule:       "recent_developer",
			intent:     IntentWho,
			complexity: ComplexityMedium,
		},
		{
			question:   "전체 개발자는 몇 명인가?",
			rule:       "developer_count",
			intent:     IntentCount,
			complexity: ComplexitySimple,
		},
		{
			question:   "python 스킬을 가진 개발자는 누구인가?",
			rule:       "skill_based_search",
			intent:     IntentWho,
			complexity: ComplexityMedium,
		},
		{
			question:   "프로젝트 상태는 어떠한가?",
			rule:       "project_status",
			intent:     IntentWhat,
			complexity: ComplexitySimple,
		},
		{
			question:   "몇 개의 스킬이 있나?",
			rule:       "skill_count",
			intent:     IntentCount,
			complexity: ComplexitySimple,
		},
		{
			question:   "개발자들의 협업 관계는?",
			rule:       "collaboration_network",
			intent:     IntentRelationship,
			complexity: ComplexityComplex,
		},
	}

	library := DefaultLibrary()
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			rule, ok := library.Match(tt.question)
			require.True(t, ok)
			assert.Equal(t, tt.rule, rule.Name)
			assert.Equal(t, tt.intent, rule.Intent)
			assert.Equal(t, tt.complexity, rule.Complexity)
		})
	}
}
