package engine

import (
	"fmt"
	"strings"
	"time"
)

// noResultsMessage is the fixed summary used when a query returns zero rows.
const noResultsMessage = "질문에 대한 결과를 찾을 수 없습니다."

// Answer is the user-facing result of the pipeline: a success flag, a
// natural-language summary, normalized records, and an echo of the analysis.
type Answer struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Data        []map[string]any `json:"data"`
	ResultCount int              `json:"result_count"`
	Analysis    Analysis         `json:"query_analysis"`
	Timestamp   time.Time        `json:"timestamp"`
	Error       string           `json:"error,omitempty"`
	Debug       *DebugInfo       `json:"debug,omitempty"`
}

// DebugInfo carries the generated query for troubleshooting.
type DebugInfo struct {
	GeneratedCypher string `json:"generated_cypher"`
	RawResultCount  int    `json:"raw_results_count"`
}

// Formatter reshapes raw result rows into a typed Answer. Row projection
// and summary generation are pure functions of (intent, rows).
type Formatter struct{}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format produces the Answer for an analysis and its raw result rows.
// Empty rows yield a failed answer with the fixed no-results message;
// this is the expected outcome for unmatched data, not an error.
func (f *Formatter) Format(analysis Analysis, rows []map[string]any) Answer {
	if len(rows) == 0 {
		return Answer{
			Success:   false,
			Message:   noResultsMessage,
			Data:      []map[string]any{},
			Analysis:  analysis,
			Timestamp: time.Now(),
		}
	}

	data := projectRows(analysis.Intent, rows)

	return Answer{
		Success:     true,
		Message:     summarize(analysis, data),
		Data:        data,
		ResultCount: len(rows),
		Analysis:    analysis,
		Timestamp:   time.Now(),
	}
}

// projectRows selects the row projection for the intent. WHO, COUNT, and
// SKILL answers get a fixed record shape; every other intent passes rows
// through unchanged.
func projectRows(intent Intent, rows []map[string]any) []map[string]any {
	switch intent {
	case IntentWho:
		return projectWho(rows)
	case IntentCount:
		return projectCount(rows)
	case IntentSkill:
		return projectSkill(rows)
	case IntentWhat, IntentWhen, IntentWhere, IntentHow, IntentWhy,
		IntentRecent, IntentRelationship, IntentUnknown:
		return rows
	default:
		return rows
	}
}

func projectWho(rows []map[string]any) []map[string]any {
	projected := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		name := stringField(row, "developer")
		if name == "" {
			name = stringField(row, "name")
		}
		projected = append(projected, map[string]any{
			"name":           defaultString(name, "Unknown"),
			"role":           defaultString(stringField(row, "role"), "Unknown"),
			"last_activity":  defaultAny(row["last_activity"], "Unknown"),
			"activity_count": intField(row, "activity_count"),
		})
	}
	return projected
}

func projectCount(rows []map[string]any) []map[string]any {
	projected := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		category := stringField(row, "category")
		if category == "" {
			category = stringField(row, "type")
		}
		count := intField(row, "count")
		if count == 0 {
			count = intField(row, "skill_count")
		}
		if count == 0 {
			count = intField(row, "developer_count")
		}
		projected = append(projected, map[string]any{
			"category": defaultString(category, "Unknown"),
			"count":    count,
		})
	}
	return projected
}

func projectSkill(rows []map[string]any) []map[string]any {
	projected := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		projected = append(projected, map[string]any{
			"skill":       defaultString(stringField(row, "skill"), "Unknown"),
			"category":    defaultString(stringField(row, "category"), "Unknown"),
			"level":       defaultAny(row["level"], "Unknown"),
			"proficiency": floatField(row, "proficiency"),
		})
	}
	return projected
}

// summarize generates the intent-specific summary sentence from the
// projected rows.
func summarize(analysis Analysis, data []map[string]any) string {
	count := len(data)

	switch analysis.Intent {
	case IntentWho:
		if strings.Contains(analysis.OriginalQuery, "최근") {
			top := data[0]
			return fmt.Sprintf("가장 최근에 활동한 개발자는 %v입니다. (활동 수: %d)",
				top["name"], intField(top, "activity_count"))
		}
		return fmt.Sprintf("%d명의 개발자 정보를 찾았습니다.", count)

	case IntentCount:
		total := 0
		for _, row := range data {
			total += intField(row, "count")
		}
		return fmt.Sprintf("총 %d개의 항목이 있으며, %d개 카테고리로 분류됩니다.", total, count)

	case IntentSkill:
		sum := 0.0
		for _, row := range data {
			sum += floatField(row, "proficiency")
		}
		avg := sum / float64(count)
		return fmt.Sprintf("%d개의 스킬을 찾았으며, 평균 숙련도는 %.1f%%입니다.", count, avg)
	}

	return fmt.Sprintf("%d개의 결과를 찾았습니다.", count)
}

func stringField(row map[string]any, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func defaultAny(v any, fallback any) any {
	if v == nil {
		return fallback
	}
	return v
}

// intField coerces the numeric types the driver may return to int.
func intField(row map[string]any, key string) int {
	switch v := row[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// floatField coerces the numeric types the driver may return to float64.
func floatField(row map[string]any, key string) float64 {
	switch v := row[key].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
