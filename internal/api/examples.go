package api

// usageExamples is the static payload served by /api/v1/examples. The
// questions are real patterns the engine classifies, so the endpoint doubles
// as a smoke-test corpus for clients.
var usageExamples = map[string]any{
	"basic_queries": []map[string]string{
		{
			"question":    "가장 최근에 작업한 개발자는 누구인가?",
			"type":        "who",
			"description": "최근 활동한 개발자 조회",
		},
		{
			"question":    "전체 개발자는 몇 명인가?",
			"type":        "count",
			"description": "개발자 수 통계",
		},
		{
			"question":    "Infrastructure Architect AI가 가진 스킬은 무엇인가?",
			"type":        "skill",
			"description": "특정 개발자의 스킬 조회",
		},
		{
			"question":    "프로젝트 상태는 어떠한가?",
			"type":        "what",
			"description": "프로젝트 현황 조회",
		},
	},
	"api_usage": map[string]any{
		"single_query": map[string]any{
			"url":    "/api/v1/query",
			"method": "POST",
			"body": map[string]string{
				"query": "가장 최근에 작업한 개발자는 누구인가?",
			},
		},
		"batch_query": map[string]any{
			"url":    "/api/v1/query/batch",
			"method": "POST",
			"body": map[string]any{
				"queries": []string{
					"몇 명의 개발자가 있는가?",
					"프로젝트 상태는 어떠한가?",
				},
			},
		},
	},
	"response_format": map[string]any{
		"success":      true,
		"message":      "요약 메시지",
		"data":         []string{"결과 데이터 배열"},
		"result_count": 1,
		"query_analysis": map[string]string{
			"original_query": "원본 질문",
			"type":           "질의 타입",
			"complexity":     "복잡도",
			"intent":         "의도 분석",
		},
	},
}
