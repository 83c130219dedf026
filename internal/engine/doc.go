// Package engine translates natural-language questions into parameterized
// Cypher queries and renders the raw result rows into user-facing answers.
//
// The pipeline is strictly linear:
//
//	question text → Analyzer → Generator → graph execution → Formatter → Answer
//
// # Components
//
// Library: an ordered, immutable catalog of pattern rules, each mapping a
// detection regexp to an intent, a complexity, and a Cypher template.
// Detection is first-match-wins, so rule order is a semantic contract.
//
// Analyzer: classifies a question against the library and extracts actor
// aliases, skill terms, keywords, and a temporal constraint.
//
// Generator: selects the matching rule's template (or a per-intent
// fallback), fills placeholders from a deterministically built parameter
// map, and applies the extracted time constraint as a Cypher filter.
//
// Formatter: reshapes raw rows per intent (who/count/skill projections)
// and produces an intent-specific summary sentence.
//
// Engine wires the four together over a graph.Client. All shared structures
// are read-only after construction; every call gets a fresh Analysis and
// Answer, so the engine is safe for unlimited concurrent callers.
package engine
