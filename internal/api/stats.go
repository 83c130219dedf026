package api

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// recentQueryLimit bounds the number of recent queries kept in memory.
const recentQueryLimit = 10

// recentQueryTextLimit bounds the stored length of each query text.
const recentQueryTextLimit = 100

// RecentQuery records one processed question for the stats endpoint.
type RecentQuery struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Type      string    `json:"type"`
}

// StatsSnapshot is the point-in-time view returned by /api/v1/stats.
type StatsSnapshot struct {
	TotalQueries      int64            `json:"total_queries"`
	SuccessfulQueries int64            `json:"successful_queries"`
	FailedQueries     int64            `json:"failed_queries"`
	QueryTypes        map[string]int64 `json:"query_types"`
	RecentQueries     []RecentQuery    `json:"recent_queries"`
	SuccessRate       float64          `json:"success_rate"`
	StartTime         time.Time        `json:"start_time"`
	UptimeSeconds     float64          `json:"uptime_seconds"`
}

// Stats accumulates usage counters across requests. Safe for concurrent use.
type Stats struct {
	total      atomic.Int64
	successful atomic.Int64
	failed     atomic.Int64
	startTime  time.Time

	mu         sync.Mutex
	queryTypes map[string]int64
	recent     []RecentQuery
}

// NewStats creates a stats collector with the clock started now.
func NewStats() *Stats {
	return &Stats{
		startTime:  time.Now(),
		queryTypes: make(map[string]int64),
	}
}

// Record registers one processed question with its classified type.
func (s *Stats) Record(queryType string, success bool, query string) {
	s.total.Add(1)
	if success {
		s.successful.Add(1)
	} else {
		s.failed.Add(1)
	}

	if runes := []rune(query); len(runes) > recentQueryTextLimit {
		query = string(runes[:recentQueryTextLimit])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.queryTypes[queryType]++
	s.recent = append(s.recent, RecentQuery{
		Query:     query,
		Timestamp: time.Now(),
		Success:   success,
		Type:      queryType,
	})
	if len(s.recent) > recentQueryLimit {
		s.recent = s.recent[len(s.recent)-recentQueryLimit:]
	}
}

// Snapshot returns a consistent copy of the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	total := s.total.Load()

	var successRate float64
	if total > 0 {
		successRate = math.Round(float64(s.successful.Load())/float64(total)*10000) / 100
	}

	s.mu.Lock()
	types := make(map[string]int64, len(s.queryTypes))
	for k, v := range s.queryTypes {
		types[k] = v
	}
	recent := make([]RecentQuery, len(s.recent))
	copy(recent, s.recent)
	s.mu.Unlock()

	return StatsSnapshot{
		TotalQueries:      total,
		SuccessfulQueries: s.successful.Load(),
		FailedQueries:     s.failed.Load(),
		QueryTypes:        types,
		RecentQueries:     recent,
		SuccessRate:       successRate,
		StartTime:         s.startTime,
		UptimeSeconds:     time.Since(s.startTime).Seconds(),
	}
}
