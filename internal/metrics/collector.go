// SAGE - Secure Agent Guarantee Engine
// Copyright (C) 2025 SAGE-X-project
//
// This file is part of SAGE.
//
// SAGE is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAGE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with SAGE. If not, see <https://www.gnu.org/licenses/>.

package metrics

import (
	"sync"
	"time"
)

// Collector collects metrics for frame parsing, building, and envelope
// sealing/opening operations.
type Collector struct {
	mu sync.RWMutex

	// Counters
	ParseSuccess  int64
	ParseFailure  int64
	BuildSuccess  int64
	BuildFailure  int64
	SealSuccess   int64
	SealFailure   int64
	OpenSuccess   int64
	OpenFailure   int64

	// Timing metrics (in microseconds)
	ParseTimes []int64
	BuildTimes []int64
	SealTimes  []int64
	OpenTimes  []int64

	// Start time for uptime calculation
	startTime time.Time

	// Configuration
	maxTimingSamples int
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime:        time.Now(),
		maxTimingSamples: 1000, // Keep last 1000 samples for each timing metric
	}
}

// RecordParse records a plaintext frame parse operation.
func (c *Collector) RecordParse(success bool, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if success {
		c.ParseSuccess++
	} else {
		c.ParseFailure++
	}
	c.recordTiming(&c.ParseTimes, duration)
}

// RecordBuild records a plaintext frame build operation.
func (c *Collector) RecordBuild(success bool, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if success {
		c.BuildSuccess++
	} else {
		c.BuildFailure++
	}
	c.recordTiming(&c.BuildTimes, duration)
}

// RecordSeal records an envelope seal operation.
func (c *Collector) RecordSeal(success bool, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if success {
		c.SealSuccess++
	} else {
		c.SealFailure++
	}
	c.recordTiming(&c.SealTimes, duration)
}

// RecordOpen records an envelope open operation.
func (c *Collector) RecordOpen(success bool, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if success {
		c.OpenSuccess++
	} else {
		c.OpenFailure++
	}
	c.recordTiming(&c.OpenTimes, duration)
}

// recordTiming records a timing sample, keeping only the most recent
// maxTimingSamples entries.
func (c *Collector) recordTiming(timings *[]int64, duration time.Duration) {
	microseconds := duration.Microseconds()
	*timings = append(*timings, microseconds)

	if len(*timings) > c.maxTimingSamples {
		*timings = (*timings)[len(*timings)-c.maxTimingSamples:]
	}
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Snapshot{
		Timestamp:      time.Now(),
		Uptime:         time.Since(c.startTime),
		ParseSuccess:   c.ParseSuccess,
		ParseFailure:   c.ParseFailure,
		BuildSuccess:   c.BuildSuccess,
		BuildFailure:   c.BuildFailure,
		SealSuccess:    c.SealSuccess,
		SealFailure:    c.SealFailure,
		OpenSuccess:    c.OpenSuccess,
		OpenFailure:    c.OpenFailure,
		AvgParseTime:   calculateAverage(c.ParseTimes),
		AvgBuildTime:   calculateAverage(c.BuildTimes),
		AvgSealTime:    calculateAverage(c.SealTimes),
		AvgOpenTime:    calculateAverage(c.OpenTimes),
		P95ParseTime:   calculatePercentile(c.ParseTimes, 95),
		P95BuildTime:   calculatePercentile(c.BuildTimes, 95),
		P95SealTime:    calculatePercentile(c.SealTimes, 95),
		P95OpenTime:    calculatePercentile(c.OpenTimes, 95),
	}
}

// Reset clears all metrics and restarts the uptime clock.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ParseSuccess = 0
	c.ParseFailure = 0
	c.BuildSuccess = 0
	c.BuildFailure = 0
	c.SealSuccess = 0
	c.SealFailure = 0
	c.OpenSuccess = 0
	c.OpenFailure = 0

	c.ParseTimes = nil
	c.BuildTimes = nil
	c.SealTimes = nil
	c.OpenTimes = nil

	c.startTime = time.Now()
}

// Snapshot represents a point-in-time snapshot of metrics.
type Snapshot struct {
	Timestamp time.Time
	Uptime    time.Duration

	// Counters
	ParseSuccess int64
	ParseFailure int64
	BuildSuccess int64
	BuildFailure int64
	SealSuccess  int64
	SealFailure  int64
	OpenSuccess  int64
	OpenFailure  int64

	// Timing averages (microseconds)
	AvgParseTime float64
	AvgBuildTime float64
	AvgSealTime  float64
	AvgOpenTime  float64

	// 95th percentile timings (microseconds)
	P95ParseTime int64
	P95BuildTime int64
	P95SealTime  int64
	P95OpenTime  int64
}

// ParseErrorRate returns the fraction of parse operations that failed, as
// a percentage.
func (s *Snapshot) ParseErrorRate() float64 {
	total := s.ParseSuccess + s.ParseFailure
	if total == 0 {
		return 0
	}
	return float64(s.ParseFailure) / float64(total) * 100
}

// OpenErrorRate returns the fraction of envelope-open operations that
// failed, as a percentage. A rising rate can indicate a key mismatch or
// an attacker probing with tampered envelopes.
func (s *Snapshot) OpenErrorRate() float64 {
	total := s.OpenSuccess + s.OpenFailure
	if total == 0 {
		return 0
	}
	return float64(s.OpenFailure) / float64(total) * 100
}

// Helper functions

func calculateAverage(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func calculatePercentile(values []int64, percentile int) int64 {
	if len(values) == 0 {
		return 0
	}

	// Simple implementation - for production, use a proper percentile algorithm
	// This is an approximation
	index := len(values) * percentile / 100
	if index >= len(values) {
		index = len(values) - 1
	}

	// Create a copy and sort (simple bubble sort for small datasets)
	sorted := make([]int64, len(values))
	copy(sorted, values)

	for i := 0; i < len(sorted)-1; i++ {
		for j := 0; j < len(sorted)-i-1; j++ {
			if sorted[j] > sorted[j+1] {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}

	return sorted[index]
}

// Global metrics collector instance
var globalCollector = NewCollector()

// GetGlobalCollector returns the global metrics collector.
func GetGlobalCollector() *Collector {
	return globalCollector
}
