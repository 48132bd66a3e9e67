package main

import (
	"log"
	"time"
)

// Stats tracks counters for a single conversion run
type Stats struct {
	lines        int
	extracted    int
	duplicates   int
	ignored      int
	needsReview  int
	inconsistent int
	startTime    time.Time
}

// NewStats creates a new statistics tracker
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// IncrementExtracted increments the extracted domain count
func (s *Stats) IncrementExtracted() {
	s.extracted++
}

// IncrementDuplicates increments the duplicate domain count
func (s *Stats) IncrementDuplicates() {
	s.duplicates++
}

// IncrementIgnored increments the discarded line count
func (s *Stats) IncrementIgnored() {
	s.ignored++
}

// IncrementNeedsReview increments the manual-review rule count
func (s *Stats) IncrementNeedsReview() {
	s.needsReview++
}

// IncrementInconsistent increments the extraction-failure count
func (s *Stats) IncrementInconsistent() {
	s.inconsistent++
}

// PrintSummary logs the final statistics for the run
func (s *Stats) PrintSummary(logger *log.Logger, total int) {
	elapsed := time.Since(s.startTime)

	logger.Printf("Parsed %d lines in %v", s.lines, elapsed.Round(time.Millisecond))
	logger.Printf("  Extracted domains:   %d (%d duplicates)", s.extracted, s.duplicates)
	logger.Printf("  Discarded lines:     %d", s.ignored)
	if s.needsReview > 0 {
		logger.Printf("  Need manual review:  %d", s.needsReview)
	}
	if s.inconsistent > 0 {
		logger.Printf("  Extraction failures: %d", s.inconsistent)
	}
	logger.Printf("Output domains: %d", total)
}
