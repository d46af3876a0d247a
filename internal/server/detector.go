package server

import (
	"log/slog"
	"sync"
	"time"
)

// ipCounter counts events per client IP inside a fixed window
type ipCounter struct {
	counts map[string]int
}

func newIPCounter() ipCounter {
	return ipCounter{counts: make(map[string]int)}
}

func (c ipCounter) add(ip string) int {
	c.counts[ip]++
	return c.counts[ip]
}

// SuspiciousActivityDetector tracks failed logins and request volume per IP.
// Both counters reset together every DetectorWindow.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	failedAuth  ipCounter
	requests    ipCounter
	windowStart time.Time
	now         func() time.Time
}

// NewSuspiciousActivityDetector creates a detector with an empty window
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth:  newIPCounter(),
		requests:    newIPCounter(),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// RecordFailedAuth counts a rejected token and alerts once the threshold is reached
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	if n := s.failedAuth.add(ip); n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and reports whether the caller is still under the rate limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	n := s.requests.add(ip)
	if n <= RequestRateLimit {
		return true
	}
	if n%RateAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// counts returns the failed-auth and request totals for ip in the current window
func (s *SuspiciousActivityDetector) counts(ip string) (failed, requests int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAuth.counts[ip], s.requests.counts[ip]
}

// rollWindow starts a new window when the current one has expired.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) rollWindow() {
	now := s.now()
	if now.Sub(s.windowStart) <= DetectorWindow {
		return
	}
	s.failedAuth = newIPCounter()
	s.requests = newIPCounter()
	s.windowStart = now
}
