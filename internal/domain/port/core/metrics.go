package core

import "time"

// Load outcomes reported to Metrics.ObserveLoad
const (
	LoadOutcomeSuccess   = "success"
	LoadOutcomeFailure   = "failure"
	LoadOutcomeDiscarded = "discarded"
)

// Metrics records operational counters for the profile service
type Metrics interface {
	// ObserveLoad records one finished profile load cycle
	ObserveLoad(outcome string, duration time.Duration)
	// ObserveDeposit records one add-funds attempt ("credited", "replayed", "failed", "rejected")
	ObserveDeposit(outcome string)
	// ObserveLogoProbe records one logo lookup ("hit", "found", "missing", "error")
	ObserveLogoProbe(result string)
	// ObservePublish records one event publish attempt ("ok", "failed")
	ObservePublish(result string)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) ObserveLoad(string, time.Duration) {}
func (NoopMetrics) ObserveDeposit(string)             {}
func (NoopMetrics) ObserveLogoProbe(string)           {}
func (NoopMetrics) ObservePublish(string)             {}
