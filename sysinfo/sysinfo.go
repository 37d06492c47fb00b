// Package sysinfo gathers facts about an illumos (OmniOS) machine by running
// the platform's administrative commands and reducing their output to short
// human-readable strings.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultReleaseFile holds the OS release banner on illumos distributions.
const DefaultReleaseFile = "/etc/release"

// Fact is one labeled line of the report.
type Fact struct {
	Label string
	Value string
}

// Facts is the report in display order.
type Facts []Fact

// Collector runs the probes that make up a report.
type Collector struct {
	// Runner executes platform commands
	Runner Runner

	// ReleaseFile is read for the OS line
	ReleaseFile string

	// Now returns the current time; used for uptime
	Now func() time.Time

	// ReadFile reads ReleaseFile
	ReadFile func(name string) ([]byte, error)
}

// NewCollector returns a Collector wired to the real system.
//
// Parameters:
//   - releaseFile: Path of the release banner; empty means DefaultReleaseFile
//
// Returns:
//   - A Collector that executes commands with CommandRunner
func NewCollector(releaseFile string) *Collector {
	if releaseFile == "" {
		releaseFile = DefaultReleaseFile
	}
	return &Collector{
		Runner:      CommandRunner{},
		ReleaseFile: releaseFile,
		Now:         time.Now,
		ReadFile:    os.ReadFile,
	}
}

type probe struct {
	label string
	fn    func(*Collector, context.Context) (string, error)
}

// probes is the fixed report order.
var probes = []probe{
	{"OS", (*Collector).OS},
	{"Kernel", (*Collector).Kernel},
	{"Zonename", (*Collector).Zonename},
	{"Boot Env", (*Collector).BootEnvironment},
	{"CPU", (*Collector).CPU},
	{"Uptime", (*Collector).Uptime},
	{"Memory", (*Collector).Memory},
	{"SMF", (*Collector).SMF},
	{"Zones", (*Collector).Zones},
	{"ZFS", (*Collector).ZFS},
}

// Collect runs every probe in order and stops at the first failure. On error
// no facts are returned.
func (c *Collector) Collect(ctx context.Context) (Facts, error) {
	facts := make(Facts, 0, len(probes))
	for _, p := range probes {
		value, err := p.fn(c, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.label, err)
		}
		facts = append(facts, Fact{Label: p.label, Value: value})
	}
	return facts, nil
}

// Username returns the login name from $USER.
func Username() (string, error) {
	user := os.Getenv("USER")
	if user == "" {
		return "", fmt.Errorf("%w: failed to get user: USER is not set", ErrEnvironment)
	}
	return user, nil
}
