// Package sysinfo - Parsing and formatting of illumos command output
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

const secondsPerDay = 60 * 60 * 24

// splitLines splits command output into lines. Empty output has no lines,
// which matters for listings such as `zoneadm list -n` that may print nothing.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// FirstLine returns the first line of a release file, trimmed.
//
// Parameters:
//   - data: Full contents of the release file
//
// Returns:
//   - The trimmed first line
//   - An ErrMissingData error if the file has no lines at all
func FirstLine(data string) (string, error) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: expected at least 1 line", ErrMissingData)
	}
	return strings.TrimSpace(lines[0]), nil
}

// FormatBootEnvironment reduces `beadm list -H` output to the active boot
// environment, noting the one staged for the next reboot when it differs.
//
// Records are `;` separated with the name first and the flags third. The
// record flagged `N` is active now and the one flagged `R` is active on reboot.
// Each flag must appear on exactly one record.
//
// Example: "omnios-r151050" or "omnios-r151050 (staged omnios-r151052)"
func FormatBootEnvironment(output string) (string, error) {
	var next, current string
	var haveNext, haveCurrent bool

	for _, line := range splitLines(output) {
		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			return "", fmt.Errorf("%w: boot environment record %q has %d fields, want at least 3",
				ErrParse, line, len(fields))
		}
		name, flags := fields[0], fields[2]

		if strings.Contains(flags, "R") {
			if haveNext {
				return "", fmt.Errorf("%w: boot environments %q and %q both flagged R",
					ErrInvariant, next, name)
			}
			next, haveNext = name, true
		}
		if strings.Contains(flags, "N") {
			if haveCurrent {
				return "", fmt.Errorf("%w: boot environments %q and %q both flagged N",
					ErrInvariant, current, name)
			}
			current, haveCurrent = name, true
		}
	}

	if !haveNext {
		return "", fmt.Errorf("%w: couldn't find next boot environment", ErrMissingData)
	}
	if !haveCurrent {
		return "", fmt.Errorf("%w: couldn't find current boot environment", ErrMissingData)
	}
	if next == current {
		return current, nil
	}
	return fmt.Sprintf("%s (staged %s)", current, next), nil
}

// FormatCPU counts `kstat -p cpu_info:::brand` lines per brand. Brands are
// listed in the order they are first seen.
//
// Example: "2 x Intel(r) Xeon(r) CPU E5-2620 0 @ 2.00GHz"
func FormatCPU(output string) (string, error) {
	var order []string
	counts := make(map[string]int)

	for _, line := range splitLines(output) {
		_, brand, ok := strings.Cut(line, "\t")
		if !ok {
			return "", fmt.Errorf("%w: kstat line %q has no tab", ErrParse, line)
		}
		if _, seen := counts[brand]; !seen {
			order = append(order, brand)
		}
		counts[brand]++
	}

	brands := make([]string, 0, len(order))
	for _, brand := range order {
		brands = append(brands, fmt.Sprintf("%d x %s", counts[brand], brand))
	}
	return strings.Join(brands, ", "), nil
}

// ParseBootTime extracts the epoch seconds from
// `kstat -p unix:0:system_misc:boot_time` output.
func ParseBootTime(output string) (int64, error) {
	fields := strings.Split(output, "\t")
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: boot_time %q has no value", ErrMissingData, output)
	}
	booted, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: boot_time: %v", ErrParse, err)
	}
	return booted, nil
}

// FormatUptime renders whole days elapsed between booted and now, both in
// epoch seconds. Partial days are dropped.
func FormatUptime(booted, now int64) (string, error) {
	if now < 0 {
		return "", fmt.Errorf("%w: system time %d is before the epoch", ErrClock, now)
	}
	if now < booted {
		return "", fmt.Errorf("%w: system time %d is before boot time %d", ErrClock, now, booted)
	}
	return fmt.Sprintf("up %d days", (now-booted)/secondsPerDay), nil
}

// FormatMemory takes the installed memory summary from `lgrpinfo -m`. The
// value is the text after the first colon of the second line, as printed.
func FormatMemory(output string) (string, error) {
	lines := splitLines(output)
	if len(lines) < 2 {
		return "", fmt.Errorf("%w: lgrpinfo printed %d lines, want at least 2", ErrMissingData, len(lines))
	}
	fields := strings.Split(lines[1], ":")
	if len(fields) < 2 {
		return "", fmt.Errorf("%w: lgrpinfo line %q has no ':'", ErrMissingData, lines[1])
	}
	return strings.TrimSpace(fields[1]), nil
}

// FormatSMF counts services in the online state from `svcs -H -o state`.
func FormatSMF(output string) string {
	online := 0
	for _, state := range splitLines(output) {
		if state == "online" {
			online++
		}
	}
	return fmt.Sprintf("%d svcs online", online)
}

// FormatZones renders running and total zone counts from the two
// `zoneadm list` outputs.
func FormatZones(running, all string) string {
	return fmt.Sprintf("%d running (%d total)", len(splitLines(running)), len(splitLines(all)))
}

// Zpool is one row of `zpool list -Ho name,cap,alloc,size`.
type Zpool struct {
	Name     string
	Capacity string
	Alloc    string
	Size     string
}

// ParseZpools parses whitespace separated zpool rows.
func ParseZpools(output string) ([]Zpool, error) {
	var pools []Zpool
	for _, line := range splitLines(output) {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: zpool line %q has %d columns, want 4", ErrParse, line, len(fields))
		}
		pools = append(pools, Zpool{
			Name:     fields[0],
			Capacity: fields[1],
			Alloc:    fields[2],
			Size:     fields[3],
		})
	}
	return pools, nil
}

// FormatZpools renders each pool as "name alloc/size", comma separated.
//
// Example: "rpool 21.5G/232G, tank 100G/1T"
func FormatZpools(pools []Zpool) string {
	out := make([]string, 0, len(pools))
	for _, p := range pools {
		out = append(out, fmt.Sprintf("%s %s/%s", p.Name, p.Alloc, p.Size))
	}
	return strings.Join(out, ", ")
}
