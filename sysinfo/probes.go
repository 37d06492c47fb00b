package sysinfo

import (
	"context"
	"fmt"
)

// OS returns the first line of the release file.
func (c *Collector) OS(_ context.Context) (string, error) {
	data, err := c.ReadFile(c.ReleaseFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	return FirstLine(string(data))
}

// Kernel returns the kernel version string, e.g. "omnios-r151050-1b9a1c6e5c".
func (c *Collector) Kernel(ctx context.Context) (string, error) {
	return RunString(ctx, c.Runner, "uname -v")
}

// Zonename returns the name of the zone this process runs in.
func (c *Collector) Zonename(ctx context.Context) (string, error) {
	return RunString(ctx, c.Runner, "zonename")
}

// BootEnvironment returns the active boot environment.
func (c *Collector) BootEnvironment(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "beadm list -H")
	if err != nil {
		return "", err
	}
	return FormatBootEnvironment(out)
}

func (c *Collector) CPU(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "kstat -p cpu_info:::brand")
	if err != nil {
		return "", err
	}
	return FormatCPU(out)
}

// Uptime returns whole days since boot.
func (c *Collector) Uptime(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "kstat -p unix:0:system_misc:boot_time")
	if err != nil {
		return "", err
	}
	booted, err := ParseBootTime(out)
	if err != nil {
		return "", err
	}
	return FormatUptime(booted, c.Now().Unix())
}

func (c *Collector) Memory(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "lgrpinfo -m")
	if err != nil {
		return "", err
	}
	return FormatMemory(out)
}

// SMF returns the number of online services.
func (c *Collector) SMF(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "svcs -H -o state")
	if err != nil {
		return "", err
	}
	return FormatSMF(out), nil
}

// Zones returns running and configured zone counts.
func (c *Collector) Zones(ctx context.Context) (string, error) {
	running, err := RunString(ctx, c.Runner, "zoneadm list -n")
	if err != nil {
		return "", err
	}
	all, err := RunString(ctx, c.Runner, "zoneadm list -cn")
	if err != nil {
		return "", err
	}
	return FormatZones(running, all), nil
}

// ZFS returns allocation per pool.
func (c *Collector) ZFS(ctx context.Context) (string, error) {
	out, err := RunString(ctx, c.Runner, "zpool list -Ho name,cap,alloc,size")
	if err != nil {
		return "", err
	}
	pools, err := ParseZpools(out)
	if err != nil {
		return "", err
	}
	return FormatZpools(pools), nil
}
