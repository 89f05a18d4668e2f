// Package cli implements the command-line interface of the diskstats tool.
//
// # Overview
//
// The diskstats CLI decodes the per-device I/O counters the Linux kernel
// exposes in /proc/diskstats and compares two saved snapshots of them.
//
// # Commands
//
// show - Print named counters:
//
//	diskstats show [--input PATH] [--format text|json|yaml] [DEVICE...]
//
// Reads /proc/diskstats (or PATH) and prints, per device, an identity line
// "name (major, minor)", one "label<TAB>value" line per counter and a blank
// line. Naming devices restricts the output to them.
//
// diff - Compare two snapshots:
//
//	diskstats diff [--pair-by position|identity] [--format text|json|yaml] OLD NEW
//
// Pairs the devices of OLD and NEW and prints, per counter, both values and
// the percentage change rounded to two decimals, or "-" when the old value
// is zero.
//
// # Global Flags
//
//	--log-level       Log level: debug, info, warn, error (env LOG_LEVEL)
//	--metrics-file    Write Prometheus metrics on exit (env DISKSTATS_METRICS_FILE)
//	--help, -h        Show command help
//	--version, -v     Show version information
//
// # Exit Codes
//
//	0  success
//	1  usage, I/O or format error
//	2  interrupted by SIGINT/SIGTERM
//
// # Version Information
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/kpeletidis/perfplot/pkg/cli.version=v1.0.0' \
//	  -X 'github.com/kpeletidis/perfplot/pkg/cli.commit=abc123' \
//	  -X 'github.com/kpeletidis/perfplot/pkg/cli.date=2025-01-01'"
package cli
