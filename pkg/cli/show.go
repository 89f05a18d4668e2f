/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/kpeletidis/perfplot/pkg/defaults"
	"github.com/kpeletidis/perfplot/pkg/diskstats"
	"github.com/kpeletidis/perfplot/pkg/header"
	"github.com/kpeletidis/perfplot/pkg/report"
	"github.com/kpeletidis/perfplot/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Print the named I/O counters of block devices",
		ArgsUsage:             "[DEVICE...]",
		Description: `Print the I/O counters of every device in a diskstats snapshot, one
labeled counter per line. Name one or more devices to restrict the output.

# Examples

All devices of the running system:
  diskstats show

Selected devices from a saved snapshot, as JSON:
  diskstats show --input before.txt --format json sda nvme0n1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to the diskstats snapshot to read",
				Value:   defaults.DiskstatsPath,
				Sources: cli.EnvVars(envInput),
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			snap, err := diskstats.LoadFile(cmd.String("input"))
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			f := report.NewFormatter(report.WithDevices(cmd.Args().Slice()...))

			// Text is written record by record so devices before a bad
			// record are still printed.
			if format == serializer.FormatText {
				out := outWriter(cmd)
				for _, rec := range snap.Records {
					if err := f.WriteRecord(out, rec); err != nil {
						return err
					}
				}
				return nil
			}

			r, err := f.Snapshot(snap)
			if err != nil {
				return err
			}
			r.Init(header.KindSnapshot, version)
			return serializer.NewWriter(format, outWriter(cmd)).Serialize(ctx, r)
		},
	}
}
