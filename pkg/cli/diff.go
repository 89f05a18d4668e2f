/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kpeletidis/perfplot/pkg/diskstats"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
	"github.com/kpeletidis/perfplot/pkg/header"
	"github.com/kpeletidis/perfplot/pkg/report"
	"github.com/kpeletidis/perfplot/pkg/serializer"
)

func diffCmd() *cli.Command {
	return &cli.Command{
		Name:                  "diff",
		EnableShellCompletion: true,
		Usage:                 "Compare two diskstats snapshots",
		ArgsUsage:             "OLD NEW",
		Description: `Compare the counters of two diskstats snapshots and print, per device and
counter, the old value, the new value and the percentage change. The change
is "-" when the old value is zero.

Devices are paired by their position in the two files. Use --pair-by identity
to pair them by major:minor instead; devices found in only one snapshot are
then listed after the comparison.

# Examples

  cat /proc/diskstats > before.txt; sleep 10; cat /proc/diskstats > after.txt
  diskstats diff before.txt after.txt`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "pair-by",
				Value: string(diskstats.PairByPosition),
				Usage: fmt.Sprintf("How devices of the two snapshots are paired (supported values: %s)",
					strings.Join(diskstats.SupportedPairModes(), ", ")),
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if n := cmd.Args().Len(); n != 2 {
				fmt.Fprintf(errWriter(cmd), "usage: %s diff [options] OLD NEW\n", name)
				return apperrors.New(apperrors.ErrCodeUsage,
					fmt.Sprintf("diff requires exactly 2 snapshot paths, got %d", n))
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			mode := diskstats.PairMode(cmd.String("pair-by"))
			if !mode.IsValid() {
				return apperrors.New(apperrors.ErrCodeUsage,
					fmt.Sprintf("unknown pairing mode: %q", mode))
			}

			oldSnap, err := diskstats.LoadFile(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			newSnap, err := diskstats.LoadFile(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			cmp, err := diskstats.Compare(oldSnap, newSnap, diskstats.WithPairMode(mode))
			if err != nil {
				return err
			}

			r := report.NewDiffReport(cmp)
			if format != serializer.FormatText {
				r.Init(header.KindDiff, version)
			}
			return serializer.NewWriter(format, outWriter(cmd)).Serialize(ctx, r)
		},
	}
}
