/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
	"github.com/kpeletidis/perfplot/pkg/serializer"
)

// formatFlag returns a new output format flag. Flags hold parse state, so
// every command gets its own.
func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatText),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns the validated value of the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeUsage,
			fmt.Sprintf("unknown output format: %q", format),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return format, nil
}

// outWriter returns the writer command output goes to.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// errWriter returns the writer usage messages go to.
func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
