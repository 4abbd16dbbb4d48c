package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/maja42/execinfo"
)

func newArchsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archs <executable>",
		Short: "List the 64-bit architectures of an executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read executable %q", args[0])
			}
			cpus, err := execinfo.Architectures(data)
			if err != nil {
				return err
			}
			for _, cpu := range cpus {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%#x\n", cpu, uint32(cpu))
			}
			return nil
		},
	}
}
