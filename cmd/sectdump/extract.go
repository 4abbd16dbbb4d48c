package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maja42/execinfo"
)

func newExtractCmd(logCfg *logConfig) *cobra.Command {
	var (
		section string
		arch    string
		self    bool
		out     string
	)

	cmd := &cobra.Command{
		Use:   "extract [executable]",
		Short: "Write the data of a section to stdout or a file",
		Long: `Extract the raw data of a section from a mach-o executable.

The section is one of:
- info             the embedded Info.plist (__TEXT,__info_plist)
- launchd          the embedded launchd.plist (__TEXT,__launchd_plist)
- <name>           an arbitrary section within __TEXT
- <segment>,<name> an arbitrary section

For fat executables, --arch selects the slice to read from.
With --self, the section is read from the image of sectdump itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logCfg)
			target := execinfo.ParseTarget(section)

			a, err := execinfo.ParseArch(arch)
			if err != nil {
				return errors.Wrap(err, "invalid --arch")
			}
			opts := []execinfo.Option{
				execinfo.WithArch(a),
				execinfo.WithLogger(logger),
			}

			var data []byte
			switch {
			case self && len(args) == 0:
				data, err = execinfo.ReadSelf(target, opts...)
			case !self && len(args) == 1:
				data, err = execinfo.ReadFile(args[0], target, opts...)
			default:
				return errors.New("expected either an executable or --self")
			}
			if err != nil {
				return err
			}
			logger.Info().Stringer("section", target).Int("size", len(data)).Msg("Extracted section")

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return errors.Wrapf(os.WriteFile(out, data, 0644), "write %q", out)
		},
	}

	addTargetFlags(cmd.Flags(), &section, &arch)
	cmd.Flags().BoolVar(&self, "self", false, "Read from the running sectdump process instead of a file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func addTargetFlags(fs *pflag.FlagSet, section, arch *string) {
	fs.StringVarP(section, "section", "s", "info", "Section to extract")
	fs.StringVarP(arch, "arch", "a", "native", "Slice of fat executables: native, any, or an architecture like arm64")
}
