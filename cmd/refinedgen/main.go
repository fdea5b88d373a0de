// refinedgen expands the binding table of the gen package into the
// refinement type definitions of the numerics package. It runs at build time
// via go:generate and is not part of the runtime library.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/refined-go/refined/commonerrors"
	"github.com/refined-go/refined/gen"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	output string
	types  []string
	verify bool
	list   bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "refinedgen",
		Short: "generate the refinement type definitions of the numerics package",
		Long: `refinedgen expands each binding of the gen package's table into one
complete refinement type definition. A malformed binding fails the run with
an error naming the binding; nothing is written in that case.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "directory the generated files are written to")
	cmd.Flags().StringSliceVarP(&opts.types, "types", "t", nil, "generate only the named types (default: all)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "write nothing; fail when the committed files differ from the generator output")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the binding table and exit")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

	bindings := gen.Bindings()
	if opts.list {
		for _, b := range bindings {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.TypeName, b.Kind.Primitive())
		}
		return nil
	}

	selected, index, err := selectBindings(bindings, opts.types)
	if err != nil {
		logger.Err(err).Msg("invalid type selection")
		return err
	}

	stale := 0
	for _, b := range selected {
		f, err := gen.Expand(b, index)
		if err != nil {
			logger.Err(err).Str("type", b.TypeName).Msg("expansion failed")
			return err
		}
		path := filepath.Join(opts.output, f.RelativePath)
		if opts.verify {
			existing, err := os.ReadFile(path)
			if err != nil || !bytes.Equal(existing, f.Data) {
				logger.Warn().Str("file", path).Msg("out of date")
				stale++
			}
			continue
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			logger.Err(err).Str("file", path).Msg("write failed")
			return err
		}
		logger.Info().Str("file", path).Int("bytes", len(f.Data)).Msg("generated")
	}
	if stale > 0 {
		err := commonerrors.Newf(commonerrors.ErrStale, "%v generated file(s) differ from the binding table; rerun go generate", stale)
		logger.Err(err).Msg("verification failed")
		return err
	}
	return nil
}

// selectBindings resolves the --types filter against the table, keeping the
// full index so widening targets outside the selection still resolve.
func selectBindings(bindings []gen.Binding, names []string) ([]gen.Binding, map[string]gen.Binding, error) {
	index, err := gen.Index(bindings)
	if err != nil {
		return nil, nil, err
	}
	if len(names) == 0 {
		return bindings, index, nil
	}
	selected := make([]gen.Binding, 0, len(names))
	for _, name := range names {
		b, ok := index[name]
		if !ok {
			return nil, nil, commonerrors.Newf(commonerrors.ErrUndefined, "unknown type %q", name)
		}
		selected = append(selected, b)
	}
	return selected, index, nil
}
