package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/hexsum/hasher"
	"massnet.org/hexsum/logging"
)

// ErrUnreadableInput is returned when at least one named input could not
// be opened.
var ErrUnreadableInput = errors.New("some inputs could not be read")

// streamFunc is hasher.Processor.Run or hasher.Processor.Check.
type streamFunc func(p *hasher.Processor, ctx context.Context, r io.Reader, out, errOut io.Writer) (*hasher.Stats, error)

// NewRootCmd builds the hexsum command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [file...]",
		Short: "Print SHA-256 digests of hex-encoded messages",
		Long: `Reads one hex-encoded message per line from each file, or from stdin
when no file or "-" is given, and prints the SHA-256 digest of each
message as 64 lowercase hex digits, one per line, in input order.
Malformed lines are reported on stderr and skipped.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.initConfig(); err != nil {
				return err
			}
			o.initLogger(cmd.ErrOrStderr())
			o.logBasicInfo()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runStreams(cmd, args, (*hasher.Processor).Run)
		},
	}
	o.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCheckCmd(o))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command tree against os.Args. This is called by
// main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.CPrint(logging.ERROR, "hexsum failed", logging.LogFormat{"err": err})
		os.Exit(1)
	}
}

func (o *options) newProcessor() (*hasher.Processor, error) {
	return hasher.New(hasher.Config{
		Workers:      o.config.Hasher.Workers,
		BatchSize:    o.config.Hasher.BatchSize,
		CacheEntries: o.config.Hasher.CacheEntries,
	})
}

// runStreams feeds every input through fn. An input that cannot be
// opened is reported and skipped; the remaining inputs are still read.
func (o *options) runStreams(cmd *cobra.Command, args []string, fn streamFunc) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := o.newProcessor()
	if err != nil {
		return err
	}
	defer p.Close()

	if len(args) == 0 {
		args = []string{"-"}
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	unreadable := 0
	for _, name := range args {
		stats, err := o.runOne(ctx, p, cmd.InOrStdin(), name, out, errOut, fn)
		if os.IsNotExist(errors.Cause(err)) || os.IsPermission(errors.Cause(err)) {
			unreadable++
			fmt.Fprintln(errOut, err)
			continue
		}
		if err != nil {
			return err
		}
		logging.VPrint(logging.DEBUG, "input done", logging.LogFormat{
			"input":   name,
			"lines":   stats.Lines,
			"invalid": stats.Invalid,
		})
	}
	if unreadable > 0 {
		return errors.Wrapf(ErrUnreadableInput, "%d of %d", unreadable, len(args))
	}
	return nil
}

// runOne processes a single input. Reports of malformed lines are
// prefixed with the input name, since line numbers restart per input.
func (o *options) runOne(ctx context.Context, p *hasher.Processor, stdin io.Reader, name string,
	out, errOut io.Writer, fn streamFunc) (*hasher.Stats, error) {
	if name == "-" {
		return fn(p, ctx, stdin, out, newPrefixWriter(errOut, stdinName+": "))
	}
	errOut = newPrefixWriter(errOut, name+": ")
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open input")
	}
	defer f.Close()
	stats, err := fn(p, ctx, f, out, errOut)
	return stats, errors.Wrapf(err, "input %s", name)
}
