package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/hexsum/hasher"
)

// ErrDigestMismatch is returned by check when a digest did not match.
var ErrDigestMismatch = errors.New("digest mismatch")

func newCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Verify lines of \"<hex-message> <hex-digest>\"",
		Long: `Reads lines of the form "<hex-message> <hex-digest>" and prints
"line N: OK" when the digest matches the message and "line N: FAILED"
otherwise. A line holding only a digest is checked against the empty
message. Exits non-zero if any digest failed to match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatched := 0
			err := o.runStreams(cmd, args, func(p *hasher.Processor, ctx context.Context, r io.Reader, out, errOut io.Writer) (*hasher.Stats, error) {
				stats, err := p.Check(ctx, r, out, errOut)
				if stats != nil {
					mismatched += stats.Mismatched
				}
				return stats, err
			})
			if err != nil {
				return err
			}
			if mismatched > 0 {
				return errors.Wrapf(ErrDigestMismatch, "%d line(s)", mismatched)
			}
			return nil
		},
	}
}
