package cmd

import (
	"bytes"
	"io"
)

// stdinName labels reports for the "-" input.
const stdinName = "stdin"

// prefixWriter writes prefix at the start of every line passed through it.
type prefixWriter struct {
	w       io.Writer
	prefix  []byte
	midLine bool
}

func newPrefixWriter(w io.Writer, prefix string) *prefixWriter {
	return &prefixWriter{w: w, prefix: []byte(prefix)}
}

func (pw *prefixWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		if !pw.midLine {
			if _, err := pw.w.Write(pw.prefix); err != nil {
				return n, err
			}
			pw.midLine = true
		}
		chunk := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
		}
		m, err := pw.w.Write(chunk)
		n += m
		if err != nil {
			return n, err
		}
		if chunk[len(chunk)-1] == '\n' {
			pw.midLine = false
		}
		p = p[len(chunk):]
	}
	return n, nil
}
