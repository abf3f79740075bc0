// Package hasher turns a stream of hex-encoded messages, one per line,
// into a stream of SHA-256 digests in the same order.
//
// Each message is hashed independently, so the lines of a batch are
// spread over a worker pool. Digests are written back by line index,
// which keeps the output order equal to the input order.
package hasher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"
	"massnet.org/hexsum/crypto/sha256"
	"massnet.org/hexsum/hexcodec"
	"massnet.org/hexsum/logging"
)

// maxCachedMessage is the largest message kept in the digest memo.
const maxCachedMessage = 4096

var (
	ErrInvalidWorkers   = errors.New("workers must be positive")
	ErrInvalidBatchSize = errors.New("batch size must be positive")
	ErrInvalidCheckLine = errors.New("expected <hex-message> <hex-digest>")
	ErrProcessorClosed  = errors.New("processor is closed")
)

// Config controls a Processor.
type Config struct {
	Workers      int
	BatchSize    int
	CacheEntries int
}

// Stats summarizes one Run or Check.
type Stats struct {
	Lines     int
	Hashed    int
	Invalid   int
	CacheHits int
	// Mismatched counts Check lines whose digest did not match.
	Mismatched int
}

// Processor hashes line streams. It is safe to use from one goroutine
// at a time; the worker pool is shared by successive runs.
type Processor struct {
	cfg   Config
	pool  *ants.Pool
	cache *digestCache

	mu     sync.Mutex
	closed bool
}

// job is one input line and its result.
type job struct {
	lineNo int
	msg    []byte
	want   sha256.Hash
	sum    sha256.Hash
	err    error
	cached bool
	// check marks jobs that carry an expected digest.
	check bool
}

// New creates a Processor with a pool of cfg.Workers goroutines.
func New(cfg Config) (*Processor, error) {
	if cfg.Workers <= 0 {
		return nil, errors.Wrapf(ErrInvalidWorkers, "got %d", cfg.Workers)
	}
	if cfg.BatchSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidBatchSize, "got %d", cfg.BatchSize)
	}
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	logging.VPrint(logging.DEBUG, "hasher created", logging.LogFormat{
		"workers": cfg.Workers,
		"batch":   cfg.BatchSize,
		"cache":   cfg.CacheEntries,
	})
	return &Processor{
		cfg:   cfg,
		pool:  pool,
		cache: newDigestCache(cfg.CacheEntries, maxCachedMessage),
	}, nil
}

// Close releases the worker pool. Calling Close twice is a no-op.
func (p *Processor) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.pool.Release()
	p.cache.Clear()
}

// Run reads hex messages from r until EOF and writes one digest line to
// out for every well-formed line. Malformed lines are reported to errOut
// and skipped. Only read/write failures and ctx cancellation stop a run
// early.
func (p *Processor) Run(ctx context.Context, r io.Reader, out, errOut io.Writer) (*Stats, error) {
	return p.process(ctx, r, out, errOut, decodeMessage, func(w io.Writer, j *job) error {
		_, err := fmt.Fprintln(w, hexcodec.EncodeDigest(j.sum))
		return err
	})
}

// Check reads lines of the form "<hex-message> <hex-digest>" and writes
// "line N: OK" or "line N: FAILED" for each. A line holding only a
// digest checks the empty message.
func (p *Processor) Check(ctx context.Context, r io.Reader, out, errOut io.Writer) (*Stats, error) {
	return p.process(ctx, r, out, errOut, decodeCheck, func(w io.Writer, j *job) error {
		status := "OK"
		if j.sum != j.want {
			status = "FAILED"
		}
		_, err := fmt.Fprintf(w, "line %d: %s\n", j.lineNo, status)
		return err
	})
}

func decodeMessage(lineNo int, line string) *job {
	msg, err := hexcodec.DecodeLine(lineNo, line)
	return &job{lineNo: lineNo, msg: msg, err: err}
}

func decodeCheck(lineNo int, line string) *job {
	j := &job{lineNo: lineNo, check: true}
	fields := strings.Fields(hexcodec.TrimLine(line))
	var msgHex, digestHex string
	switch len(fields) {
	case 1:
		digestHex = fields[0]
	case 2:
		msgHex, digestHex = fields[0], fields[1]
	default:
		j.err = &hexcodec.InvalidInputEncodingError{
			Line: lineNo,
			Err:  errors.Wrapf(ErrInvalidCheckLine, "got %d fields", len(fields)),
		}
		return j
	}
	if j.msg, j.err = hexcodec.DecodeLine(lineNo, msgHex); j.err != nil {
		return j
	}
	j.want, j.err = hexcodec.DecodeDigest(lineNo, digestHex)
	return j
}

func (p *Processor) process(ctx context.Context, r io.Reader, out, errOut io.Writer,
	decode func(int, string) *job, emit func(io.Writer, *job) error) (*Stats, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrProcessorClosed
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(out)
	stats := &Stats{}
	lineNo := 0

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		jobs, eof, err := readBatch(br, p.cfg.BatchSize, &lineNo, decode)
		if err != nil {
			return stats, errors.Wrapf(err, "read line %d", lineNo+1)
		}
		if err = p.hashAll(jobs); err != nil {
			return stats, err
		}
		for _, j := range jobs {
			stats.Lines++
			if j.err != nil {
				stats.Invalid++
				logging.VPrint(logging.WARN, "skip invalid line", logging.LogFormat{"line": j.lineNo, "err": j.err})
				if _, err = fmt.Fprintln(errOut, j.err); err != nil {
					return stats, errors.Wrap(err, "report invalid line")
				}
				continue
			}
			stats.Hashed++
			if j.cached {
				stats.CacheHits++
			}
			if j.check && j.sum != j.want {
				stats.Mismatched++
			}
			if err = emit(bw, j); err != nil {
				return stats, errors.Wrap(err, "write digest")
			}
		}
		if err = bw.Flush(); err != nil {
			return stats, errors.Wrap(err, "flush output")
		}
		if eof {
			break
		}
	}

	logging.VPrint(logging.DEBUG, "stream done", logging.LogFormat{
		"lines":      stats.Lines,
		"hashed":     stats.Hashed,
		"invalid":    stats.Invalid,
		"cache_hits": stats.CacheHits,
		"mismatched": stats.Mismatched,
	})
	return stats, nil
}

// readBatch reads at most limit lines, stopping early once the reader's
// buffer runs dry so interactive input is answered line by line.
func readBatch(br *bufio.Reader, limit int, lineNo *int, decode func(int, string) *job) ([]*job, bool, error) {
	var jobs []*job
	for len(jobs) < limit {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return jobs, false, err
		}
		if err == io.EOF && line == "" {
			return jobs, true, nil
		}
		*lineNo++
		jobs = append(jobs, decode(*lineNo, line))
		if err == io.EOF {
			return jobs, true, nil
		}
		if br.Buffered() == 0 {
			break
		}
	}
	return jobs, false, nil
}

// hashAll fills in j.sum for every decodable job, from the memo when
// possible and on the worker pool otherwise.
func (p *Processor) hashAll(jobs []*job) error {
	var (
		wg        sync.WaitGroup
		submitErr error
	)
	for _, j := range jobs {
		if j.err != nil {
			continue
		}
		if sum, ok := p.cache.Get(j.msg); ok {
			j.sum, j.cached = sum, true
			continue
		}
		j := j
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			j.sum = sha256.Sum256(j.msg)
		}); err != nil {
			wg.Done()
			submitErr = errors.Wrap(err, "submit hash task")
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return submitErr
	}
	for _, j := range jobs {
		if j.err == nil && !j.cached {
			p.cache.Add(j.msg, j.sum)
		}
	}
	return nil
}
