// Package hexcodec converts input lines to messages and digests to
// output lines.
package hexcodec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"massnet.org/hexsum/crypto/sha256"
)

// InvalidInputEncodingError reports a line that is not an even-length
// string of hex digits.
type InvalidInputEncodingError struct {
	Line int
	Err  error
}

func (e *InvalidInputEncodingError) Error() string {
	return fmt.Sprintf("line %d: invalid input encoding: %v", e.Line, e.Err)
}

// Cause returns the underlying decode error.
func (e *InvalidInputEncodingError) Cause() error {
	return e.Err
}

// IsInvalidInputEncoding reports whether err, or anything it wraps via
// errors.Wrap, is an *InvalidInputEncodingError.
func IsInvalidInputEncoding(err error) bool {
	for err != nil {
		if _, ok := err.(*InvalidInputEncodingError); ok {
			return true
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// TrimLine drops the line terminator, "\n" or "\r\n".
func TrimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// DecodeLine decodes one line of hex text. lineNo is 1-based and only
// used for error reporting.
func DecodeLine(lineNo int, line string) ([]byte, error) {
	msg, err := hex.DecodeString(TrimLine(line))
	if err != nil {
		return nil, &InvalidInputEncodingError{Line: lineNo, Err: err}
	}
	return msg, nil
}

// EncodeDigest renders h as 64 lowercase hex digits, eight per word,
// most significant word first.
func EncodeDigest(h sha256.Hash) string {
	var b strings.Builder
	b.Grow(2 * sha256.Size)
	for _, w := range h.Words() {
		fmt.Fprintf(&b, "%08x", w)
	}
	return b.String()
}

// DecodeDigest parses a rendered digest back into a Hash.
func DecodeDigest(lineNo int, s string) (sha256.Hash, error) {
	h, err := sha256.DecodeStringToHash(strings.ToLower(s))
	if err != nil {
		return sha256.Hash{}, &InvalidInputEncodingError{Line: lineNo, Err: errors.Wrap(err, "digest")}
	}
	return h, nil
}
