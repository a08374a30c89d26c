package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineDriver reads newline-terminated replies from an io.Reader and writes
// prompts to an io.Writer. It is the driver used when stdin is not a
// terminal and the one tests script against.
//
// A LineDriver is not safe for concurrent use.
type LineDriver struct {
	in  *bufio.Reader
	out io.Writer
	// pending holds the read still in flight after a cancelled Input, so
	// the next Input picks up that line instead of racing a second read.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLineDriver wraps in and out.
func NewLineDriver(in io.Reader, out io.Writer) *LineDriver {
	return &LineDriver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Input writes cfg.Message and waits for the next line. It returns
// ctx.Err() as soon as ctx is done, even while the read is blocked.
func (d *LineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Message != "" {
		if _, err := fmt.Fprintln(d.out, cfg.Message); err != nil {
			return "", err
		}
	}

	line, err := d.readLine(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return "", err
		}
		// A final line without terminator still counts as input.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return TrimLineTerminator(line), nil
}

// readLine reads on a separate goroutine so a blocked read does not hold up
// cancellation.
func (d *LineDriver) readLine(ctx context.Context) (string, error) {
	if d.pending == nil {
		ch := make(chan lineResult, 1)
		d.pending = ch
		go func() {
			line, err := d.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-d.pending:
		d.pending = nil
		return res.line, res.err
	}
}

// Info writes msg followed by a newline.
func (d *LineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// TrimLineTerminator removes exactly one trailing "\n" or "\r\n". Other
// whitespace is kept.
func TrimLineTerminator(line string) string {
	line, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	line, _ = strings.CutSuffix(line, "\r")
	return line
}
