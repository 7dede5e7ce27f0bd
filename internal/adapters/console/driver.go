// Package console implements an interactive driver that walks an operator
// through submitting each number to the chat-search interface by hand.
//
// The driver owns every human-in-the-loop checkpoint: session setup (QR
// scan, navigating to the target group), per-item pacing, and the
// continuation prompt between batches. The application core only supplies
// numbers and batch boundaries.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/uno-labs/waroster/internal/domain"
	"github.com/uno-labs/waroster/pkg/log"
)

// Driver implements ports.Driver over an interactive terminal session.
type Driver struct {
	in     *bufio.Reader
	out    io.Writer
	delay  time.Duration
	logger log.Logger

	item int
}

// Option configures a Driver.
type Option func(*Driver)

// WithIO overrides the prompt input and output streams. Used in tests.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(d *Driver) {
		d.in = bufio.NewReader(in)
		d.out = out
	}
}

// WithSubmitDelay sets the pause after each submitted number.
func WithSubmitDelay(delay time.Duration) Option {
	return func(d *Driver) {
		d.delay = delay
	}
}

// New creates an interactive driver on stdin/stdout.
func New(logger log.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	d := &Driver{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		delay:  time.Second,
		logger: logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start walks the operator through session setup.
func (d *Driver) Start(ctx context.Context) error {
	fmt.Fprintln(d.out, "=== WhatsApp Web Setup ===")
	if err := d.checkpoint(ctx, "1. Scan the QR code and press Enter to continue..."); err != nil {
		return err
	}
	return d.checkpoint(ctx, "2. Navigate to your target group and press Enter to start...")
}

// BeginBatch announces the batch and resets the item counter.
func (d *Driver) BeginBatch(ctx context.Context, batch domain.Batch) error {
	d.item = 0
	fmt.Fprintf(d.out, "\n=== Processing Batch %d/%d (%d numbers) ===\n", batch.Index, batch.Total, batch.Size())
	return nil
}

// Submit shows the next number for the operator to enter into the search
// box, then pauses so the interface keeps up.
func (d *Driver) Submit(ctx context.Context, number domain.Number) error {
	d.item++
	fmt.Fprintf(d.out, "%d: %s\n", d.item, number)
	return sleep(ctx, d.delay)
}

// EndBatch confirms the batch and, when more batches remain, blocks until
// the operator is ready to continue.
func (d *Driver) EndBatch(ctx context.Context, batch domain.Batch) error {
	fmt.Fprintf(d.out, "\nBatch %d completed.\n", batch.Index)
	if batch.Last() {
		return nil
	}
	return d.checkpoint(ctx, "Press Enter to continue to next batch...")
}

// Close ends the session.
func (d *Driver) Close() error {
	return nil
}

func (d *Driver) checkpoint(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintln(d.out, prompt)
	if _, err := d.in.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("read checkpoint confirmation: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
