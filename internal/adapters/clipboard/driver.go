// Package clipboard implements a driver that places each number on the
// system clipboard so the operator can paste it straight into the chat
// search box.
package clipboard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/uno-labs/waroster/internal/domain"
	"github.com/uno-labs/waroster/pkg/log"
)

// copyFunc writes a string to the system clipboard. Swappable in tests.
type copyFunc func(string) error

// Driver implements ports.Driver by copying numbers to the clipboard and
// waiting for the operator to paste each one.
type Driver struct {
	in     *bufio.Reader
	out    io.Writer
	copy   copyFunc
	system bool
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

// WithCopyFunc overrides the clipboard write. Used in tests.
func WithCopyFunc(fn copyFunc) Option {
	return func(d *Driver) {
		d.copy = fn
		d.system = false
	}
}

// New creates a clipboard driver on stdin/stdout.
func New(logger log.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	d := &Driver{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		copy:   clipboard.WriteAll,
		system: true,
		logger: logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start walks the operator through session setup.
func (d *Driver) Start(ctx context.Context) error {
	if d.system && clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available (install xclip or xsel, or use --driver console)")
	}
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

// Submit copies the number to the clipboard and waits for the operator to
// paste it and confirm.
func (d *Driver) Submit(ctx context.Context, number domain.Number) error {
	d.item++
	if err := d.copy(string(number)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return d.checkpoint(ctx, fmt.Sprintf("%d: copied %s - paste into the search box and press Enter...", d.item, number))
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

// Close clears the clipboard so a contact number does not linger there.
func (d *Driver) Close() error {
	return d.copy("")
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
