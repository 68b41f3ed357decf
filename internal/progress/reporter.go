package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter shows that a blocking call is in flight.
type Reporter interface {
	Start(message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter otherwise. Both write to w.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter animates a spinner until Finish is called.
type TerminalReporter struct {
	w    io.Writer
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

func (r *TerminalReporter) Start(message string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.done = make(chan struct{})
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				_ = r.bar.Add(1)
			}
		}
	}()
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	close(r.done)
	r.wg.Wait()
	_ = r.bar.Finish()
	r.bar = nil
}

// CIReporter prints a single line suitable for CI logs.
type CIReporter struct {
	w       io.Writer
	started time.Time
}

func (r *CIReporter) Start(message string) {
	r.started = time.Now()
	fmt.Fprintln(r.w, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.w, "done in %s\n", time.Since(r.started).Round(time.Millisecond))
}

// NopReporter reports nothing.
type NopReporter struct{}

func (NopReporter) Start(string) {}
func (NopReporter) Finish()      {}
