package email

import (
	"context"
	"sync"

	"gameborrow/internal/logging"
)

// AsyncSender dispatches every email on its own goroutine and never reports
// failures to the caller; they are logged instead.
type AsyncSender struct {
	next   Sender
	logger logging.Logger
	wg     sync.WaitGroup
}

func NewAsyncSender(next Sender, logger logging.Logger) *AsyncSender {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AsyncSender{next: next, logger: logger}
}

func (a *AsyncSender) SendHTMLTemplateEmail(ctx context.Context, recipients []string, subject, template string, data map[string]any) error {
	// the request context is cancelled as soon as the response is written
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.next.SendHTMLTemplateEmail(ctx, recipients, subject, template, data); err != nil {
			a.logger.Warn(ctx, "email was not sent", "template", template, "error", err)
		}
	}()

	return nil
}

// Wait blocks until all in-flight emails finish or ctx is done.
func (a *AsyncSender) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
