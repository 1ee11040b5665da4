// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submit sends form state to the document service and saves the
// returned document.
//
// One Submit call issues at most one request. The response is accepted only
// when the status is 2xx and the declared content type matches the expected
// document type; anything else is reported as an error and nothing is saved.
package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/docreplace/internal/form"
	"github.com/pdiddy/docreplace/internal/httputil"
	"github.com/pdiddy/docreplace/internal/payload"
	"github.com/pdiddy/docreplace/pkg/types"
)

// Phase is the stage a submission is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSending
	PhaseAwaitingResponse
	PhaseDownloading
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSending:
		return "sending"
	case PhaseAwaitingResponse:
		return "awaiting-response"
	case PhaseDownloading:
		return "downloading"
	default:
		return "unknown"
	}
}

// Observer is called on every phase transition. The final call of every
// submission is PhaseIdle, after Busy has been cleared.
type Observer func(Phase)

// Result describes a completed submission.
type Result struct {
	Delivery
	Replacements int
}

// Controller submits form state to the configured endpoint.
type Controller struct {
	cfg    types.ClientConfig
	client *http.Client
	sink   Sink
	log    io.Writer

	mu       sync.Mutex
	observer Observer
	phase    Phase

	busy atomic.Bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(ctl *Controller) { ctl.client = c }
}

// WithSink sets where successful downloads are saved.
func WithSink(s Sink) Option {
	return func(ctl *Controller) { ctl.sink = s }
}

// WithObserver registers a phase observer.
func WithObserver(o Observer) Option {
	return func(ctl *Controller) { ctl.observer = o }
}

// WithLog sets the writer for progress lines.
func WithLog(w io.Writer) Option {
	return func(ctl *Controller) { ctl.log = w }
}

// NewController returns a Controller for cfg. Empty config fields take
// their defaults; downloads go to the current directory unless WithSink
// says otherwise.
func NewController(cfg types.ClientConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg.WithDefaults(),
		client: &http.Client{},
		sink:   DirSink{Dir: "."},
		log:    io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() types.ClientConfig {
	return c.cfg
}

// Busy reports whether a submission is in flight. It is display state for
// spinners and disabled buttons.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	obs := c.observer
	c.mu.Unlock()
	if obs != nil {
		obs(p)
	}
}

// Submit validates st, sends it, and saves the returned document. A second
// call while one is in flight returns ErrBusy without sending anything.
func (c *Controller) Submit(ctx context.Context, st form.State) (*Result, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer func() {
		c.busy.Store(false)
		c.setPhase(PhaseIdle)
	}()

	res, err := c.submit(ctx, st)
	if err != nil {
		fmt.Fprintf(c.log, "failed:  %v\n", err)
		return nil, err
	}
	fmt.Fprintf(c.log, "saved:   %s (%d bytes)\n", res.Path, res.Bytes)
	return res, nil
}

func (c *Controller) submit(ctx context.Context, st form.State) (*Result, error) {
	c.setPhase(PhaseValidating)
	if !st.HasInput() {
		return nil, &MissingInputError{}
	}

	body, err := c.buildBody(st)
	if err != nil {
		return nil, err
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body.Data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", body.ContentType)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", c.cfg.ExpectedContentType)

	fmt.Fprintf(c.log, "sending: %s (%d replacements) to %s\n", st.Input.Name(), len(st.Replacements), c.cfg.Endpoint)

	c.setPhase(PhaseSending)
	resp, err := httputil.Send(ctx, c.client, req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer httputil.DrainAndClose(resp.Body)

	c.setPhase(PhaseAwaitingResponse)
	if !httputil.Success(resp.StatusCode) {
		return nil, &ServerError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       httputil.ReadText(resp.Body),
		}
	}

	ct := resp.Header.Get("Content-Type")
	if !httputil.MediaTypeIs(ct, c.cfg.ExpectedContentType) {
		return nil, &UnexpectedContentTypeError{
			ContentType: ct,
			Expected:    c.cfg.ExpectedContentType,
			Body:        httputil.ReadText(resp.Body),
		}
	}

	c.setPhase(PhaseDownloading)
	filename := OutputFilename(st.OutputName, c.cfg.Extension)
	d, err := c.sink.Deliver(filename, ct, resp.Body)
	if err != nil {
		if httputil.IsTimeout(err) {
			return nil, &TimeoutError{Timeout: c.cfg.Timeout, Err: err}
		}
		return nil, &DownloadError{Filename: filename, Err: err}
	}

	return &Result{Delivery: d, Replacements: len(st.Replacements)}, nil
}

func (c *Controller) buildBody(st form.State) (*payload.Body, error) {
	rc, err := st.Input.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", st.Input.Name(), err)
	}
	defer rc.Close()

	body, err := payload.Build(st.Input.Name(), rc, st.Replacements, st.OutputName)
	if err != nil {
		return nil, fmt.Errorf("preparing submission: %w", err)
	}
	return body, nil
}

func (c *Controller) transportError(err error) error {
	if httputil.IsTimeout(err) {
		return &TimeoutError{Timeout: c.cfg.Timeout, Err: err}
	}
	return &NetworkError{Endpoint: c.cfg.Endpoint, Err: err}
}

// statusText returns the reason phrase the server sent, or the standard
// text for the code when the server sent none.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
