package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/queue"
	"github.com/jornada-hq/jornada/internal/reconstruct"
)

// Client submits clock events to the remote ERP's attendance API. It
// implements queue.Submitter: a duplicate reported by the server is mapped
// onto queue.ErrConflict so replay can drop the item as already applied.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured ERP endpoint.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// submitRequest is the JSON body sent to POST /api/fichajes/registrar.
type submitRequest struct {
	ClientRef     string `json:"client_ref"`
	Kind          string `json:"tipo"`
	RecordedAt    string `json:"fecha"`
	UserID        string `json:"fk_user,omitempty"`
	UserLogin     string `json:"usuario,omitempty"`
	Note          string `json:"observaciones,omitempty"`
	Lat           string `json:"latitud,omitempty"`
	Lng           string `json:"longitud,omitempty"`
	OutOfRange    bool   `json:"location_warning,omitempty"`
	Justification string `json:"justification,omitempty"`
}

// submitResponse is the JSON body returned on errors; the ERP reports
// duplicates through the message field as well as the status code.
type submitResponse struct {
	Message string `json:"message"`
}

// Submit pushes one queued event. The locally generated id travels as
// client_ref, which is the idempotency key the server deduplicates on.
func (c *Client) Submit(ctx context.Context, e domain.QueuedEvent) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := submitRequest{
		ClientRef:     e.ID,
		Kind:          string(e.Kind),
		RecordedAt:    reconstruct.FormatClockTime(e.CapturedAt),
		UserID:        e.UserID,
		UserLogin:     e.UserLogin,
		Note:          e.Note,
		Lat:           e.Lat,
		Lng:           e.Lng,
		OutOfRange:    e.OutOfRange,
		Justification: e.Justification,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		err := c.doSubmit(ctx, body)
		if err == nil || errors.Is(err, queue.ErrConflict) {
			c.observe(e, start, err)
			return err
		}
		lastErr = err

		// A 4xx rejection is deterministic; retrying would only duplicate
		// the POST.
		if errors.Is(err, ErrRejected) {
			break
		}
		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observe(e, start, err)
	return err
}

// Available checks whether the ERP endpoint is reachable.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/status", nil)
	if err != nil {
		return false
	}
	req.Header.Set("DOLAPIKEY", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) doSubmit(ctx context.Context, body submitRequest) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/api/fichajes/registrar"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("DOLAPIKEY", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusOK || httpResp.StatusCode == http.StatusCreated:
		return nil
	case isDuplicate(httpResp.StatusCode, respBody):
		return queue.ErrConflict
	case httpResp.StatusCode >= 400 && httpResp.StatusCode < 500:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	default:
		return fmt.Errorf("erp returned status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}
}

// isDuplicate recognizes the ERP's duplicate-record signals: a 409, or an
// error payload whose message names an existing record.
func isDuplicate(status int, body []byte) bool {
	if status == http.StatusConflict {
		return true
	}
	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false
	}
	msg := strings.ToLower(resp.Message)
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "ya existe")
}

func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(err) {
		return ErrUnavailable
	}
	return err
}

func (c *Client) observe(e domain.QueuedEvent, start time.Time, err error) {
	c.observer.OnSubmitComplete(SubmitEvent{
		EventID:   e.ID,
		Kind:      string(e.Kind),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil || errors.Is(err, queue.ErrConflict),
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, queue.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}
