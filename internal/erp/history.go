package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jornada-hq/jornada/internal/domain"
)

// FetchEvents pulls the clock-event history from the ERP, optionally scoped
// to one user. Callers cache the result locally (repository.EventCacheRepo)
// so reconstruction keeps working offline.
func (c *Client) FetchEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	endpoint := c.cfg.Endpoint + "/api/fichajes/history"
	if userID != "" {
		endpoint += "?fk_user=" + url.QueryEscape(userID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("DOLAPIKEY", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erp returned status %d: %s", resp.StatusCode, string(body))
	}

	var events []domain.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return events, nil
}
