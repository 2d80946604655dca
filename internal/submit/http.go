package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-desk/internal/config"
)

type HTTPSubmitter struct {
	logger *slog.Logger
	http   *http.Client
	url    string
}

func NewHTTPSubmitter(logger *slog.Logger, cfg config.Submit) *HTTPSubmitter {
	return &HTTPSubmitter{
		logger: logger.With(slog.String("submitter", "http")),
		http:   &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, draftID string, order Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Draft-ID", draftID)

	res, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post order: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("order endpoint answered %d", res.StatusCode)
	}

	s.logger.DebugContext(ctx, "order submitted", slog.String("draft_id", draftID))
	return nil
}

func (s *HTTPSubmitter) Close() error {
	s.http.CloseIdleConnections()
	return nil
}
