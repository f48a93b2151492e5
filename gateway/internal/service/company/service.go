package company

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Astemirdum/review-dashboard/gateway/config"
	"github.com/Astemirdum/review-dashboard/gateway/internal/errs"
	"github.com/Astemirdum/review-dashboard/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	XUserID = "X-User-Id"
)

// Service is the port adapter for the company rating service.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.CompanyHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.CompanyHTTPServer,
		cb:     circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

// GetAverageRating returns the company's average rating, nil when the
// company has no reviews yet.
func (s *Service) GetAverageRating(ctx context.Context, companyID, userID string) (*float64, error) {
	var (
		avg      *float64
		declared *errs.DeclaredError
	)
	if err := s.cb.Call(func() error {
		var err error
		avg, err = s.getAverageRating(ctx, companyID, userID)
		if errors.As(err, &declared) {
			return nil
		}
		return err
	}); err != nil {
		return nil, err
	}
	if declared != nil {
		return nil, declared
	}
	return avg, nil
}

func (s *Service) getAverageRating(ctx context.Context, companyID, userID string) (*float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/company/%s/average-rating", net.JoinHostPort(s.cfg.Host, s.cfg.Port), companyID), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "build average rating request")
	}
	req.Header.Set(XUserID, userID)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "company service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// zero reviews exist for the company
		return nil, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errs.New(resp.StatusCode, readMessage(resp.Body, resp.StatusCode))
	}

	var avg float64
	if err := json.NewDecoder(resp.Body).Decode(&avg); err != nil {
		return nil, errors.Wrap(err, "decode average rating")
	}
	return &avg, nil
}

func (s *Service) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/manage/health", net.JoinHostPort(s.cfg.Host, s.cfg.Port)), http.NoBody)
	if err != nil {
		return errors.Wrap(err, "build health request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "company service unreachable")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("company service health: status %d", resp.StatusCode)
	}
	return nil
}

func readMessage(r io.Reader, code int) string {
	data, err := io.ReadAll(io.LimitReader(r, 4<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return http.StatusText(code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return string(bytes.TrimSpace(data))
}
