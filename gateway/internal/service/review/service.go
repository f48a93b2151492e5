package review

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
	"github.com/Astemirdum/review-dashboard/gateway/internal/model"
	"github.com/Astemirdum/review-dashboard/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	XUserID = "X-User-Id"
)

// Service is the port adapter for the product/review service.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.ReviewHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.ReviewHTTPServer,
		cb:     circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Service) SubmitReview(ctx context.Context, productID string, rv model.Review, userID string) (model.Review, error) {
	var (
		created  model.Review
		declared *errs.DeclaredError
	)
	if err := s.cb.Call(func() error {
		var err error
		created, err = s.submitReview(ctx, productID, rv, userID)
		if errors.As(err, &declared) {
			return nil
		}
		return err
	}); err != nil {
		return model.Review{}, err
	}
	if declared != nil {
		return model.Review{}, declared
	}
	return created, nil
}

func (s *Service) submitReview(ctx context.Context, productID string, rv model.Review, userID string) (model.Review, error) {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(rv); err != nil {
		return model.Review{}, errors.Wrap(err, "encode review")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("http://%s/api/products/%s/reviews", net.JoinHostPort(s.cfg.Host, s.cfg.Port), productID), b)
	if err != nil {
		return model.Review{}, errors.Wrap(err, "build submit review request")
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSON)
	req.Header.Set(XUserID, userID)
	resp, err := s.client.Do(req)
	if err != nil {
		return model.Review{}, errors.Wrap(err, "review service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return model.Review{}, errs.New(resp.StatusCode, readMessage(resp.Body, resp.StatusCode))
	}

	var created model.Review
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return model.Review{}, errors.Wrap(err, "decode created review")
	}
	return created, nil
}

// GetAverageRating returns the product's average rating. A nil result with
// a nil error means the product has no reviews yet, which is a valid
// success, not a failure.
func (s *Service) GetAverageRating(ctx context.Context, productID, userID string) (*float64, error) {
	var (
		avg      *float64
		declared *errs.DeclaredError
	)
	if err := s.cb.Call(func() error {
		var err error
		avg, err = s.getAverageRating(ctx, productID, userID)
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

func (s *Service) getAverageRating(ctx context.Context, productID, userID string) (*float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/products/%s/average-rating", net.JoinHostPort(s.cfg.Host, s.cfg.Port), productID), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "build average rating request")
	}
	req.Header.Set(XUserID, userID)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "review service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// zero reviews exist for the product
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
		return errors.Wrap(err, "review service unreachable")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("review service health: status %d", resp.StatusCode)
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
