package auth

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

// Service is the port adapter for the authentication service. It reduces
// every call to the three-way outcome convention: nil error on success,
// *errs.DeclaredError when the service answered with a status, any other
// error for a transport failure.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.AuthHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.AuthHTTPServer,
		cb:     circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Service) CreateUser(ctx context.Context, userID string) error {
	var declared *errs.DeclaredError
	if err := s.cb.Call(func() error {
		err := s.createUser(ctx, userID)
		if errors.As(err, &declared) {
			// a declared status means the service answered: only transport
			// faults count against the breaker
			return nil
		}
		return err
	}); err != nil {
		return err
	}
	if declared != nil {
		return declared
	}
	return nil
}

func (s *Service) createUser(ctx context.Context, userID string) error {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(model.CreateUserRequest{UserID: userID}); err != nil {
		return errors.Wrap(err, "encode create user request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("http://%s/users", net.JoinHostPort(s.cfg.Host, s.cfg.Port)), b)
	if err != nil {
		return errors.Wrap(err, "build create user request")
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSON)
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "auth service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.New(resp.StatusCode, readMessage(resp.Body, resp.StatusCode))
	}
	return nil
}

func (s *Service) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/manage/health", net.JoinHostPort(s.cfg.Host, s.cfg.Port)), http.NoBody)
	if err != nil {
		return errors.Wrap(err, "build health request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "auth service unreachable")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("auth service health: status %d", resp.StatusCode)
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
