package handler

import (
	"context"

	"github.com/Astemirdum/review-dashboard/gateway/internal/model"

	"github.com/Astemirdum/review-dashboard/gateway/internal/service/auth"
	"github.com/Astemirdum/review-dashboard/gateway/internal/service/company"
	"github.com/Astemirdum/review-dashboard/gateway/internal/service/review"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService    = (*auth.Service)(nil)
	_ ReviewService  = (*review.Service)(nil)
	_ CompanyService = (*company.Service)(nil)
)

// AuthService is the port to the authentication service. A nil error is a
// success; *errs.DeclaredError carries a status the service reported; any
// other error is a transport failure.
type AuthService interface {
	CreateUser(ctx context.Context, userID string) error
	Health(ctx context.Context) error
}

// ReviewService is the port to the product/review service. Average rating
// is nil when zero reviews exist, which is a success.
type ReviewService interface {
	SubmitReview(ctx context.Context, productID string, rv model.Review, userID string) (model.Review, error)
	GetAverageRating(ctx context.Context, productID, userID string) (*float64, error)
	Health(ctx context.Context) error
}

// CompanyService is the port to the company rating service.
type CompanyService interface {
	GetAverageRating(ctx context.Context, companyID, userID string) (*float64, error)
	Health(ctx context.Context) error
}
