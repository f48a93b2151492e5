package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/review-dashboard/gateway/internal/errs"
	"github.com/Astemirdum/review-dashboard/gateway/internal/handler"
	"github.com/Astemirdum/review-dashboard/gateway/internal/model"
	"github.com/Astemirdum/review-dashboard/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/review-dashboard/gateway/internal/handler/mocks"
)

func ptr(f float64) *float64 { return &f }

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockAuthService, *service_mocks.MockReviewService, *service_mocks.MockCompanyService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	authSvc := service_mocks.NewMockAuthService(c)
	reviewSvc := service_mocks.NewMockReviewService(c)
	companySvc := service_mocks.NewMockCompanyService(c)
	log := zap.NewExample().Named("test")
	h := handler.NewWithServices(log, authSvc, reviewSvc, companySvc, handler.NewEnqueuer(nil))
	return h, authSvc, reviewSvc, companySvc
}

func TestHandler_CreateUser(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"userId":"U1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					CreateUser(context.Background(), "U1").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `User created`,
			},
		},
		{
			name:         "err. userId absent",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a non-empty userId in the body"}`,
			},
		},
		{
			name:         "err. userId blank",
			body:         `{"userId":"   "}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a non-empty userId in the body"}`,
			},
		},
		{
			name: "err. duplicate userId",
			body: `{"userId":"U1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					CreateUser(context.Background(), "U1").
					Return(errs.New(http.StatusConflict, "user already exists"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"This user ID is already taken. Please choose another."}`,
			},
		},
		{
			name: "err. invalid userId declared",
			body: `{"userId":"!!"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					CreateUser(context.Background(), "!!").
					Return(errs.New(http.StatusBadRequest, "invalid id"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid userId. Please try a different value."}`,
			},
		},
		{
			name: "err. transport",
			body: `{"userId":"U1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					CreateUser(context.Background(), "U1").
					Return(errors.New("auth service unreachable"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Failed to create user: auth service unreachable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, authSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/auth/users", h.CreateUser)

			r := httptest.NewRequest(http.MethodPost, "/auth/users", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddReview(t *testing.T) {
	t.Parallel()
	type input struct {
		productID string
		userID    string
		body      string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReviewService, inp input)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			input: input{
				productID: "123",
				userID:    "U1",
				body:      `{"rating":4,"comment":"Good product"}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					SubmitReview(context.Background(), inp.productID, model.Review{Rating: 4, Comment: "Good product"}, inp.userID).
					Return(model.Review{Rating: 4, Comment: "Good product"}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"comment":"Good product","rating":4}`,
			},
		},
		{
			name: "err. no user header",
			input: input{
				productID: "123",
				body:      `{"rating":4}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a userID in a header"}`,
			},
		},
		{
			name: "err. unknown user",
			input: input{
				productID: "123",
				userID:    "ghost",
				body:      `{"rating":4}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					SubmitReview(context.Background(), inp.productID, model.Review{Rating: 4}, inp.userID).
					Return(model.Review{}, errs.New(http.StatusUnauthorized, "Unauthorized"))
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Your user ID does not exist. Please create a new user."}`,
			},
		},
		{
			name: "err. echoed rating above range",
			input: input{
				productID: "123",
				userID:    "U1",
				body:      `{"rating":6}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					SubmitReview(context.Background(), inp.productID, model.Review{Rating: 6}, inp.userID).
					Return(model.Review{Rating: 6}, nil)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid rating"}`,
			},
		},
		{
			name: "err. echoed rating below range",
			input: input{
				productID: "123",
				userID:    "U1",
				body:      `{"rating":-1}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					SubmitReview(context.Background(), inp.productID, model.Review{Rating: -1}, inp.userID).
					Return(model.Review{Rating: -1}, nil)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid rating"}`,
			},
		},
		{
			name: "err. transport",
			input: input{
				productID: "123",
				userID:    "U1",
				body:      `{"rating":4}`,
			},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					SubmitReview(context.Background(), inp.productID, model.Review{Rating: 4}, inp.userID).
					Return(model.Review{}, errors.New("review service unreachable"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Failed to submit review: review service unreachable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reviewSvc, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/review/product/:productId", h.AddReview)

			r := httptest.NewRequest(http.MethodPost, "/review/product/"+tt.input.productID, strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userID != "" {
				r.Header.Set(handler.XUserID, tt.input.userID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(reviewSvc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetProductAverageRating(t *testing.T) {
	t.Parallel()
	type input struct {
		productID string
		userID    string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReviewService, inp input)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			input: input{productID: "123", userID: "U1"},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.productID, inp.userID).
					Return(ptr(4.5), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `4.5`,
			},
		},
		{
			name:  "err. no reviews",
			input: input{productID: "123", userID: "U1"},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.productID, inp.userID).
					Return(nil, nil)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"No reviews found for productId: 123"}`,
			},
		},
		{
			name:         "err. no user header",
			input:        input{productID: "123"},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a userID in a header"}`,
			},
		},
		{
			name:         "err. blank user header",
			input:        input{productID: "123", userID: "   "},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a userID in a header"}`,
			},
		},
		{
			name:  "err. unknown user",
			input: input{productID: "123", userID: "ghost"},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.productID, inp.userID).
					Return(nil, errs.New(http.StatusUnauthorized, "Unauthorized"))
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Your user ID does not exist. Please create a new user."}`,
			},
		},
		{
			name:  "err. transport",
			input: input{productID: "123", userID: "U1"},
			mockBehavior: func(r *service_mocks.MockReviewService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.productID, inp.userID).
					Return(nil, errors.New("review service unreachable"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Failed to get average rating: review service unreachable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, reviewSvc, _ := newTestHandler(t)

			e := echo.New()
			e.GET("/review/product/:productId/average-rating", h.GetProductAverageRating)

			r := httptest.NewRequest(http.MethodGet, "/review/product/"+tt.input.productID+"/average-rating", http.NoBody)
			if tt.input.userID != "" {
				r.Header.Set(handler.XUserID, tt.input.userID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(reviewSvc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetCompanyAverageRating(t *testing.T) {
	t.Parallel()
	type input struct {
		companyID string
		userID    string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCompanyService, inp input)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			input: input{companyID: "456", userID: "U1"},
			mockBehavior: func(r *service_mocks.MockCompanyService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.companyID, inp.userID).
					Return(ptr(4.2), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `4.2`,
			},
		},
		{
			name:  "err. no reviews",
			input: input{companyID: "456", userID: "U1"},
			mockBehavior: func(r *service_mocks.MockCompanyService, inp input) {
				r.EXPECT().
					GetAverageRating(context.Background(), inp.companyID, inp.userID).
					Return(nil, nil)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"No reviews found for companyId: 456"}`,
			},
		},
		{
			name:         "err. no user header",
			input:        input{companyID: "456"},
			mockBehavior: func(r *service_mocks.MockCompanyService, inp input) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Please provide a userID in a header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, companySvc := newTestHandler(t)

			e := echo.New()
			e.GET("/review/company/:companyId/average-rating", h.GetCompanyAverageRating)

			r := httptest.NewRequest(http.MethodGet, "/review/company/"+tt.input.companyID+"/average-rating", http.NoBody)
			if tt.input.userID != "" {
				r.Header.Set(handler.XUserID, tt.input.userID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(companySvc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	t.Run("all up", func(t *testing.T) {
		t.Parallel()
		h, authSvc, reviewSvc, companySvc := newTestHandler(t)
		authSvc.EXPECT().Health(context.Background()).Return(nil)
		reviewSvc.EXPECT().Health(context.Background()).Return(nil)
		companySvc.EXPECT().Health(context.Background()).Return(nil)

		e := echo.New()
		e.GET("/manage/health", h.Health)
		r := httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"gateway":"OK","auth":"OK","review":"OK","company":"OK"}`, w.Body.String())
	})

	t.Run("company down", func(t *testing.T) {
		t.Parallel()
		h, authSvc, reviewSvc, companySvc := newTestHandler(t)
		authSvc.EXPECT().Health(context.Background()).Return(nil)
		reviewSvc.EXPECT().Health(context.Background()).Return(nil)
		companySvc.EXPECT().Health(context.Background()).Return(errors.New("dial tcp: connection refused"))

		e := echo.New()
		e.GET("/manage/health", h.Health)
		r := httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.JSONEq(t, `{"gateway":"OK","auth":"OK","review":"OK","company":"DOWN"}`, w.Body.String())
	})
}
