package handler

import (
	"net/http"
	"strings"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/review-dashboard/gateway/config"
	"github.com/Astemirdum/review-dashboard/gateway/internal/model"
	"github.com/Astemirdum/review-dashboard/gateway/internal/service/auth"
	"github.com/Astemirdum/review-dashboard/gateway/internal/service/company"
	"github.com/Astemirdum/review-dashboard/gateway/internal/service/review"
	"github.com/Astemirdum/review-dashboard/pkg/validate"
	_ "github.com/Astemirdum/review-dashboard/swagger"
)

const (
	XUserID = "X-User-Id"

	msgEmptyUserID   = "Please provide a non-empty userId in the body"
	msgNoUserHeader  = "Please provide a userID in a header"
	msgInvalidRating = "Invalid rating"
	msgUserCreated   = "User created"
)

type Handler struct {
	authSvc    AuthService
	reviewSvc  ReviewService
	companySvc CompanyService
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(log *zap.Logger, cfg config.Config, producer sarama.SyncProducer) *Handler {
	return NewWithServices(log,
		auth.NewService(log, cfg),
		review.NewService(log, cfg),
		company.NewService(log, cfg),
		NewEnqueuer(producer),
	)
}

func NewWithServices(log *zap.Logger, authSvc AuthService, reviewSvc ReviewService, companySvc CompanyService, enqueuer Enqueuer) *Handler {
	return &Handler{
		authSvc:    authSvc,
		reviewSvc:  reviewSvc,
		companySvc: companySvc,
		enqueuer:   enqueuer,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.POST("/auth/users", h.CreateUser)
	api.POST("/review/product/:productId", h.AddReview)
	api.GET("/review/product/:productId/average-rating", h.GetProductAverageRating)
	api.GET("/review/company/:companyId/average-rating", h.GetCompanyAverageRating)

	return e
}

// CreateUser godoc
// @Summary  Register a user identity with the auth service
// @Accept   json
// @Produce  plain
// @Param    request body model.CreateUserRequest true "desired userId"
// @Success  201 {string} string "User created"
// @Failure  400,409,500 {object} echo.HTTPError
// @Router   /auth/users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgEmptyUserID)
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if err := c.Validate(&req); err != nil {
		h.log.Warn("createUser: userId missing or blank")
		return echo.NewHTTPError(http.StatusBadRequest, msgEmptyUserID)
	}

	if err := h.authSvc.CreateUser(c.Request().Context(), req.UserID); err != nil {
		code, msg := translate(kindCreateUser, err)
		return echo.NewHTTPError(code, msg)
	}

	h.log.Info("user created", zap.String("userId", req.UserID))
	h.audit(auditUserCreated, req.UserID, req.UserID)
	return c.String(http.StatusCreated, msgUserCreated)
}

// AddReview godoc
// @Summary  Submit a review for a product
// @Accept   json
// @Produce  json
// @Param    productId path string true "product id"
// @Param    X-User-Id header string true "caller identity"
// @Param    request body model.Review true "review"
// @Success  201 {object} model.Review
// @Failure  400,401,500 {object} echo.HTTPError
// @Router   /review/product/{productId} [post]
func (h *Handler) AddReview(c echo.Context) error {
	userID := c.Request().Header.Get(XUserID)
	if strings.TrimSpace(userID) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgNoUserHeader)
	}
	var rv model.Review
	if err := c.Bind(&rv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	productID := c.Param("productId")

	created, err := h.reviewSvc.SubmitReview(c.Request().Context(), productID, rv, userID)
	if err != nil {
		code, msg := translate(kindSubmitReview, err)
		return echo.NewHTTPError(code, msg)
	}

	// the rating is caller-supplied; bound it before trusting the echo
	if created.Rating < 0 || created.Rating > 5 {
		h.log.Warn("review echoed with out-of-range rating",
			zap.String("productId", productID), zap.Float64("rating", created.Rating))
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRating)
	}

	h.audit(auditReviewSubmitted, productID, userID)
	return c.JSON(http.StatusCreated, created)
}

// GetProductAverageRating godoc
// @Summary  Average rating of a product
// @Produce  json
// @Param    productId path string true "product id"
// @Param    X-User-Id header string true "caller identity"
// @Success  200 {number} float64
// @Failure  400,401,404,500 {object} echo.HTTPError
// @Router   /review/product/{productId}/average-rating [get]
func (h *Handler) GetProductAverageRating(c echo.Context) error {
	userID := c.Request().Header.Get(XUserID)
	if strings.TrimSpace(userID) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgNoUserHeader)
	}
	productID := c.Param("productId")

	avg, err := h.reviewSvc.GetAverageRating(c.Request().Context(), productID, userID)
	if err != nil {
		code, msg := translate(kindProductRating, err)
		return echo.NewHTTPError(code, msg)
	}
	if avg == nil {
		return echo.NewHTTPError(http.StatusNotFound, "No reviews found for productId: "+productID)
	}
	return c.JSON(http.StatusOK, *avg)
}

// GetCompanyAverageRating godoc
// @Summary  Average rating of a company
// @Produce  json
// @Param    companyId path string true "company id"
// @Param    X-User-Id header string true "caller identity"
// @Success  200 {number} float64
// @Failure  400,401,404,500 {object} echo.HTTPError
// @Router   /review/company/{companyId}/average-rating [get]
func (h *Handler) GetCompanyAverageRating(c echo.Context) error {
	userID := c.Request().Header.Get(XUserID)
	if strings.TrimSpace(userID) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgNoUserHeader)
	}
	companyID := c.Param("companyId")

	avg, err := h.companySvc.GetAverageRating(c.Request().Context(), companyID, userID)
	if err != nil {
		code, msg := translate(kindCompanyRating, err)
		return echo.NewHTTPError(code, msg)
	}
	if avg == nil {
		return echo.NewHTTPError(http.StatusNotFound, "No reviews found for companyId: "+companyID)
	}
	return c.JSON(http.StatusOK, *avg)
}

type healthStatus struct {
	Gateway string `json:"gateway"`
	Auth    string `json:"auth"`
	Review  string `json:"review"`
	Company string `json:"company"`
}

// Health probes the three downstream services concurrently. Any failing
// probe degrades the response to 503 with per-service status.
func (h *Handler) Health(c echo.Context) error {
	ctx := c.Request().Context()
	st := healthStatus{Gateway: "OK", Auth: "OK", Review: "OK", Company: "OK"}

	var gg errgroup.Group
	gg.Go(func() error {
		if err := h.authSvc.Health(ctx); err != nil {
			st.Auth = "DOWN"
			return err
		}
		return nil
	})
	gg.Go(func() error {
		if err := h.reviewSvc.Health(ctx); err != nil {
			st.Review = "DOWN"
			return err
		}
		return nil
	})
	gg.Go(func() error {
		if err := h.companySvc.Health(ctx); err != nil {
			st.Company = "DOWN"
			return err
		}
		return nil
	})

	code := http.StatusOK
	if err := gg.Wait(); err != nil {
		h.log.Warn("health probe failed", zap.Error(err))
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, st)
}
