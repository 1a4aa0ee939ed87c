package api

import (
	stdhttp "net/http"

	h "orgchart/internal/http/handlers"
	"orgchart/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions carries the cross-cutting pieces the router wires around the
// handlers.
type RouterOptions struct {
	Tokens             middleware.TokenParser
	Logger             *zap.Logger
	CORSAllowedOrigins []string
	AuthRatePerMinute  int
	Metrics            *middleware.Metrics
}

func NewRouter(deps h.Deps, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics()
	}
	if deps.Logger == nil {
		deps.Logger = opts.Logger
	}
	handler := h.New(deps)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		gin.Recovery(),
		middleware.CORS(opts.CORSAllowedOrigins),
		opts.Metrics.Middleware(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		opts.Logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, stdhttp.StatusNotFound, "route not found")
	})

	r.GET("/health", handler.Health)
	r.GET("/db-check", handler.DBCheck)
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	auth := r.Group("/auth", middleware.RateLimit(middleware.NewRateLimiter(opts.AuthRatePerMinute)))
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	protected := r.Group("", middleware.RequireAuth(opts.Tokens))

	departments := protected.Group("/departments")
	departments.GET("", handler.ListDepartments)
	departments.POST("", handler.CreateDepartment)
	departments.GET("/:id", handler.GetDepartment)
	departments.PUT("/:id", handler.UpdateDepartment)
	departments.DELETE("/:id", handler.DeleteDepartment)
	departments.GET("/:id/persons", handler.DepartmentPersons)
	departments.GET("/:id/roster.pdf", handler.DepartmentRoster)

	jobs := protected.Group("/jobs")
	jobs.GET("", handler.ListJobs)
	jobs.POST("", handler.CreateJob)
	jobs.GET("/:id", handler.GetJob)
	jobs.PUT("/:id", handler.UpdateJob)
	jobs.DELETE("/:id", handler.DeleteJob)
	jobs.GET("/:id/persons", handler.JobPersons)

	persons := protected.Group("/persons")
	persons.GET("", handler.ListPersons)
	persons.POST("", handler.CreatePerson)
	persons.GET("/:id", handler.GetPerson)
	persons.PUT("/:id", handler.UpdatePerson)
	persons.DELETE("/:id", handler.DeletePerson)
	persons.GET("/:id/reports", handler.DirectReports)

	return r
}
