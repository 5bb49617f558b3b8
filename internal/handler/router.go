package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"hrms/internal/attendance"
	"hrms/internal/employee"
	"hrms/internal/httpmiddleware"
	"hrms/internal/queue"
	"hrms/internal/store"
	"hrms/internal/web"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Employees  *employee.Service
	Attendance *attendance.Service
	DB         *store.DB
	Redis      *store.Redis           // optional, only reported by /healthz
	Events     queue.Publisher        // optional
	Limiter    httpmiddleware.Limiter // optional
	Log        logrus.FieldLogger
	Production bool
}

// NewRouter builds the gin engine serving the landing page, the JSON API,
// /healthz and /metrics.
func NewRouter(d Deps) *gin.Engine {
	h := &Handler{
		employees:  d.Employees,
		attendance: d.Attendance,
		events:     d.Events,
		db:         d.DB,
		redis:      d.Redis,
		log:        d.Log,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestID())
	r.Use(httpmiddleware.AccessLog(d.Log, "/healthz", "/metrics"))
	r.Use(httpmiddleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", httpmiddleware.RequestIDHeader},
		ExposeHeaders:   []string{httpmiddleware.RequestIDHeader},
	}))
	r.Use(httpmiddleware.SecurityHeaders(d.Production))

	r.SetHTMLTemplate(web.Templates())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", h.Healthz)

	site := r.Group("/")
	if d.Limiter != nil {
		site.Use(httpmiddleware.RateLimit(d.Limiter, d.Log))
	}
	site.GET("/", h.Home)

	api := site.Group("/api")
	{
		api.POST("/employees", h.CreateEmployee)
		api.GET("/employees", h.ListEmployees)
		api.DELETE("/employees/:emp_id", h.DeleteEmployee)

		api.POST("/attendance", h.MarkAttendance)
		api.GET("/attendance/:emp_id", h.ListAttendance)
	}

	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})

	return r
}
