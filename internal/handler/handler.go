package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hrms/internal/attendance"
	"hrms/internal/employee"
	"hrms/internal/httpmiddleware"
	"hrms/internal/metrics"
	"hrms/internal/queue"
	"hrms/internal/store"
	"hrms/internal/validate"
)

// Handler serves the employee and attendance endpoints.
type Handler struct {
	employees  *employee.Service
	attendance *attendance.Service
	events     queue.Publisher // nil disables record-change events
	db         *store.DB
	redis      *store.Redis // nil when Redis is not configured
	log        logrus.FieldLogger
}

// statusError is implemented by the apperror types.
type statusError interface {
	error
	Status() int
}

// ---------- Pages & health ----------

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx := c.Request.Context()
	dbHealthy := h.db.Healthy(ctx)
	body := gin.H{"status": "ok", "db": dbHealthy}
	status := http.StatusOK
	if !dbHealthy {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}
	if h.redis != nil {
		redisHealthy := h.redis.Healthy(ctx)
		body["redis"] = redisHealthy
		if !redisHealthy {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
	}
	c.JSON(status, body)
}

// ---------- Employees ----------

func (h *Handler) CreateEmployee(c *gin.Context) {
	payload, ok := h.bindObject(c)
	if !ok {
		return
	}
	e, err := h.employees.Create(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.publish(c, queue.EmployeeCreated, e.EmpID)
	c.JSON(http.StatusCreated, gin.H{"message": "Employee added"})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	empID := c.Param("emp_id")
	if err := h.employees.Delete(c.Request.Context(), empID); err != nil {
		h.fail(c, err)
		return
	}
	h.publish(c, queue.EmployeeDeleted, empID)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// ---------- Attendance ----------

func (h *Handler) MarkAttendance(c *gin.Context) {
	payload, ok := h.bindObject(c)
	if !ok {
		return
	}
	rec, err := h.attendance.Mark(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.publish(c, queue.AttendanceMarked, rec.EmpID)
	c.JSON(http.StatusCreated, gin.H{"message": "Attendance marked"})
}

func (h *Handler) ListAttendance(c *gin.Context) {
	entries, err := h.attendance.ListForEmployee(c.Request.Context(), c.Param("emp_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ---------- helpers ----------

// bindObject decodes the request body as a JSON object. Anything else
// (malformed JSON, arrays, scalars, null) is answered with 400.
func (h *Handler) bindObject(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validate.MsgInvalidJSON})
		return nil, false
	}
	return payload, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	var se statusError
	if errors.As(err, &se) {
		c.JSON(se.Status(), gin.H{"error": se.Error()})
		return
	}
	h.log.WithError(err).
		WithField("request_id", httpmiddleware.GetRequestID(c)).
		Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// publish emits a record-change event. Failures never affect the response.
func (h *Handler) publish(c *gin.Context, typ, empID string) {
	if h.events == nil {
		return
	}
	msg := queue.NewMessage(typ, empID)
	if err := h.events.Publish(c.Request.Context(), msg); err != nil {
		metrics.EventsPublished.WithLabelValues(typ, "error").Inc()
		h.log.WithError(err).WithFields(logrus.Fields{
			"event_id": msg.ID,
			"type":     typ,
		}).Warn("queue publish failed")
		return
	}
	metrics.EventsPublished.WithLabelValues(typ, "ok").Inc()
}

// isAPIPath reports whether an unmatched path belongs to the JSON API.
func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
