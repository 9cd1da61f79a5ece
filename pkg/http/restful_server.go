package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/metrics"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

type RestfulServer struct {
	Server           *gin.Engine
	Dashboard        *dashboard.Dashboard
	RateLimiterStore *dashboard.RateLimiterStore
}

// CheckClientLimiter takes one token from the client's bucket. Without a
// store every request is admitted.
func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	return rs.RateLimiterStore.Allow(clientID)
}

func (rs *RestfulServer) SetLimiter(clientID string, clientRate float64, clientBurst int) {
	rs.RateLimiterStore.SetLimiter(clientID, rate.Limit(clientRate), clientBurst)
}

// ClientID identifies the browser behind a request: the X-Client-ID
// header when present, the remote address otherwise.
func ClientID(c *gin.Context) string {
	if id := c.GetHeader(common.HeaderClientID); id != "" {
		return id
	}
	return c.ClientIP()
}

// limit rejects the request with 429 once the client runs out of tokens.
func (rs *RestfulServer) limit(c *gin.Context) {
	if !rs.CheckClientLimiter(ClientID(c)) {
		observability.IncRateLimited(observability.TransportHTTP)
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

// fail maps a core error onto a status code.
func (rs *RestfulServer) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dashboard.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dashboard.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": dashboard.InvalidCredentialsMessage})
	case errors.Is(err, dashboard.ErrInvalidPeriod),
		errors.Is(err, dashboard.ErrInvalidTheme),
		errors.Is(err, dashboard.ErrMissingClientID),
		errors.Is(err, classify.ErrUnknownTable),
		errors.Is(err, classify.ErrNonFiniteValue),
		errors.Is(err, metrics.ErrNonFiniteValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(observability.GinMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", observability.Handler())

	api := rs.Server.Group("/api", rs.limit)
	{
		api.GET("/dashboard", rs.GetOverview)

		api.GET("/analytics", rs.GetAnalytics)
		api.GET("/analytics/export", rs.ExportAnalytics)

		api.GET("/devices", rs.ListDevices)
		api.GET("/devices/:device_id", rs.GetDevice)
		api.GET("/solar-panels", rs.GetPanels)
		api.GET("/battery", rs.GetBatteries)
		api.GET("/users", rs.ListUsers)

		api.GET("/classify", rs.Classify)

		api.GET("/settings", rs.GetSettings)
		api.PUT("/settings", rs.SaveSettings)
		api.POST("/settings/reset", rs.ResetSettings)
		api.GET("/settings/export", rs.ExportSettings)

		api.POST("/auth/login", rs.Login)
		api.POST("/auth/logout", rs.Logout)
		api.GET("/auth/session", rs.GetSession)

		api.GET("/preferences/theme", rs.GetTheme)
		api.PUT("/preferences/theme", rs.SetTheme)
	}

	// outside /api so a throttled client can still be granted more tokens
	rs.Server.POST("/clients/:client_id/limiter", rs.PostLimiter)
}
