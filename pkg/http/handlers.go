package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/export"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetOverview(c *gin.Context) {
	view, err := rs.Dashboard.Overview.GetOverview()
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

type AnalyticsRequest struct {
	Period string `json:"period"`
	Format string `json:"format"`
}

var analyticsRequestSchema = z.Struct(z.Shape{
	"period": z.String().Default(string(dashboard.DefaultPeriod)).OneOf(stringsOf(dashboard.Periods)),
})

var analyticsExportRequestSchema = z.Struct(z.Shape{
	"period": z.String().Default(string(dashboard.DefaultPeriod)).OneOf(stringsOf(dashboard.Periods)),
	"format": z.String().Default(string(export.FormatXLSX)).OneOf(stringsOf(export.AnalyticsFormats)),
})

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	var req AnalyticsRequest
	if err := analyticsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	view, err := rs.Dashboard.Analytics.GetAnalytics(dashboard.Period(req.Period))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) ExportAnalytics(c *gin.Context) {
	var req AnalyticsRequest
	if err := analyticsExportRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	view, err := rs.Dashboard.Analytics.GetAnalytics(dashboard.Period(req.Period))
	if err != nil {
		rs.fail(c, err)
		return
	}

	format := export.Format(req.Format)
	data, err := export.Analytics(view, format)
	observability.IncExport(req.Format, err)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.AnalyticsFilename(view.Period, format))
	c.Data(http.StatusOK, format.ContentType(), data)
}

type EntityRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Page   int    `json:"page"`
}

var entityRequestSchema = z.Struct(z.Shape{
	"search": z.String().Trim(),
	"status": z.String().Default(dashboard.FilterAll),
	"type":   z.String().Default(dashboard.FilterAll),
	"page":   z.Int().Default(1),
})

// parseEntityQuery reads the shared list filters. show_offline is not a
// single word so it is read by hand.
func parseEntityQuery(c *gin.Context) (dashboard.DeviceQuery, any) {
	var req EntityRequest
	if err := entityRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		return dashboard.DeviceQuery{}, err
	}

	showOffline, err := strconv.ParseBool(c.DefaultQuery("show_offline", "false"))
	if err != nil {
		return dashboard.DeviceQuery{}, gin.H{"show_offline": err.Error()}
	}

	return dashboard.DeviceQuery{
		EntityQuery: dashboard.EntityQuery{
			Search:      req.Search,
			Status:      req.Status,
			ShowOffline: showOffline,
			Page:        req.Page,
		},
		Type: req.Type,
	}, nil
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	q, issues := parseEntityQuery(c)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return
	}

	view, err := rs.Dashboard.Devices.ListDevices(q)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	detail, err := rs.Dashboard.Devices.GetDevice(deviceID)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (rs *RestfulServer) GetPanels(c *gin.Context) {
	q, issues := parseEntityQuery(c)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return
	}

	view, err := rs.Dashboard.Panels.GetPanels(q.EntityQuery)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) GetBatteries(c *gin.Context) {
	q, issues := parseEntityQuery(c)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return
	}

	view, err := rs.Dashboard.Battery.GetBatteries(q.EntityQuery)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type UsersRequest struct {
	Search    string `json:"search"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
	Page      int    `json:"page"`
}

var usersRequestSchema = z.Struct(z.Shape{
	"search":    z.String().Trim(),
	"role":      z.String().Default(dashboard.FilterAll),
	"status":    z.String().Default(dashboard.FilterAll),
	"sort":      z.String().Default("name").OneOf(dashboard.UserSortFields),
	"direction": z.String().Default(dashboard.SortAsc).OneOf([]string{dashboard.SortAsc, dashboard.SortDesc}),
	"page":      z.Int().Default(1),
})

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	var req UsersRequest
	if err := usersRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	view, err := rs.Dashboard.Users.ListUsers(dashboard.UserQuery{
		Search:    req.Search,
		Role:      req.Role,
		Status:    req.Status,
		Sort:      req.Sort,
		Direction: req.Direction,
		Page:      req.Page,
	})
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type ClassifyRequest struct {
	Table string  `json:"table"`
	Value float64 `json:"value"`
}

var classifyRequestSchema = z.Struct(z.Shape{
	"table": z.String().Min(1).Required(),
	"value": z.Float64().Required(),
})

func (rs *RestfulServer) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := classifyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	res, err := rs.Dashboard.Classify(req.Table, req.Value)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	clientID := c.Param("client_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(clientID, req.Rate, req.Burst)

	c.JSON(http.StatusOK, rs.RateLimiterStore.Settings(clientID))
}
