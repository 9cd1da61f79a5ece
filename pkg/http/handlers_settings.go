package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/export"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	view, err := rs.Dashboard.Settings.LoadSettings(ClientID(c))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SaveSettings binds the nested settings document with gin's validator
// tags on models.Settings.
func (rs *RestfulServer) SaveSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := rs.Dashboard.Settings.SaveSettings(ClientID(c), &settings)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) ResetSettings(c *gin.Context) {
	view, err := rs.Dashboard.Settings.ResetSettings(ClientID(c))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) ExportSettings(c *gin.Context) {
	view, err := rs.Dashboard.Settings.LoadSettings(ClientID(c))
	if err != nil {
		rs.fail(c, err)
		return
	}

	data, err := export.SettingsJSON(view.Settings, view.Theme)
	observability.IncExport(string(export.FormatJSON), err)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.SettingsFilename)
	c.Data(http.StatusOK, export.FormatJSON.ContentType(), data)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"email":    z.String().Trim().Email().Required(),
	"password": z.String().Min(1).Required(),
})

// Login issues a fresh client id when the browser does not have one yet
// and hands it back in the X-Client-ID response header.
func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	clientID := c.GetHeader(common.HeaderClientID)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	session, err := rs.Dashboard.Auth.Login(clientID, req.Email, req.Password)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.Header(common.HeaderClientID, clientID)
	c.JSON(http.StatusOK, session)
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if err := rs.Dashboard.Auth.Logout(ClientID(c)); err != nil {
		rs.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetSession(c *gin.Context) {
	session, err := rs.Dashboard.Auth.GetSession(ClientID(c))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

var themeRequestSchema = z.Struct(z.Shape{
	"theme": z.String().Required().OneOf([]string{
		string(models.ThemeLight), string(models.ThemeDark), string(models.ThemeSystem),
	}),
})

func (rs *RestfulServer) GetTheme(c *gin.Context) {
	view, err := rs.Dashboard.Preferences.GetTheme(ClientID(c))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := themeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	view, err := rs.Dashboard.Preferences.SetTheme(ClientID(c), req.Theme)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
