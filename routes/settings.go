package routes

import (
	"net/http"

	"taskping/taskping/database"
	"taskping/taskping/services"
	"taskping/taskping/utils/flash"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(group *gin.RouterGroup, db *database.Database, settingsService services.SettingsServiceInterface) {
	group.GET("/settings", func(c *gin.Context) { GetSettings(c, db, settingsService) })
	group.POST("/settings", func(c *gin.Context) { UpdateSettings(c, db, settingsService) })
}

func GetSettings(c *gin.Context, db *database.Database, settingsService services.SettingsServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := settingsService.GetSettings(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	webhook := ""
	if user.WebhookURL != nil {
		webhook = *user.WebhookURL
	}

	c.JSON(http.StatusOK, gin.H{
		"webhook":             webhook,
		"ping_interval_hours": user.PingIntervalHours,
		"flash":               flash.Take(c),
	})
}

func UpdateSettings(c *gin.Context, db *database.Database, settingsService services.SettingsServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	_, err := settingsService.UpdateSettings(db, userID, c.PostForm("webhook"), c.PostForm("ping_interval_hours"))
	if err != nil {
		flash.Set(c, "Could not save settings, please try again")
	} else {
		flash.Set(c, "Settings saved")
	}
	c.Redirect(http.StatusFound, "/settings")
}
