package routes

import (
	"errors"
	"net/http"
	"strconv"

	"taskping/taskping/database"
	"taskping/taskping/services"
	"taskping/taskping/utils/flash"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface,
	settingsService services.SettingsServiceInterface, notifierService services.NotifierServiceInterface) {
	group.GET("/", func(c *gin.Context) { ListTasks(c, db, taskService) })
	group.POST("/add", func(c *gin.Context) { AddTask(c, db, taskService) })
	group.POST("/done/:id", func(c *gin.Context) { MarkDone(c, db, taskService) })
	group.POST("/send", func(c *gin.Context) { SendSummary(c, db, settingsService, notifierService) })
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return uuid.Nil, false
	}
	return userIDInterface.(uuid.UUID), true
}

func ListTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := taskService.ListTasks(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "flash": flash.Take(c)})
}

func AddTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	_, err := taskService.AddTask(db, userID, c.PostForm("title"), c.PostForm("note"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			flash.Set(c, err.Error())
		} else {
			flash.Set(c, "Could not add task, please try again")
		}
	}
	c.Redirect(http.StatusFound, "/")
}

func MarkDone(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flash.Set(c, "Task not found")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if _, err := taskService.MarkDone(db, userID, uint(taskID)); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			flash.Set(c, "Task not found")
		} else {
			flash.Set(c, "Could not update task, please try again")
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// SendSummary triggers an immediate webhook delivery for the logged-in user.
// Delivery problems are logged by the notifier, not shown here.
func SendSummary(c *gin.Context, db *database.Database, settingsService services.SettingsServiceInterface,
	notifierService services.NotifierServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := settingsService.GetSettings(db, userID)
	if err != nil {
		flash.Set(c, "Could not load your account, please try again")
		c.Redirect(http.StatusFound, "/")
		return
	}

	notifierService.Send(db, &user)
	flash.Set(c, "Summary sent to your webhook")
	c.Redirect(http.StatusFound, "/")
}
