package routes

import (
	"errors"
	"net/http"

	"taskping/taskping/database"
	"taskping/taskping/services"
	"taskping/taskping/utils/flash"
	"taskping/taskping/utils/token"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface, sessionTTLHours int) {
	router.GET("/register", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "register", "flash": flash.Take(c)})
	})
	router.POST("/register", func(c *gin.Context) { Register(c, db, authService) })

	router.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "login", "flash": flash.Take(c)})
	})
	router.POST("/login", func(c *gin.Context) { Login(c, db, authService, sessionTTLHours) })

	router.GET("/logout", Logout)
}

func Register(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm")

	_, err := authService.Register(db, email, password, confirm)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			flash.Set(c, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			flash.Set(c, "That email is already registered")
		default:
			flash.Set(c, "Something went wrong, please try again")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Set(c, "Account created, please log in")
	c.Redirect(http.StatusFound, "/login")
}

func Login(c *gin.Context, db *database.Database, authService services.AuthServiceInterface, sessionTTLHours int) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sessionToken, err := authService.Login(db, email, password)
	if err != nil {
		// One message for unknown email and wrong password alike.
		flash.Set(c, "Invalid email or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(token.SessionCookieName, sessionToken, sessionTTLHours*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	c.SetCookie(token.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
