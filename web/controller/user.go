package controller

import (
	"net/http"

	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// UserController exposes the administrative user pages. All routes require
// a signed-in session.
type UserController struct {
	BaseController

	auth        Authenticator
	userService service.UserService
}

func NewUserController(g *gin.RouterGroup, auth Authenticator) *UserController {
	a := &UserController{auth: auth}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")
	g.Use(a.checkLogin)

	g.GET("", a.index)
	g.GET("/details/:id", a.details)
	g.GET("/create", a.createPage)
	g.POST("/create", a.create)
	g.GET("/edit/:id", a.editPage)
	g.POST("/edit/:id", a.edit)
	g.POST("/delete/:id", a.del)
}

func (a *UserController) index(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "users.html", "Users", gin.H{"users": users})
}

func (a *UserController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	user, err := a.userService.GetUser(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "user_details.html", "User", gin.H{"user": user})
}

func (a *UserController) createPage(c *gin.Context) {
	html(c, "user_form.html", "New user", nil)
}

func (a *UserController) create(c *gin.Context) {
	var form entity.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "user_form.html", "New user", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.auth.Register(form)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "user_form.html", "New user", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"users")
}

func (a *UserController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	user, err := a.userService.GetUser(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "user_form.html", "Edit user", gin.H{"user": user})
}

func (a *UserController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var form entity.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "user_form.html", "Edit user", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.auth.UpdateProfile(id, form, "")
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "user_form.html", "Edit user", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"users")
}

// del removes a user together with every row they own.
func (a *UserController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.userService.DeleteAccount(id); err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"users")
}
