package controller

import (
	"net/http"

	"portfolio/config"
	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/util/metrics"
	"portfolio/web/entity"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// Authenticator is the account flow behind the login, register, profile and
// forgot-password pages. The default implementation hashes credentials; the
// legacy package provides the plaintext one.
type Authenticator interface {
	CheckUser(username, password string) *model.User
	Register(form entity.RegisterForm) (*model.User, entity.FormErrors, error)
	UpdateProfile(actorId int, form entity.ProfileForm, coverImageUrl string) (*model.User, entity.FormErrors, error)
	ForgotPassword(email string) error
}

type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AccountController handles authentication and the signed-in user's own
// profile.
type AccountController struct {
	BaseController

	auth          Authenticator
	userService   service.UserService
	uploadService service.UploadService
}

func NewAccountController(g *gin.RouterGroup, auth Authenticator) *AccountController {
	a := &AccountController{auth: auth}
	a.initRouter(g)
	return a
}

func (a *AccountController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/account")

	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/forgot", a.forgotPage)
	g.POST("/forgot", a.forgot)
	g.GET("/logout", a.logout)

	auth := g.Group("")
	auth.Use(a.checkLogin)
	auth.GET("/profile", a.profile)
	auth.POST("/profile", a.updateProfile)
	auth.POST("/delete", a.deleteAccount)
}

func (a *AccountController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "login.html", "Sign in", gin.H{
		"return": c.Query("return"),
	})
}

// login authenticates and issues the persistent session cookie. Unknown
// username and wrong password produce the same message.
func (a *AccountController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		html(c, "login.html", "Sign in", gin.H{
			"error": "Please enter username and password.",
		})
		return
	}

	user := a.auth.CheckUser(form.Username, form.Password)
	metrics.RecordLogin(user != nil)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		html(c, "login.html", "Sign in", gin.H{
			"error":    "Invalid username or password.",
			"username": form.Username,
		})
		return
	}

	if err := a.signIn(c, user); err != nil {
		fail(c, err)
		return
	}
	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))

	target := localRedirectTarget(c.PostForm("return"), c.GetString("base_path"))
	c.Redirect(http.StatusFound, target)
}

func (a *AccountController) signIn(c *gin.Context, user *model.User) error {
	if err := session.SetMaxAge(c, config.GetSessionMaxAge()); err != nil {
		return err
	}
	return session.SetLoginUser(c, session.Claims{
		UserId:      user.Id,
		DisplayName: user.DisplayName(),
		Email:       user.Email,
	})
}

func (a *AccountController) logout(c *gin.Context) {
	if claims := session.GetLoginUser(c); claims != nil {
		logger.Infof("user %d logged out", claims.UserId)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"account/login")
}

func (a *AccountController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates the account and starts a session right away.
func (a *AccountController) register(c *gin.Context) {
	var form entity.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "Register", gin.H{"error": "Invalid form data."})
		return
	}

	user, errs, err := a.auth.Register(form)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "register.html", "Register", gin.H{"errors": errs, "form": form})
		return
	}

	if err := a.signIn(c, user); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

func (a *AccountController) forgotPage(c *gin.Context) {
	html(c, "forgot.html", "Forgot password", nil)
}

// forgot always reports success so the form does not reveal whether an
// address is registered.
func (a *AccountController) forgot(c *gin.Context) {
	email := c.PostForm("email")
	if email != "" {
		if err := a.auth.ForgotPassword(email); err != nil {
			fail(c, err)
			return
		}
	}
	html(c, "forgot.html", "Forgot password", gin.H{
		"message": "If the address is registered, mail is on its way.",
	})
}

func (a *AccountController) profile(c *gin.Context) {
	claims := session.GetLoginUser(c)
	user, err := a.userService.GetUser(claims.UserId)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "profile.html", "My profile", gin.H{"user": user})
}

// updateProfile overwrites the acting user's fields from the allow-listed
// form; the user id always comes from the session claims.
func (a *AccountController) updateProfile(c *gin.Context) {
	claims := session.GetLoginUser(c)

	var form entity.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "profile.html", "My profile", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "profiles")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	user, errs, err := a.auth.UpdateProfile(claims.UserId, form, coverImageUrl)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "profile.html", "My profile", gin.H{"errors": errs, "form": form})
		return
	}

	// Display name or email may have changed.
	if err := a.signIn(c, user); err != nil {
		fail(c, err)
		return
	}
	html(c, "profile.html", "My profile", gin.H{
		"user":    user,
		"success": "Profile updated successfully!",
	})
}

// deleteAccount removes the acting user with all owned rows and ends the
// session.
func (a *AccountController) deleteAccount(c *gin.Context) {
	claims := session.GetLoginUser(c)

	if err := a.userService.DeleteAccount(claims.UserId); err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session:", err)
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"account/login")
}
