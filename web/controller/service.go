package controller

import (
	"net/http"

	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// ServiceController serves the offered-services pages.
type ServiceController struct {
	BaseController

	serviceService  service.ServiceService
	categoryService service.ServiceCategoryService
	uploadService   service.UploadService
}

func NewServiceController(g *gin.RouterGroup) *ServiceController {
	a := &ServiceController{}
	a.initRouter(g)
	return a
}

func (a *ServiceController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/services")

	g.GET("", a.index)
	g.GET("/all", a.all)
	g.GET("/details/:id", a.details)

	auth := g.Group("")
	auth.Use(a.checkLogin)
	auth.GET("/create", a.createPage)
	auth.POST("/create", a.create)
	auth.GET("/edit/:id", a.editPage)
	auth.POST("/edit/:id", a.edit)
	auth.POST("/delete/:id", a.del)
}

func (a *ServiceController) index(c *gin.Context) {
	services, err := a.serviceService.GetServices()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "services.html", "Services", gin.H{"services": services})
}

func (a *ServiceController) all(c *gin.Context) {
	term := c.Query("search")
	services, err := a.serviceService.SearchServices(term)
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "services_all.html", "All services", gin.H{
		"services": services,
		"search":   term,
	})
}

func (a *ServiceController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	svc, err := a.serviceService.GetService(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "service_details.html", "Service", gin.H{"service": svc})
}

func (a *ServiceController) createPage(c *gin.Context) {
	a.renderForm(c, "New service", gin.H{})
}

func (a *ServiceController) create(c *gin.Context) {
	var form entity.ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "New service", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "services")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	actor := session.GetLoginUser(c)
	_, errs, err := a.serviceService.CreateService(actor.UserId, form, coverImageUrl)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		a.renderForm(c, "New service", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"services")
}

func (a *ServiceController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	svc, err := a.serviceService.GetService(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	a.renderForm(c, "Edit service", gin.H{"service": svc})
}

func (a *ServiceController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var form entity.ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "Edit service", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "services")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	_, errs, err := a.serviceService.UpdateService(id, form, coverImageUrl)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		a.renderForm(c, "Edit service", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"services")
}

func (a *ServiceController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.serviceService.DeleteService(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"services")
}

func (a *ServiceController) renderForm(c *gin.Context, title string, data gin.H) {
	categories, err := a.categoryService.GetCategories()
	if err != nil {
		fail(c, err)
		return
	}
	data["categories"] = categories
	html(c, "service_form.html", title, data)
}
