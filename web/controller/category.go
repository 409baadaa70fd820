package controller

import (
	"net/http"

	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// ProjectCategoryController serves the project-category pages. Deleting a
// category leaves the projects in place with a cleared category.
type ProjectCategoryController struct {
	BaseController

	categoryService service.ProjectCategoryService
}

func NewProjectCategoryController(g *gin.RouterGroup) *ProjectCategoryController {
	a := &ProjectCategoryController{}
	a.initRouter(g)
	return a
}

func (a *ProjectCategoryController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/projectcategories")

	g.GET("", a.index)
	g.GET("/details/:id", a.details)

	auth := g.Group("")
	auth.Use(a.checkLogin)
	auth.GET("/create", a.createPage)
	auth.POST("/create", a.create)
	auth.GET("/edit/:id", a.editPage)
	auth.POST("/edit/:id", a.edit)
	auth.POST("/delete/:id", a.del)
}

func (a *ProjectCategoryController) index(c *gin.Context) {
	categories, err := a.categoryService.GetCategories()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "project_categories.html", "Project categories", gin.H{"categories": categories})
}

func (a *ProjectCategoryController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := a.categoryService.GetCategory(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "project_category_details.html", "Project category", gin.H{"category": category})
}

func (a *ProjectCategoryController) createPage(c *gin.Context) {
	html(c, "project_category_form.html", "New project category", nil)
}

func (a *ProjectCategoryController) create(c *gin.Context) {
	var form entity.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "project_category_form.html", "New project category", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.categoryService.CreateCategory(form)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "project_category_form.html", "New project category", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projectcategories")
}

func (a *ProjectCategoryController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := a.categoryService.GetCategory(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "project_category_form.html", "Edit project category", gin.H{"category": category})
}

func (a *ProjectCategoryController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var form entity.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "project_category_form.html", "Edit project category", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.categoryService.UpdateCategory(id, form)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "project_category_form.html", "Edit project category", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projectcategories")
}

func (a *ProjectCategoryController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.categoryService.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projectcategories")
}

// ServiceCategoryController mirrors the project-category pages for service
// categories.
type ServiceCategoryController struct {
	BaseController

	categoryService service.ServiceCategoryService
}

func NewServiceCategoryController(g *gin.RouterGroup) *ServiceCategoryController {
	a := &ServiceCategoryController{}
	a.initRouter(g)
	return a
}

func (a *ServiceCategoryController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/servicecategories")

	g.GET("", a.index)
	g.GET("/details/:id", a.details)

	auth := g.Group("")
	auth.Use(a.checkLogin)
	auth.GET("/create", a.createPage)
	auth.POST("/create", a.create)
	auth.GET("/edit/:id", a.editPage)
	auth.POST("/edit/:id", a.edit)
	auth.POST("/delete/:id", a.del)
}

func (a *ServiceCategoryController) index(c *gin.Context) {
	categories, err := a.categoryService.GetCategories()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "service_categories.html", "Service categories", gin.H{"categories": categories})
}

func (a *ServiceCategoryController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := a.categoryService.GetCategory(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "service_category_details.html", "Service category", gin.H{"category": category})
}

func (a *ServiceCategoryController) createPage(c *gin.Context) {
	html(c, "service_category_form.html", "New service category", nil)
}

func (a *ServiceCategoryController) create(c *gin.Context) {
	var form entity.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "service_category_form.html", "New service category", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.categoryService.CreateCategory(form)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "service_category_form.html", "New service category", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"servicecategories")
}

func (a *ServiceCategoryController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := a.categoryService.GetCategory(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "service_category_form.html", "Edit service category", gin.H{"category": category})
}

func (a *ServiceCategoryController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var form entity.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "service_category_form.html", "Edit service category", gin.H{"error": "Invalid form data."})
		return
	}
	_, errs, err := a.categoryService.UpdateCategory(id, form)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "service_category_form.html", "Edit service category", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"servicecategories")
}

func (a *ServiceCategoryController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.categoryService.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"servicecategories")
}
