package controller

import (
	"net/http"

	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// ProjectController serves the project pages: public listing/details/search
// and the protected create/edit/delete actions.
type ProjectController struct {
	BaseController

	projectService  service.ProjectService
	categoryService service.ProjectCategoryService
	uploadService   service.UploadService
}

func NewProjectController(g *gin.RouterGroup) *ProjectController {
	a := &ProjectController{}
	a.initRouter(g)
	return a
}

func (a *ProjectController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/projects")

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

func (a *ProjectController) index(c *gin.Context) {
	projects, err := a.projectService.GetProjects()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "projects.html", "Projects", gin.H{"projects": projects})
}

// all is the search view over every project.
func (a *ProjectController) all(c *gin.Context) {
	term := c.Query("search")
	projects, err := a.projectService.SearchProjects(term)
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "projects_all.html", "All projects", gin.H{
		"projects": projects,
		"search":   term,
	})
}

func (a *ProjectController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	project, err := a.projectService.GetProject(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "project_details.html", "Project", gin.H{"project": project})
}

func (a *ProjectController) createPage(c *gin.Context) {
	categories, err := a.categoryService.GetCategories()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "project_form.html", "New project", gin.H{"categories": categories})
}

func (a *ProjectController) create(c *gin.Context) {
	var form entity.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "New project", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "projects")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	actor := session.GetLoginUser(c)
	_, errs, err := a.projectService.CreateProject(actor.UserId, form, coverImageUrl)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		a.renderForm(c, "New project", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projects")
}

func (a *ProjectController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	project, err := a.projectService.GetProject(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	a.renderForm(c, "Edit project", gin.H{"project": project})
}

func (a *ProjectController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var form entity.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "Edit project", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "projects")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	_, errs, err := a.projectService.UpdateProject(id, form, coverImageUrl)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		a.renderForm(c, "Edit project", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projects")
}

func (a *ProjectController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.projectService.DeleteProject(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"projects")
}

// renderForm re-renders the create/edit page with the category dropdown
// attached.
func (a *ProjectController) renderForm(c *gin.Context, title string, data gin.H) {
	categories, err := a.categoryService.GetCategories()
	if err != nil {
		fail(c, err)
		return
	}
	data["categories"] = categories
	html(c, "project_form.html", title, data)
}
