package controller

import (
	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// IndexController renders the public landing page.
type IndexController struct {
	BaseController

	userService     service.UserService
	projectService  service.ProjectService
	serviceService  service.ServiceService
	documentService service.DocumentService
	newsService     service.NewsService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/copyright", a.copyright)
}

// index aggregates the portfolio owner and all content lists into one page.
func (a *IndexController) index(c *gin.Context) {
	page := entity.HomePage{}

	owner, err := a.userService.GetFirstUser()
	if err != nil && !database.IsNotFound(err) {
		fail(c, err)
		return
	}
	page.Owner = owner

	if page.Services, err = a.serviceService.GetServices(); err != nil {
		fail(c, err)
		return
	}
	if page.Projects, err = a.projectService.GetProjects(); err != nil {
		fail(c, err)
		return
	}
	if page.Documents, err = a.documentService.GetDocuments(); err != nil {
		fail(c, err)
		return
	}
	if page.News, err = a.newsService.GetNews(); err != nil {
		fail(c, err)
		return
	}

	html(c, "index.html", "Portfolio", gin.H{"page": page})
}

func (a *IndexController) copyright(c *gin.Context) {
	html(c, "copyright.html", "Copyright", nil)
}
