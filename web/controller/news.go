package controller

import (
	"net/http"

	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// NewsController serves the news pages.
type NewsController struct {
	BaseController

	newsService   service.NewsService
	uploadService service.UploadService
}

func NewNewsController(g *gin.RouterGroup) *NewsController {
	a := &NewsController{}
	a.initRouter(g)
	return a
}

func (a *NewsController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/news")

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

func (a *NewsController) index(c *gin.Context) {
	news, err := a.newsService.GetNews()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "news.html", "News", gin.H{"news": news})
}

func (a *NewsController) all(c *gin.Context) {
	term := c.Query("search")
	news, err := a.newsService.SearchNews(term)
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "news_all.html", "All news", gin.H{
		"news":   news,
		"search": term,
	})
}

func (a *NewsController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	news, err := a.newsService.GetNewsItem(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "news_details.html", "News", gin.H{"news": news})
}

func (a *NewsController) createPage(c *gin.Context) {
	html(c, "news_form.html", "New entry", nil)
}

func (a *NewsController) create(c *gin.Context) {
	var form entity.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "news_form.html", "New entry", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "news")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	actor := session.GetLoginUser(c)
	_, errs, err := a.newsService.CreateNews(actor.UserId, form, coverImageUrl)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "news_form.html", "New entry", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"news")
}

func (a *NewsController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	news, err := a.newsService.GetNewsItem(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "news_form.html", "Edit entry", gin.H{"news": news})
}

func (a *NewsController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var form entity.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "news_form.html", "Edit entry", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl := ""
	if file, header, ok := formFile(c, "coverImage"); ok {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "news")
		if err != nil {
			fail(c, err)
			return
		}
		coverImageUrl = url
	}

	_, errs, err := a.newsService.UpdateNews(id, form, coverImageUrl)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "news_form.html", "Edit entry", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"news")
}

func (a *NewsController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.newsService.DeleteNews(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"news")
}
