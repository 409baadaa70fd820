package controller

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"portfolio/config"
	"portfolio/database"
	"portfolio/web/entity"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// DocumentController serves the document pages, including the file
// download endpoint.
type DocumentController struct {
	BaseController

	documentService service.DocumentService
	uploadService   service.UploadService
}

func NewDocumentController(g *gin.RouterGroup) *DocumentController {
	a := &DocumentController{}
	a.initRouter(g)
	return a
}

func (a *DocumentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/documents")

	g.GET("", a.index)
	g.GET("/all", a.all)
	g.GET("/details/:id", a.details)
	g.GET("/download/:id", a.download)

	auth := g.Group("")
	auth.Use(a.checkLogin)
	auth.GET("/create", a.createPage)
	auth.POST("/create", a.create)
	auth.GET("/edit/:id", a.editPage)
	auth.POST("/edit/:id", a.edit)
	auth.POST("/delete/:id", a.del)
}

func (a *DocumentController) index(c *gin.Context) {
	documents, err := a.documentService.GetDocuments()
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "documents.html", "Documents", gin.H{"documents": documents})
}

func (a *DocumentController) all(c *gin.Context) {
	term := c.Query("search")
	documents, err := a.documentService.SearchDocuments(term)
	if err != nil {
		fail(c, err)
		return
	}
	html(c, "documents_all.html", "All documents", gin.H{
		"documents": documents,
		"search":    term,
	})
}

func (a *DocumentController) details(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	document, err := a.documentService.GetDocument(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "document_details.html", "Document", gin.H{"document": document})
}

// download streams the stored document file as an attachment.
func (a *DocumentController) download(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	document, err := a.documentService.GetDocument(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if document.DocumentUrl == "" {
		notFound(c)
		return
	}

	rel := strings.TrimPrefix(document.DocumentUrl, "/")
	filePath := filepath.Join(config.GetWebRoot(), filepath.FromSlash(rel))
	if _, err := os.Stat(filePath); err != nil {
		notFound(c)
		return
	}
	c.FileAttachment(filePath, path.Base(document.DocumentUrl))
}

func (a *DocumentController) createPage(c *gin.Context) {
	html(c, "document_form.html", "New document", nil)
}

// create stores the optional cover image and document file before
// persisting the row.
func (a *DocumentController) create(c *gin.Context) {
	var form entity.DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "document_form.html", "New document", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl, documentUrl, ok := a.storeFiles(c)
	if !ok {
		return
	}

	actor := session.GetLoginUser(c)
	_, errs, err := a.documentService.CreateDocument(actor.UserId, form, coverImageUrl, documentUrl)
	if err != nil {
		fail(c, err)
		return
	}
	if errs != nil {
		html(c, "document_form.html", "New document", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"documents")
}

func (a *DocumentController) editPage(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	document, err := a.documentService.GetDocument(id)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	html(c, "document_form.html", "Edit document", gin.H{"document": document})
}

func (a *DocumentController) edit(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var form entity.DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "document_form.html", "Edit document", gin.H{"error": "Invalid form data."})
		return
	}

	coverImageUrl, documentUrl, okFiles := a.storeFiles(c)
	if !okFiles {
		return
	}

	_, errs, err := a.documentService.UpdateDocument(id, form, coverImageUrl, documentUrl)
	if err != nil {
		if database.IsNotFound(err) {
			notFound(c)
		} else {
			fail(c, err)
		}
		return
	}
	if errs != nil {
		html(c, "document_form.html", "Edit document", gin.H{"errors": errs, "form": form})
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"documents")
}

func (a *DocumentController) del(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := a.documentService.DeleteDocument(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"documents")
}

// storeFiles saves the optional cover image and document file. A false
// return means the response has already been written.
func (a *DocumentController) storeFiles(c *gin.Context) (coverImageUrl, documentUrl string, ok bool) {
	if file, header, present := formFile(c, "coverImage"); present {
		defer file.Close()
		url, err := a.uploadService.StoreImage(file, header.Filename, "documents")
		if err != nil {
			fail(c, err)
			return "", "", false
		}
		coverImageUrl = url
	}
	if file, header, present := formFile(c, "documentFile"); present {
		defer file.Close()
		url, err := a.uploadService.Store(file, header.Filename, "documents")
		if err != nil {
			fail(c, err)
			return "", "", false
		}
		documentUrl = url
	}
	return coverImageUrl, documentUrl, true
}
