// Package controller provides the HTTP handlers of the portfolio panel:
// account flow, per-entity CRUD pages and the public search views.
package controller

import (
	"net/http"

	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication gate shared by all protected
// routes.
type BaseController struct{}

// checkLogin redirects anonymous browsers to the login page and rejects
// anonymous AJAX calls with a 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if session.IsLogin(c) {
		c.Next()
		return
	}
	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
	} else {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"account/login")
	}
	c.Abort()
}
