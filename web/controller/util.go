package controller

import (
	"mime/multipart"
	"net"
	"net/http"
	"strconv"
	"strings"

	"portfolio/logger"
	"portfolio/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders a page template with the base context attached.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	c.HTML(http.StatusOK, name, data)
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// pathId parses the numeric id route parameter; ok is false after the 404
// has already been written.
func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		notFound(c)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// fail logs an unexpected service error and answers with a 500.
func fail(c *gin.Context, err error) {
	logger.Warningf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// formFile returns the named multipart file when one was submitted. The
// caller owns the returned file.
func formFile(c *gin.Context, field string) (multipart.File, *multipart.FileHeader, bool) {
	header, err := c.FormFile(field)
	if err != nil || header == nil || header.Size == 0 {
		return nil, nil, false
	}
	file, err := header.Open()
	if err != nil {
		logger.Warning("open uploaded file:", err)
		return nil, nil, false
	}
	return file, header, true
}

// localRedirectTarget keeps post-login redirects on this site.
func localRedirectTarget(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}
