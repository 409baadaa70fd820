// Package web provides the web server for the portfolio panel, including
// HTTP serving, routing, templates, and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"portfolio/config"
	"portfolio/logger"
	"portfolio/util/common"
	"portfolio/util/random"
	"portfolio/web/controller"
	"portfolio/web/job"
	"portfolio/web/middleware"
	"portfolio/web/service"
	"portfolio/web/service/legacy"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

const sessionCookieName = "portfolio-session"

// Server represents the portfolio web server with controllers and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index           *controller.IndexController
	account         *controller.AccountController
	user            *controller.UserController
	project         *controller.ProjectController
	serviceOffering *controller.ServiceController
	document        *controller.DocumentController
	news            *controller.NewsController
	projectCategory *controller.ProjectCategoryController
	serviceCategory *controller.ServiceCategoryController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// authenticator picks the login/registration backend. The legacy flow is
// only wired when explicitly enabled through the environment.
func (s *Server) authenticator() controller.Authenticator {
	if config.IsLegacyAuth() {
		logger.Warning("legacy auth enabled, passwords are stored in plaintext")
		return &legacy.AuthService{}
	}
	return &service.UserService{}
}

// initRouter initializes Gin, registers middleware, templates, static
// assets and controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	basePath := config.GetBasePath()

	secret := config.GetSessionSecret()
	if secret == "" {
		secret = random.Seq(32)
		logger.Info("no session secret configured, generated a random one")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     basePath,
		MaxAge:   config.GetSessionMaxAge(),
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(sessionCookieName, store))

	engine.Use(func(c *gin.Context) {
		c.Set("base_path", basePath)
	})

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Metrics())

	engine.GET(basePath+"metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded files are served straight from the web root.
	webRoot := config.GetWebRoot()
	engine.Static(basePath+"images", webRoot+"/images")
	engine.Static(basePath+"documents", webRoot+"/documents")
	engine.Static(basePath+"css", "web/assets/css")

	engine.LoadHTMLGlob(config.GetTemplatesPattern())

	auth := s.authenticator()

	g := engine.Group(basePath)
	s.index = controller.NewIndexController(g)
	s.account = controller.NewAccountController(g, auth)
	s.user = controller.NewUserController(g, auth)
	s.project = controller.NewProjectController(g)
	s.serviceOffering = controller.NewServiceController(g)
	s.document = controller.NewDocumentController(g)
	s.news = controller.NewNewsController(g)
	s.projectCategory = controller.NewProjectCategoryController(g)
	s.serviceCategory = controller.NewServiceCategoryController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewOrphanUploadJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }

// GetCron returns the server's cron scheduler instance.
func (s *Server) GetCron() *cron.Cron { return s.cron }
