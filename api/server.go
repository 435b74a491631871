package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/tbtrend/logmodule"
	"github.com/bitmark-inc/tbtrend/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

//go:embed templates/*.tmpl
var templates embed.FS

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.DatasetStore
}

// NewServer new instance of server
func NewServer(datasets store.DatasetStore) *Server {
	return &Server{
		store: datasets,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templates, "templates/*.tmpl")))

	pageRoute := r.Group("/")
	pageRoute.Use(logmodule.Ginrus("Page"))
	{
		pageRoute.GET("", s.dashboard)
		pageRoute.GET("/chart", s.interactiveChart)
		pageRoute.GET("/chart.png", s.staticChart)
		pageRoute.GET("/chart.svg", s.staticChart)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		apiRoute.GET("/regions", s.regions)
		apiRoute.GET("/trends", s.trends)
		apiRoute.GET("/trends.csv", s.trendsCSV)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
