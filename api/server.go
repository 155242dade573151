package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/openepi/covid-dashboard/consts"
	"github.com/openepi/covid-dashboard/dataset"
	"github.com/openepi/covid-dashboard/external/diseasesh"
	"github.com/openepi/covid-dashboard/logmodule"
	"github.com/openepi/covid-dashboard/schema"
	"github.com/openepi/covid-dashboard/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// fetch→build pipeline driven by every dashboard interaction
	pipeline *dataset.Pipeline

	// table cache, exposed on the metrics route
	cache store.TableCache
}

// NewServer new instance of server
func NewServer(source diseasesh.DataSource, cache store.TableCache) *Server {
	return &Server{
		pipeline: dataset.NewPipeline(source, cache),
		cache:    cache,
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

	r.LoadHTMLGlob(viper.GetString("server.templates"))

	pageRoute := r.Group("/")
	pageRoute.Use(logmodule.Ginrus("Dashboard"))
	pageRoute.GET("", s.dashboardPage)

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/information", s.information)
		apiRoute.GET("/snapshot", s.getSnapshot)
		apiRoute.GET("/historical", s.getHistorical)
		apiRoute.GET("/vaccinations/:country", s.getVaccinations)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/cache", s.metricCacheStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// apikeyAuthentication guards non-public routes behind a static Api-Token
// header.
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"countries": consts.SelectableCountries,
			"years": map[string]interface{}{
				"first": schema.FirstYear,
				"last":  schema.LastYear,
			},
		},
	})
}

func (s *Server) metricCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cache": s.cache.Stats(),
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
