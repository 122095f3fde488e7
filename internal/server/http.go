package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/LingarajMishra/ModelPortfolioWebsite/config"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/catalog"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/middleware"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/stats"
	"github.com/gin-gonic/contrib/cors"
	"github.com/gin-gonic/gin"
)

type blobError struct {
	Err error
}

func (be blobError) Error() string {
	return fmt.Sprintf("blob storage error: %s", be.Err)
}

func (be blobError) Unwrap() error {
	return be.Err
}

type HttpServer struct {
	engine *gin.Engine
	config *config.Config
}

type handlers struct {
	catalog catalog.Store
	blobs   blob.Store
	logger  *slog.Logger
}

func NewHTTPServer(config *config.Config, store catalog.Store, blobs blob.Store, logger *slog.Logger) (*HttpServer, error) {
	server := &HttpServer{
		config: config,
	}
	if err := server.Init(store, blobs, logger); err != nil {
		return nil, err
	}

	return server, nil
}

func (s *HttpServer) Init(store catalog.Store, blobs blob.Store, logger *slog.Logger) error {
	if !s.config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := &handlers{
		catalog: store,
		blobs:   blobs,
		logger:  logger,
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.UpgradeToHttps())

	if s.config.AllowedOrigins != nil && s.config.AllowedMethods != nil {
		allowAllOrigins := len(s.config.AllowedOrigins) == 1 && s.config.AllowedOrigins[0] == "*"
		allowedOrigins := s.config.AllowedOrigins
		if allowAllOrigins {
			allowedOrigins = nil
		}

		router.Use(cors.New(cors.Config{
			AllowAllOrigins: allowAllOrigins,
			AllowedOrigins:  allowedOrigins,
			AllowedMethods:  s.config.AllowedMethods,
			AllowedHeaders:  s.config.AllowedHeaders,
		}))
	}

	router.GET("/healthcheck", handler.healthCheck(time.Now().UTC()))

	if s.config.Options.EnableStats {
		stat := stats.NewStatistic()

		router.Use(func(c *gin.Context) {
			startTime := time.Now()
			c.Next()
			// gin writes through its own ResponseWriter, so read the status
			// and size back from it instead of wrapping it in a recorder.
			stat.Record(startTime, c.Writer.Status(), c.Writer.Size())
		})

		router.GET("/sys/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, stat.GatherData())
		})
	}

	restrictIPAddresses := RestrictIPAddresses(s.config.Options.AllowedIPAddresses)

	if s.config.Options.EnablePrometheus {
		prom := stats.NewPrometheus()
		router.Use(prom.Middleware())
		router.GET("/sys/metrics", restrictIPAddresses, gin.WrapH(prom.Handler()))
	}

	if s.config.Options.EnableHealth {
		router.GET("/sys/info", restrictIPAddresses, handler.sysStats())
	}

	// "featured" has to be routed before the photo-by-id lookup so it is never
	// parsed as an id.
	router.GET("/photos/featured", handler.featuredGet())
	router.GET("/photos", handler.photosGet())
	router.GET("/photos/:id", handler.photoGet())
	router.POST("/photos", handler.photoPost())
	router.POST("/photos/upload", handler.uploadPost())
	router.DELETE("/photos/:id", handler.photoDelete())

	s.engine = router

	return nil
}

// ServeHTTP makes the server usable directly with httptest.
func (s *HttpServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *HttpServer) Run() error {
	err := s.engine.Run(fmt.Sprintf(":%s", strconv.Itoa(s.config.Port)))
	if err != nil {
		return err
	}
	return nil
}
