// Package api exposes the license-manager ledger over HTTP.
//
// All ledger routes live under <base-path>/api/v1 and require a bearer
// token; the health probe at <base-path>/health is unauthenticated.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/database"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// DefaultBasePath is the route prefix used when LM_BASE_PATH is not set.
const DefaultBasePath = "/lm"

// Server is the ledger HTTP server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	basePath   string

	dbClient  *database.Client
	validator *identity.Validator

	clusterService       *services.ClusterService
	configurationService *services.ConfigurationService
	licenseServerService *services.LicenseServerService
	productService       *services.ProductService
	featureService       *services.FeatureService
	jobService           *services.JobService
	bookingService       *services.BookingService
	reconcileService     *services.ReconcileService
}

// NewServer creates the ledger server and registers its routes.
func NewServer(basePath string, dbClient *database.Client, validator *identity.Validator) *Server {
	if basePath == "" {
		basePath = DefaultBasePath
	}

	s := &Server{
		echo:      echo.New(),
		basePath:  basePath,
		dbClient:  dbClient,
		validator: validator,

		clusterService:       services.NewClusterService(dbClient.Client),
		configurationService: services.NewConfigurationService(dbClient.Client),
		licenseServerService: services.NewLicenseServerService(dbClient.Client),
		productService:       services.NewProductService(dbClient.Client),
		featureService:       services.NewFeatureService(dbClient.Client),
		jobService:           services.NewJobService(dbClient.Client),
		bookingService:       services.NewBookingService(dbClient.Client),
		reconcileService:     services.NewReconcileService(dbClient.Client),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET(s.basePath+"/health", s.healthHandler)

	v1 := e.Group(s.basePath+"/api/v1", s.requireAuth())

	clusters := v1.Group("/clusters")
	clusters.POST("", s.createClusterHandler, s.requireScope(identity.ScopeClusterEdit))
	clusters.GET("", s.listClustersHandler, s.requireScope(identity.ScopeClusterView))
	clusters.GET("/by_client_id", s.getClusterByClientIDHandler, s.requireScope(identity.ScopeClusterView))
	clusters.GET("/:id", s.getClusterHandler, s.requireScope(identity.ScopeClusterView))
	clusters.PUT("/:id", s.updateClusterHandler, s.requireScope(identity.ScopeClusterEdit))
	clusters.DELETE("/:id", s.deleteClusterHandler, s.requireScope(identity.ScopeClusterEdit))

	configs := v1.Group("/configurations")
	configs.POST("", s.createConfigurationHandler, s.requireScope(identity.ScopeConfigEdit))
	configs.GET("", s.listConfigurationsHandler, s.requireScope(identity.ScopeConfigView))
	configs.GET("/by_client_id", s.listConfigurationsByClientIDHandler, s.requireScope(identity.ScopeConfigView))
	configs.GET("/:id", s.getConfigurationHandler, s.requireScope(identity.ScopeConfigView))
	configs.PUT("/:id", s.updateConfigurationHandler, s.requireScope(identity.ScopeConfigEdit))
	configs.DELETE("/:id", s.deleteConfigurationHandler, s.requireScope(identity.ScopeConfigEdit))

	servers := v1.Group("/license_servers")
	servers.POST("", s.createLicenseServerHandler, s.requireScope(identity.ScopeLicenseServerEdit))
	servers.GET("", s.listLicenseServersHandler, s.requireScope(identity.ScopeLicenseServerView))
	servers.GET("/:id", s.getLicenseServerHandler, s.requireScope(identity.ScopeLicenseServerView))
	servers.PUT("/:id", s.updateLicenseServerHandler, s.requireScope(identity.ScopeLicenseServerEdit))
	servers.DELETE("/:id", s.deleteLicenseServerHandler, s.requireScope(identity.ScopeLicenseServerEdit))

	products := v1.Group("/products")
	products.POST("", s.createProductHandler, s.requireScope(identity.ScopeProductEdit))
	products.GET("", s.listProductsHandler, s.requireScope(identity.ScopeProductView))
	products.GET("/:id", s.getProductHandler, s.requireScope(identity.ScopeProductView))
	products.PUT("/:id", s.updateProductHandler, s.requireScope(identity.ScopeProductEdit))
	products.DELETE("/:id", s.deleteProductHandler, s.requireScope(identity.ScopeProductEdit))

	features := v1.Group("/features")
	features.POST("", s.createFeatureHandler, s.requireScope(identity.ScopeFeatureEdit))
	features.GET("", s.listFeaturesHandler, s.requireScope(identity.ScopeFeatureView))
	features.GET("/:id", s.getFeatureHandler, s.requireScope(identity.ScopeFeatureView))
	features.PUT("/:id", s.updateFeatureHandler, s.requireScope(identity.ScopeFeatureEdit))
	features.PUT("/:id/update_inventory", s.updateInventoryHandler, s.requireScope(identity.ScopeFeatureEdit))
	features.DELETE("/:id", s.deleteFeatureHandler, s.requireScope(identity.ScopeFeatureEdit))

	jobs := v1.Group("/jobs")
	jobs.POST("", s.createJobHandler, s.requireScope(identity.ScopeJobEdit))
	jobs.GET("", s.listJobsHandler, s.requireScope(identity.ScopeJobView))
	jobs.GET("/:id", s.getJobHandler, s.requireScope(identity.ScopeJobView))
	jobs.PUT("/:id", s.updateJobHandler, s.requireScope(identity.ScopeJobEdit))
	jobs.DELETE("/:id", s.deleteJobHandler, s.requireScope(identity.ScopeJobEdit))

	bookings := v1.Group("/bookings")
	bookings.POST("", s.createBookingsHandler, s.requireScope(identity.ScopeBookingEdit))
	bookings.GET("", s.listBookingsHandler, s.requireScope(identity.ScopeBookingView))
	bookings.GET("/by_job/:slurm_job_id", s.listBookingsByJobHandler, s.requireScope(identity.ScopeBookingView))
	bookings.DELETE("/by_job/:slurm_job_id", s.deleteBookingsByJobHandler, s.requireScope(identity.ScopeBookingEdit))
	bookings.GET("/:id", s.getBookingHandler, s.requireScope(identity.ScopeBookingView))
	bookings.DELETE("/:id", s.deleteBookingHandler, s.requireScope(identity.ScopeBookingEdit))

	v1.PATCH("/reconcile", s.reconcileHandler, s.requireScope(identity.ScopeReconcile))
}

// Start runs the HTTP server on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
