package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"office-inventory/internal/controllers"
	"office-inventory/internal/repositories"
	"office-inventory/internal/services"
	"office-inventory/pkg/config"
	"office-inventory/pkg/customvalidator"
	"office-inventory/pkg/middleware"
	"office-inventory/pkg/service"
	"office-inventory/pkg/utils"
)

// Dependencies are the storage handles the router is built on. The
// postgres and in-memory drivers both satisfy them.
type Dependencies struct {
	Equipment repositories.EquipmentRepositoryInterface
	Issues    repositories.IssueRepositoryInterface
	Transfers repositories.TransferRepositoryInterface
	Cache     repositories.CacheRepositoryInterface
	JWT       service.JWTService
}

func InitRouter(e *echo.Echo, deps Dependencies, logger *zap.Logger, cfg *config.Config) error {
	logger.Info("InitRouter: building routes")

	sequencer := services.NewSequencer(cfg.Inventory.IDStrategy, deps.Cache, logger)

	// --- services ---
	authService, err := services.NewAuthService(
		cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.AdminPasswordHash,
		deps.JWT, deps.Cache, logger,
	)
	if err != nil {
		return err
	}
	equipmentService := services.NewEquipmentService(deps.Equipment, deps.Issues, sequencer, cfg.Inventory.OrgPrefix, logger)
	issueService := services.NewIssueService(deps.Equipment, deps.Issues, sequencer, logger)
	retrievalService := services.NewRetrievalService(deps.Equipment, deps.Issues, deps.Cache, cfg.Inventory.RetrievalConfirmTTL, logger)
	availabilityService := services.NewAvailabilityService(deps.Equipment, deps.Issues)
	transferService := services.NewTransferService(deps.Transfers, logger)
	sectionService := services.NewSectionService(deps.Cache, logger)
	reportService := services.NewReportService(issueService, availabilityService, transferService, logger)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		return err
	}
	importer := services.NewEquipmentImporter(equipmentService, utils.NewValidator(v), logger)

	// --- routers ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, authService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, controllers.NewAuthController(authService, logger), authMW)
	runEquipmentRouter(secureGroup, controllers.NewEquipmentController(equipmentService, availabilityService, importer, logger))
	runIssueRouter(secureGroup, controllers.NewIssueController(issueService, logger))
	runRetrievalRouter(secureGroup, controllers.NewRetrievalController(retrievalService, logger))
	runTransferRouter(secureGroup, controllers.NewTransferController(transferService, logger))
	runSectionRouter(secureGroup, controllers.NewSectionController(sectionService, logger))
	runReportRouter(secureGroup, controllers.NewReportController(reportService, logger))

	logger.Info("InitRouter: routes ready")
	return nil
}
