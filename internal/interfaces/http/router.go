package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	clientusecases "fieldesk/internal/application/client/usecases"
	contractusecases "fieldesk/internal/application/contract/usecases"
	dashboardusecases "fieldesk/internal/application/dashboard/usecases"
	equipmentusecases "fieldesk/internal/application/equipment/usecases"
	"fieldesk/internal/application/session"
	sessionusecases "fieldesk/internal/application/session/usecases"
	ticketusecases "fieldesk/internal/application/ticket/usecases"
	userusecases "fieldesk/internal/application/user/usecases"
	"fieldesk/internal/infrastructure/auth"
	"fieldesk/internal/infrastructure/cache"
	"fieldesk/internal/infrastructure/config"
	"fieldesk/internal/infrastructure/permission"
	"fieldesk/internal/infrastructure/repository"
	"fieldesk/internal/infrastructure/storage"
	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/interfaces/http/routes"
	"fieldesk/internal/shared/db"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/services/markdown"
)

// policyModelPath is where the enforcer model file lives relative to the
// working directory.
const policyModelPath = "./configs/rbac_model.conf"

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine               *gin.Engine
	cfg                  *config.Config
	fileStore            *storage.FileStore
	authHandler          *handlers.AuthHandler
	ticketHandler        *handlers.TicketHandler
	clientHandler        *handlers.ClientHandler
	contractHandler      *handlers.ContractHandler
	equipmentHandler     *handlers.EquipmentHandler
	userHandler          *handlers.UserHandler
	dashboardHandler     *handlers.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	logger               logger.Interface
}

// NewRouter wires repositories, usecases, handlers and middleware.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gormDB)
	updateRepo := repository.NewTicketUpdateRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	contractRepo := repository.NewContractRepository(gormDB)
	equipmentRepo := repository.NewEquipmentRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	credentialRepo := repository.NewCredentialRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	markdownSvc := markdown.NewMarkdownService()

	fileStore, err := storage.NewFileStore(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	sessionStore := cache.NewSessionRevocationStore(redisClient, cfg.Auth.JWT.RefreshExpDays, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
		cfg.Auth.Demo.SessionExpMinutes,
	)

	enforcer, err := permission.NewEnforcer(gormDB, policyModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize policy enforcer: %w", err)
	}
	if err := enforcer.Seed(); err != nil {
		return nil, fmt.Errorf("failed to seed policy enforcer: %w", err)
	}

	resolver := session.NewResolver(jwtSvc, profileRepo, sessionStore, log)

	signInUC := sessionusecases.NewSignInUseCase(profileRepo, credentialRepo, hasher, jwtSvc, log)
	registerUC := sessionusecases.NewRegisterUseCase(profileRepo, credentialRepo, hasher, jwtSvc, txManager, log)
	enterDemoUC := sessionusecases.NewEnterDemoUseCase(jwtSvc, cfg.Auth.Demo, log)
	refreshUC := sessionusecases.NewRefreshTokenUseCase(jwtSvc, sessionStore, log)
	signOutUC := sessionusecases.NewSignOutUseCase(sessionStore, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, clientRepo, contractRepo, equipmentRepo, txManager, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, updateRepo, clientRepo, markdownSvc, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	recordUpdateUC := ticketusecases.NewRecordUpdateUseCase(ticketRepo, updateRepo, txManager, log)
	assignUC := ticketusecases.NewAssignTechnicianUseCase(ticketRepo, profileRepo, log)
	attachImageUC := ticketusecases.NewAttachImageUseCase(ticketRepo, fileStore, log)

	createClientUC := clientusecases.NewCreateClientUseCase(clientRepo, log)
	updateClientUC := clientusecases.NewUpdateClientUseCase(clientRepo, log)
	listClientsUC := clientusecases.NewListClientsUseCase(clientRepo, log)

	createContractUC := contractusecases.NewCreateContractUseCase(contractRepo, clientRepo, log)
	listContractsUC := contractusecases.NewListContractsUseCase(contractRepo, log)

	createEquipmentUC := equipmentusecases.NewCreateEquipmentUseCase(equipmentRepo, clientRepo, contractRepo, log)
	listEquipmentUC := equipmentusecases.NewListEquipmentUseCase(equipmentRepo, log)

	listUsersUC := userusecases.NewListUsersUseCase(profileRepo, log)
	updateUserRoleUC := userusecases.NewUpdateUserRoleUseCase(profileRepo, clientRepo, log)

	getSummaryUC := dashboardusecases.NewGetSummaryUseCase(ticketRepo, log)

	return &Router{
		engine:               engine,
		cfg:                  cfg,
		fileStore:            fileStore,
		authHandler:          handlers.NewAuthHandler(signInUC, registerUC, enterDemoUC, refreshUC, signOutUC, log),
		ticketHandler:        handlers.NewTicketHandler(createTicketUC, getTicketUC, listTicketsUC, recordUpdateUC, assignUC, attachImageUC, log),
		clientHandler:        handlers.NewClientHandler(createClientUC, updateClientUC, listClientsUC, log),
		contractHandler:      handlers.NewContractHandler(createContractUC, listContractsUC, log),
		equipmentHandler:     handlers.NewEquipmentHandler(createEquipmentUC, listEquipmentUC, log),
		userHandler:          handlers.NewUserHandler(listUsersUC, updateUserRoleUC, log),
		dashboardHandler:     handlers.NewDashboardHandler(getSummaryUC, log),
		authMiddleware:       middleware.NewAuthMiddleware(resolver, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		logger:               log,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded ticket images.
	r.engine.Static("/uploads", r.fileStore.RootDir())

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        r.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupClientRoutes(api, &routes.ClientRouteConfig{
		ClientHandler:        r.clientHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupContractRoutes(api, &routes.ContractRouteConfig{
		ContractHandler:      r.contractHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupEquipmentRoutes(api, &routes.EquipmentRouteConfig{
		EquipmentHandler:     r.equipmentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          r.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
