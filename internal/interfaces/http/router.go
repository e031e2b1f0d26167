// Package http assembles the HTTP surface: it builds the dependency graph
// from repositories up to handlers and registers every route group.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "pactum/internal/application/auth/usecases"
	billingUsecases "pactum/internal/application/billing/usecases"
	contractUsecases "pactum/internal/application/contract/usecases"
	entityUsecases "pactum/internal/application/entity/usecases"
	evaluationUsecases "pactum/internal/application/evaluation/usecases"
	paymentUsecases "pactum/internal/application/payment/usecases"
	planUsecases "pactum/internal/application/plan/usecases"
	"pactum/internal/infrastructure/auth"
	"pactum/internal/infrastructure/cache"
	"pactum/internal/infrastructure/config"
	"pactum/internal/infrastructure/email"
	"pactum/internal/infrastructure/gateway"
	"pactum/internal/infrastructure/permission"
	"pactum/internal/infrastructure/repository"
	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
	"pactum/internal/interfaces/http/routes"
	"pactum/internal/shared/constants"
	shareddb "pactum/internal/shared/db"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/services/markdown"
	"pactum/internal/shared/utils"
)

// Router holds the assembled gin engine and the pieces the server command
// needs beyond request handling.
type Router struct {
	engine      *gin.Engine
	reconcileUC *paymentUsecases.ReconcilePaymentsUseCase
}

// NewRouter builds the full dependency graph and registers all routes.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterBindingValidations(); err != nil {
		return nil, fmt.Errorf("failed to register binding validations: %w", err)
	}
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	txMgr := shareddb.NewTransactionManager(db)
	entityRepo := repository.NewEntityRepository(db)
	planRepo := repository.NewPlanRepository(db)
	contractRepo := repository.NewContractRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	paymentGateway := gateway.NewHTTPGateway(&cfg.Gateway, log)
	notifier := email.NewAdminSettlementNotifier(&cfg.Email, log)
	planCache := cache.NewRedisPlanCache(redisClient)
	markdownSvc := markdown.NewService()

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, err
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)

	authHandler := handlers.NewAuthHandler(
		authUsecases.NewLoginUseCase(accountRepo, hasher, jwtService, log),
	)
	entityHandler := handlers.NewEntityHandler(
		entityUsecases.NewRegisterEntityUseCase(entityRepo, log),
		entityUsecases.NewAttachProfileUseCase(entityRepo, log),
		entityUsecases.NewFindEntityUseCase(entityRepo),
	)
	planHandler := handlers.NewPlanHandler(
		planUsecases.NewListPlansUseCase(planRepo, planCache, log),
		planUsecases.NewGetPlanUseCase(planRepo, planCache, log),
		planUsecases.NewCreatePlanUseCase(planRepo, planCache, log),
		planUsecases.NewRevisePlanUseCase(planRepo, contractRepo, txMgr, planCache, log),
		planUsecases.NewRetirePlanUseCase(planRepo, planCache, log),
	)
	contractHandler := handlers.NewContractHandler(
		contractUsecases.NewCreateContractUseCase(contractRepo, entityRepo, planRepo, log),
		contractUsecases.NewGetContractUseCase(contractRepo),
		contractUsecases.NewActivateContractUseCase(contractRepo, paymentRepo, log),
		contractUsecases.NewSuspendContractUseCase(contractRepo, log),
		contractUsecases.NewReinstateContractUseCase(contractRepo, paymentRepo, log),
		contractUsecases.NewTerminateContractUseCase(contractRepo, log),
		contractUsecases.NewAnnotateContractUseCase(contractRepo, log),
	)
	paymentHandler := handlers.NewPaymentHandler(
		paymentUsecases.NewInitiatePaymentUseCase(paymentRepo, contractRepo, paymentGateway, log),
		paymentUsecases.NewGetPaymentUseCase(paymentRepo, contractRepo),
		paymentUsecases.NewRefundPaymentUseCase(paymentRepo, paymentGateway, log),
		paymentUsecases.NewHandleGatewayCallbackUseCase(paymentRepo, paymentGateway, notifier, log),
	)
	billingHandler := handlers.NewBillingHandler(
		billingUsecases.NewGetBillingStatusUseCase(entityRepo, contractRepo, planRepo, paymentRepo),
		markdownSvc,
		log,
	)
	evaluationHandler := handlers.NewEvaluationHandler(
		evaluationUsecases.NewInactivateEvaluationUseCase(evaluationRepo, log),
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupEntityRoutes(engine, &routes.EntityRouteConfig{
		EntityHandler:        entityHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupPlanRoutes(engine, &routes.PlanRouteConfig{
		PlanHandler:          planHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupContractRoutes(engine, &routes.ContractRouteConfig{
		ContractHandler:      contractHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler:       paymentHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		BillingHandler:       billingHandler,
		EvaluationHandler:    evaluationHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{
		engine: engine,
		reconcileUC: paymentUsecases.NewReconcilePaymentsUseCase(
			paymentRepo, paymentGateway, notifier, log,
		),
	}, nil
}

// Engine exposes the gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ReconcileUseCase exposes the payment reconciliation use case so the server
// command can run the background sweep on the same dependency graph.
func (r *Router) ReconcileUseCase() *paymentUsecases.ReconcilePaymentsUseCase {
	return r.reconcileUC
}
