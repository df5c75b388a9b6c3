package config

import (
	"context"
	"os"
	"time"

	"pocketsense-backend/internal/api/handlers"
	"pocketsense-backend/internal/api/routes"
	"pocketsense-backend/internal/middleware"
	"pocketsense-backend/internal/utils"
	"pocketsense-backend/internal/utils/cache"
	applogger "pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/internal/utils/mailing"
	"pocketsense-backend/internal/utils/storage"
	"pocketsense-backend/pkg/analysis"
	"pocketsense-backend/pkg/auth"
	"pocketsense-backend/pkg/category"
	"pocketsense-backend/pkg/expense"
	"pocketsense-backend/pkg/group"
	"pocketsense-backend/pkg/jwt"
	"pocketsense-backend/pkg/midtrans"
	"pocketsense-backend/pkg/notification"
	"pocketsense-backend/pkg/settlement"
	"pocketsense-backend/pkg/student"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	ctx := context.Background()
	log := applogger.GetLogger()

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:     "PocketSense",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		BodyLimit:   10 * 1024 * 1024,
	})
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Second,
	}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	middlewares := middleware.NewMiddleware(middleware.NewHTTPMetrics(registry))

	// utils
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		return nil, err
	}
	if s3 == nil {
		log.Info("AWS_S3_BUCKET not set, receipt uploads disabled")
	}

	var analysisCache cache.Cache
	if url := utils.GetConfig("REDIS_URL"); url != "" {
		redisCache, err := cache.NewRedisCache(ctx, url)
		if err != nil {
			log.Warnw("Redis unavailable, analysis cache disabled", "error", err)
		} else {
			analysisCache = redisCache
			app.Hooks().OnShutdown(redisCache.Close)
		}
	}

	mailer, err := mailing.NewMailer(mailing.LoadMailConfig())
	if err != nil {
		return nil, err
	}

	var gateway midtrans.PaymentGateway
	if serverKey := utils.GetConfig("SERVER_KEY"); serverKey != "" {
		gateway = midtrans.NewPaymentGateway(serverKey, utils.GetConfig("IsProd") == "true")
	}

	// Repository
	studentRepository := student.NewStudentRepository(db)
	groupRepository := group.NewGroupRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	expenseRepository := expense.NewExpenseRepository(db)
	settlementRepository := settlement.NewSettlementRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService(
		utils.GetConfig("JWT_SECRET"),
		time.Duration(utils.GetConfigInt("JWT_ACCESS_TTL_MINUTES", 60))*time.Minute,
		time.Duration(utils.GetConfigInt("JWT_REFRESH_TTL_HOURS", 24))*time.Hour,
	)
	dispatcher := notification.NewReminderDispatcherWithRegistry(mailer, registry)
	studentService := student.NewStudentService(studentRepository)
	groupService := group.NewGroupService(groupRepository, studentRepository)
	categoryService := category.NewCategoryService(categoryRepository)
	expenseService := expense.NewExpenseService(
		expenseRepository,
		groupRepository,
		studentRepository,
		categoryRepository,
		analysisCache,
		s3,
	)
	settlementService := settlement.NewSettlementService(settlementRepository, studentRepository, dispatcher)
	analysisService := analysis.NewAnalysisService(analysisRepository, analysisCache)
	authService := auth.NewAuthService(studentRepository, jwtService)
	midtransService := midtrans.NewMidtransService(midtransRepository, settlementRepository, gateway)

	// Handler
	studentHandler := handlers.NewStudentHandler(studentService, validator)
	groupHandler := handlers.NewGroupHandler(groupService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	expenseHandler := handlers.NewExpenseHandler(expenseService, validator)
	settlementHandler := handlers.NewSettlementHandler(settlementService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	authHandler := handlers.NewAuthHandler(authService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		StudentHandler:    studentHandler,
		GroupHandler:      groupHandler,
		CategoryHandler:   categoryHandler,
		ExpenseHandler:    expenseHandler,
		SettlementHandler: settlementHandler,
		AnalysisHandler:   analysisHandler,
		AuthHandler:       authHandler,
		MidtransHandler:   midtransHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
