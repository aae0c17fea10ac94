package routes

import (
	"os"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
	"github.com/AgroVista/agro-vista-api/internal/interfaces/http/handlers"
	"github.com/AgroVista/agro-vista-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Monitorar tempo de resposta das rotas de cálculo
	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	esgRepo := repositories.NewESGRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)
	projectionRepo := repositories.NewProjectionRepository(db)
	challengeRepo := repositories.NewChallengeRepository(db)
	farmRepo := repositories.NewFarmRepository(db)
	animalRepo := repositories.NewAnimalRepository(db)

	// Use Cases
	esgUseCase := usecases.NewESGUseCase(esgRepo, badgeRepo)
	breakEvenUseCase := usecases.NewBreakEvenUseCase()
	projectionUseCase := usecases.NewProjectionUseCase(projectionRepo)
	challengeUseCase := usecases.NewChallengeUseCase(challengeRepo)
	rankingUseCase := usecases.NewRankingUseCase(farmRepo, esgRepo, challengeRepo)
	dashboardUseCase := usecases.NewDashboardUseCase(farmRepo, esgRepo, badgeRepo, animalRepo, challengeRepo)
	animalUseCase := usecases.NewAnimalUseCase(animalRepo)

	// Handlers
	esgHandler := handlers.NewESGHandler(esgUseCase)
	breakEvenHandler := handlers.NewBreakEvenHandler(breakEvenUseCase)
	projectionHandler := handlers.NewProjectionHandler(projectionUseCase)
	challengeHandler := handlers.NewChallengeHandler(challengeUseCase)
	rankingHandler := handlers.NewRankingHandler(rankingUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	animalHandler := handlers.NewAnimalHandler(animalUseCase)

	// Routes
	authMiddleware := middleware.NewAuthMiddleware(os.Getenv("JWT_SECRET"))
	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Rotas ESG (catálogo é público, o resto exige autenticação)
	groups.ESG.Get("/checklists", esgHandler.GetChecklists)
	groups.ESG.Post("/responses", authMiddleware, esgHandler.AnswerQuestion)
	groups.ESG.Get("/farms/:farm_id/score", authMiddleware, esgHandler.GetScore)
	groups.ESG.Get("/farms/:farm_id/responses", authMiddleware, esgHandler.GetResponses)
	groups.ESG.Get("/farms/:farm_id/badge", authMiddleware, esgHandler.GetBadge)
	groups.ESG.Get("/farms/:farm_id/badges", authMiddleware, esgHandler.GetBadgeHistory)

	// Rotas de break-even
	groups.BreakEven.Post("/analyze", breakEvenHandler.Analyze)

	// Rotas de projeções
	groups.Projections.Post("/compare", projectionHandler.Compare)
	groups.Projections.Post("/", projectionHandler.Create)
	groups.Projections.Get("/farms/:farm_id", projectionHandler.List)
	groups.Projections.Delete("/:id", projectionHandler.Delete)

	// Rotas de desafios (listagens públicas, escrita e progresso autenticados)
	groups.Challenges.Get("/active", challengeHandler.GetActive)
	groups.Challenges.Get("/", challengeHandler.GetAll)
	groups.Challenges.Get("/farms/:farm_id/progress", authMiddleware, challengeHandler.GetProgress)
	groups.Challenges.Put("/progress/:id", authMiddleware, challengeHandler.UpdateProgress)
	groups.Challenges.Post("/", authMiddleware, challengeHandler.Create)

	// Ranking global
	app.Get("/ranking", rankingHandler.GetGlobalRanking)

	// Painel da fazenda
	groups.Dashboard.Get("/farms/:farm_id", dashboardHandler.GetFarmDashboard)

	// Rotas do rebanho
	groups.Animals.Get("/farms/:farm_id", animalHandler.GetAnimals)
	groups.Animals.Post("/:animal_id/weighings", animalHandler.RegisterWeighing)
	groups.Animals.Get("/:animal_id/weighings", animalHandler.GetWeighings)
}
