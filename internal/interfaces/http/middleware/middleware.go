package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://agrovista.vercel.app, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API. Leituras de catálogo e ranking
// são públicas; tudo que grava ou expõe dados de uma fazenda passa pela
// autenticação.
type RouteGroups struct {
	ESG         fiber.Router
	BreakEven   fiber.Router
	Projections fiber.Router
	Challenges  fiber.Router
	Dashboard   fiber.Router
	Animals     fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware func(c *fiber.Ctx) error) RouteGroups {
	esg := app.Group("/esg")

	breakEven := app.Group("/breakeven")
	breakEven.Use(authMiddleware)

	projections := app.Group("/projections")
	projections.Use(authMiddleware)

	challenges := app.Group("/challenges")

	dashboard := app.Group("/dashboard")
	dashboard.Use(authMiddleware)

	animals := app.Group("/animals")
	animals.Use(authMiddleware)

	return RouteGroups{
		ESG:         esg,
		BreakEven:   breakEven,
		Projections: projections,
		Challenges:  challenges,
		Dashboard:   dashboard,
		Animals:     animals,
	}
}
