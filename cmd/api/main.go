package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/course"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
	"github.com/ong-capacita/logistica-api/internal/infrastructure/memory"
	"github.com/ong-capacita/logistica-api/internal/infrastructure/postgres"
	httpiface "github.com/ong-capacita/logistica-api/internal/interfaces/http"
	"github.com/ong-capacita/logistica-api/pkg/config"
	"github.com/ong-capacita/logistica-api/pkg/logger"
)

// storage agrupa los repositorios y runners del backend elegido. La elección
// memory/postgres ocurre una sola vez, aquí, al construir la app.
type storage struct {
	invRepo    repository.InventoryRepository
	movRepo    repository.MovementRepository
	tplRepo    repository.TemplateRepository
	itemRepo   repository.ChecklistItemRepository
	courseRepo repository.CourseRepository
	invTx      inventory.TxRunner
	clTx       checklist.TxRunner
	close      func()
}

func buildStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		store := memory.NewStore()
		return &storage{
			invRepo:    store.InventoryRepository(),
			movRepo:    store.MovementRepository(),
			tplRepo:    store.TemplateRepository(),
			itemRepo:   store.ChecklistItemRepository(),
			courseRepo: store.CourseRepository(),
			invTx:      store,
			clTx:       store,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("conectado a PostgreSQL")

	txRunner := postgres.NewTxRunner(pool)
	return &storage{
		invRepo:    postgres.NewInventoryRepository(pool),
		movRepo:    postgres.NewMovementRepository(pool),
		tplRepo:    postgres.NewTemplateRepository(pool),
		itemRepo:   postgres.NewChecklistItemRepository(pool),
		courseRepo: postgres.NewCourseRepository(pool),
		invTx:      txRunner,
		clTx:       txRunner,
		close:      pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("configuración inválida")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).Msg("iniciando")

	ctx := context.Background()
	st, err := buildStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo inicializar el almacenamiento")
	}
	defer st.close()

	// Casos de uso
	adjustUC := inventory.NewAdjustStockUseCase(st.invTx, st.movRepo)
	inventoryUC := inventory.NewInventoryUseCase(st.invRepo, st.invTx)
	catalog := checklist.NewTemplateCatalog(st.tplRepo, st.courseRepo)
	generatorUC := checklist.NewGeneratorUseCase(catalog, st.itemRepo)
	itemsUC := checklist.NewItemUseCase(st.itemRepo, st.clTx, adjustUC)
	courseUC := course.NewUseCase(st.courseRepo, generatorUC, itemsUC, catalog)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Logística API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "storage": cfg.Storage.Driver})
	})

	httpiface.Router(app, httpiface.RouterDeps{
		InventoryUC: inventoryUC,
		AdjustUC:    adjustUC,
		Catalog:     catalog,
		ItemsUC:     itemsUC,
		GeneratorUC: generatorUC,
		CourseUC:    courseUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP detenido")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado con errores")
	}
	log.Info().Msg("apagado limpio")
}
