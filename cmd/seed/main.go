// seed importa categorías y productos desde un CSV exportado del sistema anterior.
// Las filas pasan por los mismos casos de uso que la API, así que aplican las mismas validaciones.
//
// Uso: go run ./cmd/seed -file catalogo.csv [-latin1] [-comma ';']
// Columnas (cabecera obligatoria, orden libre): sku, name, category, price, quantity,
// location, description, is_active.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lager-api/pkg/config"
	"github.com/jhoicas/lager-api/pkg/logger"
)

func main() {
	path := flag.String("file", "catalogo.csv", "ruta del CSV")
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	comma := flag.String("comma", ",", "separador de columnas")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != "postgres" {
		log.Fatal().Str("db_driver", cfg.DB.Driver).Msg("seed solo tiene sentido contra PostgreSQL")
	}
	if len([]rune(*comma)) != 1 {
		log.Fatal().Str("comma", *comma).Msg("el separador debe ser un único carácter")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("abrir CSV")
	}
	defer f.Close()

	var src io.Reader = f
	if *latin1 {
		src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	imp := newImporter(
		usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool)),
		usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		log,
	)
	res, err := imp.Run(ctx, src, []rune(*comma)[0])
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	log.Info().
		Int("categories", res.Categories).
		Int("products", res.Products).
		Int("rejected", res.Rejected).
		Msg("importación terminada")
	fmt.Printf("Importados %d productos (%d categorías nuevas, %d filas rechazadas)\n", res.Products, res.Categories, res.Rejected)
}
