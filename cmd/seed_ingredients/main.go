package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/service"
)

var defaultIngredients = []string{
	"Mehl", "Zucker", "Salz", "Pfeffer", "Eier", "Milch", "Butter", "Sahne",
	"Olivenöl", "Zwiebeln", "Knoblauch", "Kartoffeln", "Karotten", "Tomaten",
	"Reis", "Nudeln", "Hefe", "Backpulver", "Petersilie", "Basilikum",
	"Paprika", "Käse", "Schinken", "Hähnchenbrust", "Rinderhack", "Zitrone",
	"Honig", "Vanillezucker", "Schokolade", "Äpfel",
}

func main() {
	file := flag.String("file", "", "File with one ingredient name per line (default: built-in list)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("seed", "info").Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.NewLogger("seed", cfg.LogLevel)

	names := defaultIngredients
	if *file != "" {
		names, err = readNames(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("failed to read ingredient file")
		}
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := service.NewIngredientService(db).EnsureIngredients(ctx, names)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed ingredients")
	}
	log.Info().
		Int("requested", len(names)).
		Int64("created", created).
		Msg("ingredients seeded")
}

// readNames reads one name per line, skipping blank lines and # comments
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
