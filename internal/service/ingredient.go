package service

import (
	"context"
	"strings"

	"github.com/pageza/recipebox/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxIngredientNameLength = 100

// IngredientService handles the ingredient catalogue
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients returns all ingredients ordered by name
func (s *IngredientService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, persistence("list ingredients", err)
	}
	return ingredients, nil
}

// EnsureIngredients inserts the names that do not exist yet and returns how
// many rows were created. Blank names and duplicates in the input are ignored.
func (s *IngredientService) EnsureIngredients(ctx context.Context, names []string) (int64, error) {
	seen := make(map[string]struct{}, len(names))
	rows := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if tooLong(name, maxIngredientNameLength) {
			return 0, invalid("name", "ingredient name is too long: "+name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, models.Ingredient{Name: name})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return 0, persistence("create ingredients", result.Error)
	}
	return result.RowsAffected, nil
}
