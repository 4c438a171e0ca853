package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/leoskitchen/backend/config"
	"github.com/leoskitchen/backend/internal/database"
	"github.com/leoskitchen/backend/internal/models"
)

// Seeds the sample recipes shown as fallbacks when a category has no real
// content yet, owned by a dedicated sample account.

const seedUsername = "HealthyChef"

var seedRecipes = []models.Recipe{
	{
		Name:        "Protein-Packed Overnight Oats",
		Category:    "Breakfast",
		Tags:        models.StringArray{"high-protein", "meal-prep", "vegetarian", "quick", "no-cook"},
		Description: "A delicious high-protein breakfast that you can prepare the night before. Perfect for busy mornings when you need a nutritious start to your day without spending time cooking.",
		Image:       "https://api.placeholder.com/800/600",
		Protein:     32,
		Carbs:       45,
		Fat:         12,
		Calories:    420,
		Fiber:       8,
		Sugar:       6,
		Sodium:      120,
		Ingredients: models.StringArray{
			"1/2 cup rolled oats",
			"1 scoop vanilla protein powder",
			"1 tablespoon chia seeds",
			"1 tablespoon almond butter",
			"1/2 cup almond milk",
			"1/4 cup Greek yogurt",
			"1/2 banana, sliced",
			"1/4 cup berries",
			"1 teaspoon honey or maple syrup (optional)",
		},
		Instructions: models.StringArray{
			"In a jar or container, mix oats, protein powder, and chia seeds.",
			"Add almond milk and Greek yogurt, then stir until well combined.",
			"Stir in almond butter and sweetener if using.",
			"Seal the container and refrigerate overnight or for at least 4 hours.",
			"Before serving, top with sliced banana and berries.",
		},
	},
	{
		Name:        "Protein Pancakes",
		Category:    "Breakfast",
		Tags:        models.StringArray{"high-protein", "quick"},
		Description: "Fluffy pancakes with a full scoop of protein in every stack.",
		Image:       "https://api.placeholder.com/150/150",
		Protein:     28,
		Carbs:       38,
		Fat:         9,
		Ingredients: models.StringArray{
			"1 scoop vanilla protein powder",
			"1/2 cup oat flour",
			"1 egg",
			"1/2 cup milk",
			"1 teaspoon baking powder",
		},
		Instructions: models.StringArray{
			"Whisk the dry ingredients together.",
			"Add the egg and milk and whisk into a smooth batter.",
			"Cook on a hot griddle until bubbles form, then flip.",
		},
	},
	{
		Name:        "Greek Yogurt Bowl",
		Category:    "Breakfast",
		Tags:        models.StringArray{"high-protein", "no-cook", "vegetarian"},
		Description: "Thick Greek yogurt layered with fruit, honey and crunch.",
		Image:       "https://api.placeholder.com/150/150",
		Protein:     24,
		Carbs:       30,
		Fat:         8,
		Ingredients: models.StringArray{
			"1 cup Greek yogurt",
			"1/4 cup granola",
			"1/2 cup mixed berries",
			"1 teaspoon honey",
		},
		Instructions: models.StringArray{
			"Spoon the yogurt into a bowl.",
			"Top with granola, berries and honey.",
		},
	},
	{
		Name:        "Protein Smoothie",
		Category:    "Breakfast",
		Tags:        models.StringArray{"high-protein", "quick", "no-cook"},
		Description: "A five-minute blender breakfast for the road.",
		Image:       "https://api.placeholder.com/150/150",
		Protein:     30,
		Carbs:       35,
		Fat:         6,
		Ingredients: models.StringArray{
			"1 scoop protein powder",
			"1 banana",
			"1 cup milk",
			"1 tablespoon peanut butter",
			"1 cup ice",
		},
		Instructions: models.StringArray{
			"Add everything to a blender.",
			"Blend until smooth and pour into a travel cup.",
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	owner, err := seedUser(db)
	if err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	created := 0
	for i := range seedRecipes {
		recipe := seedRecipes[i]

		var count int64
		if err := db.Model(&models.Recipe{}).Where("name = ? AND user_id = ?", recipe.Name, owner.ID).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check recipe %q: %v", recipe.Name, err)
		}
		if count > 0 {
			continue
		}

		if recipe.Calories == 0 {
			recipe.Calories = recipe.Protein*4 + recipe.Carbs*4 + recipe.Fat*9
		}
		recipe.UserID = owner.ID
		recipe.Username = owner.Username
		recipe.DatePosted = time.Now()
		recipe.UpdatedAt = time.Now()

		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("Failed to create recipe %q: %v", recipe.Name, err)
		}
		created++
	}

	log.Printf("Seeded %d recipes (owner %s)", created, owner.Username)
}

func seedUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", seedUsername).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seed-password-not-for-login"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Username:     seedUsername,
		Email:        "healthychef@leoskitchen.example",
		PasswordHash: string(hash),
		FullName:     "Healthy Chef",
		Bio:          "Sample recipes from the Leo's Kitchen team.",
		DateJoined:   time.Now().Format("2006-01-02"),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
