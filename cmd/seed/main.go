package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/models"
	"github.com/tastebase/backend/internal/service"
)

const seedUserID = "demo-user"

var demoRecipes = []models.Recipe{
	{
		UserID:       seedUserID,
		Name:         "Classic Tomato Soup",
		Ingredients:  []string{"2 lbs ripe tomatoes", "1 onion", "2 cloves garlic", "4 cups vegetable stock", "2 tbsp olive oil", "salt", "black pepper"},
		Instructions: "Roast the tomatoes and garlic, sweat the onion, then simmer everything in the stock for 25 minutes and blend until smooth.",
		PrepTime:     "15 min",
		CookTime:     "40 min",
		Servings:     "4",
		CuisineType:  "American",
		Difficulty:   "Easy",
	},
	{
		UserID:       seedUserID,
		Name:         "Chicken Pad Thai",
		Ingredients:  []string{"8 oz rice noodles", "2 chicken breasts", "3 eggs", "1 cup bean sprouts", "4 tbsp tamarind paste", "3 tbsp fish sauce", "2 tbsp palm sugar", "crushed peanuts", "lime wedges"},
		Instructions: "Soak the noodles, stir-fry the chicken, push aside and scramble the eggs, then toss everything with the sauce over high heat and finish with sprouts and peanuts.",
		PrepTime:     "20 min",
		CookTime:     "15 min",
		Servings:     "3",
		CuisineType:  "Thai",
		Difficulty:   "Medium",
	},
	{
		UserID:       seedUserID,
		Name:         "Margherita Pizza",
		Ingredients:  []string{"500g bread flour", "325ml water", "10g salt", "3g dry yeast", "1 can San Marzano tomatoes", "fresh mozzarella", "basil leaves", "olive oil"},
		Instructions: "Mix and bulk-ferment the dough overnight, shape into rounds, top with crushed tomatoes and mozzarella, and bake as hot as your oven goes until the crust blisters. Finish with basil.",
		PrepTime:     "30 min",
		CookTime:     "10 min",
		Servings:     "2",
		CuisineType:  "Italian",
		Difficulty:   "Medium",
	},
	{
		UserID:       seedUserID,
		Name:         "Shakshuka",
		Ingredients:  []string{"6 eggs", "1 can crushed tomatoes", "1 red bell pepper", "1 onion", "3 cloves garlic", "1 tsp cumin", "1 tsp smoked paprika", "feta", "cilantro"},
		Instructions: "Soften the onion and pepper, bloom the spices, add the tomatoes and simmer until thick, then crack the eggs into wells and cook covered until just set.",
		PrepTime:     "10 min",
		CookTime:     "25 min",
		Servings:     "3",
		CuisineType:  "Middle Eastern",
		Difficulty:   "Easy",
	},
	{
		UserID:       seedUserID,
		Name:         "Beef Bourguignon",
		Ingredients:  []string{"3 lbs beef chuck", "1 bottle red burgundy", "4 oz bacon", "1 lb mushrooms", "pearl onions", "2 carrots", "beef stock", "thyme", "bay leaf", "flour", "butter"},
		Instructions: "Brown the beef and bacon, deglaze with wine, then braise low and slow with the aromatics for three hours. Saute the mushrooms and onions separately and fold in before serving.",
		PrepTime:     "45 min",
		CookTime:     "3 h 30 min",
		Servings:     "6",
		CuisineType:  "French",
		Difficulty:   "Hard",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	recipeService := service.NewRecipeService(client.Database(cfg.MongoDatabase))

	seeded := 0
	for i := range demoRecipes {
		id, err := recipeService.CreateRecipe(ctx, &demoRecipes[i])
		if err != nil {
			log.Fatalf("failed to seed recipe %q: %v", demoRecipes[i].Name, err)
		}
		fmt.Printf("Seeded recipe %s (%s)\n", demoRecipes[i].Name, id)
		seeded++
	}

	fmt.Printf("Successfully seeded %d recipes for user %s\n", seeded, seedUserID)
}
