package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeCollection is the MongoDB collection recipe documents live in.
const RecipeCollection = "recipes"

// Recipe is a stored recipe document. Ingredients and Instructions are
// schema-free: clients send whatever shape their UI works with (plain
// strings, structured objects) and it is stored and returned verbatim.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Ingredients  interface{}        `bson:"ingredients" json:"ingredients"`
	Instructions interface{}        `bson:"instructions" json:"instructions"`
	PrepTime     string             `bson:"prepTime" json:"prepTime"`
	CookTime     string             `bson:"cookTime" json:"cookTime"`
	Servings     string             `bson:"servings" json:"servings"`
	CuisineType  string             `bson:"cuisineType" json:"cuisineType"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
