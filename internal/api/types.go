package api

// CreateRecipeRequest is the body for creating a recipe. Ingredients and
// Instructions are accepted in whatever shape the client sends and stored
// verbatim.
type CreateRecipeRequest struct {
	UserID       string      `json:"userId"`
	Name         string      `json:"name"`
	Ingredients  interface{} `json:"ingredients"`
	Instructions interface{} `json:"instructions"`
	PrepTime     string      `json:"prepTime"`
	CookTime     string      `json:"cookTime"`
	Servings     string      `json:"servings"`
	CuisineType  string      `json:"cuisineType"`
	Difficulty   string      `json:"difficulty"`
	ImageURL     string      `json:"imageUrl"`
}

// DeleteRecipeRequest carries the caller identity for a delete
type DeleteRecipeRequest struct {
	UserID string `json:"userId"`
}
