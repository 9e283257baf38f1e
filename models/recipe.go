package models

// Recipe as returned by the upstream generator.
type Recipe struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Image        string   `json:"image" bson:"image"`
	Ingredients  []string `json:"ingredients" bson:"ingredients"`
	Instructions string   `json:"instructions" bson:"instructions"`
}

// FavoriteRecipe is a recipe saved by a user. FavoriteID is assigned by us
// at save time and is distinct from the recipe's own domain ID.
type FavoriteRecipe struct {
	FavoriteID string `json:"favoriteid" bson:"favoriteid"`
	UserID     string `json:"user_id" bson:"user_id"`
	Recipe     `bson:",inline"`
}
