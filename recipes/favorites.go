package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wandr/db"
	"wandr/models"
	"wandr/mq"
	"wandr/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// FindByDomainID returns the favorite holding the given recipe id, if any.
// Favorites are deduplicated by the recipe's own id, not by our favorite
// id.
func FindByDomainID(favs []models.FavoriteRecipe, id string) (models.FavoriteRecipe, bool) {
	for _, f := range favs {
		if f.Recipe.ID == id {
			return f, true
		}
	}
	return models.FavoriteRecipe{}, false
}

// GET /api/recipes/favorites
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	favorites, err := utils.FindAndDecode[models.FavoriteRecipe](ctx, db.FavoritesCollection, bson.M{"user_id": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching favorites")
		return
	}

	if favorites == nil {
		favorites = []models.FavoriteRecipe{}
	}

	utils.RespondWithJSON(w, http.StatusOK, favorites)
}

// POST /api/recipes/favorites
// A recipe can be favorited once per domain id: an existing favorite
// means no write at all.
func AddFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil || recipe.ID == "" || recipe.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := utils.FindAndDecode[models.FavoriteRecipe](ctx, db.FavoritesCollection, bson.M{"user_id": userID, "id": recipe.ID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save recipe")
		return
	}

	if _, found := FindByDomainID(existing, recipe.ID); found {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": recipe.Name + " is already a favorite.",
		})
		return
	}

	fav := models.FavoriteRecipe{
		FavoriteID: utils.GetUUID(),
		UserID:     userID,
		Recipe:     recipe,
	}

	if _, err := db.FavoritesCollection.InsertOne(ctx, fav); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save recipe")
		return
	}

	mq.Emit(userID, "favorited", "recipe", recipe.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(utils.M{
		"message":  recipe.Name + " added to your favorites!",
		"favorite": fav,
	})
}

// DELETE /api/recipes/favorites/:favoriteid
// Removal goes by our favorite id, not the recipe's domain id.
func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	favID := ps.ByName("favoriteid")
	if favID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing favorite ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.FavoritesCollection.DeleteOne(ctx, bson.M{"favoriteid": favID, "user_id": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove recipe")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Favorite not found")
		return
	}

	mq.Emit(userID, "unfavorited", "recipe", favID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Recipe removed from favorites."})
}
