package routes

import (
	"wandr/auth"
	"wandr/chats"
	"wandr/live"
	"wandr/maps"
	"wandr/middleware"
	"wandr/planner"
	"wandr/ratelim"
	"wandr/recipes"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddChatRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	router.GET("/api/chats", middleware.Authenticate(chats.GetChats))
	router.POST("/api/chats", middleware.Authenticate(chats.CreateChat))
	router.GET("/api/chats/:chatid", middleware.Authenticate(chats.GetChat))
	router.POST("/api/chats/:chatid/messages", rl.Limit(middleware.Authenticate(chats.SendMessage(hub))))
}

func AddTravelRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/travel-plan", rl.Limit(middleware.OptionalAuth(planner.GenerateTravelPlan)))
	router.GET("/api/trips", middleware.Authenticate(planner.GetTrips))
	router.GET("/api/trips/:id", middleware.OptionalAuth(planner.GetTrip))
	router.GET("/api/trips/:id/print", rl.Limit(planner.PrintTrip))

	router.GET("/api/trips/:id/view", planner.GetViewState)
	router.PUT("/api/trips/:id/selection", planner.SelectPlace)
	router.DELETE("/api/trips/:id/selection", planner.ClearSelection)
	router.PUT("/api/trips/:id/hover", planner.HoverPlace)
	router.DELETE("/api/trips/:id/hover", planner.ClearHover)
}

func AddRecipeRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/recipe", rl.Limit(middleware.OptionalAuth(recipes.SuggestRecipe)))
	router.GET("/api/recipe-image", recipes.RecipeImage)

	router.GET("/api/recipes/favorites", middleware.Authenticate(recipes.GetFavorites))
	router.POST("/api/recipes/favorites", middleware.Authenticate(recipes.AddFavorite))
	router.DELETE("/api/recipes/favorites/:favoriteid", middleware.Authenticate(recipes.RemoveFavorite))
}

func AddMapRoutes(router *httprouter.Router) {
	router.GET("/api/maps/config", maps.GetMapConfig)
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/chats/:chatid", live.WebSocketHandler(hub))
}
