package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	ChatsCollection      *mongo.Collection
	MessagesCollection   *mongo.Collection
	TripsCollection      *mongo.Collection
	FavoritesCollection  *mongo.Collection
	ActivitiesCollection *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("wandrdb").Collection("users")
	ChatsCollection = Client.Database("wandrdb").Collection("chats")
	MessagesCollection = Client.Database("wandrdb").Collection("messages")
	TripsCollection = Client.Database("wandrdb").Collection("trips")
	FavoritesCollection = Client.Database("wandrdb").Collection("favoriteRecipes")
	ActivitiesCollection = Client.Database("wandrdb").Collection("activities")
}
