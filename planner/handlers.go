package planner

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"wandr/db"
	"wandr/models"
	"wandr/mq"
	"wandr/rdx"
	"wandr/upstream"
	"wandr/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var api = upstream.NewClient()

const planCacheTTL = 10 * time.Minute

func planCacheKey(prompt string) string {
	return fmt.Sprintf("travelplan:%x", md5.Sum([]byte(prompt)))
}

// POST /api/travel-plan
// Proxies the prompt to the upstream planner and returns the normalized,
// day-grouped schedule. Malformed upstream payloads degrade to an empty
// plan; any transport failure yields the fixed 500 body.
func GenerateTravelPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch travel plan")
		return
	}
	prompt := strings.TrimSpace(input.Prompt)

	var body []byte
	cacheKey := planCacheKey(prompt)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		body = []byte(cached)
	} else {
		data, err := api.TravelPlan(prompt)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch travel plan")
			return
		}
		body = data
		if err := rdx.SetWithExpiry(cacheKey, string(data), planCacheTTL); err != nil {
			log.Printf("Failed to cache travel plan: %v", err)
		}
	}

	places := ParseEnvelope(body)
	days := GroupByDay(places)

	resp := utils.M{"prompt": prompt, "places": places, "days": days}
	if len(days) == 0 {
		resp["message"] = NoPlansMessage
		utils.RespondWithJSON(w, http.StatusOK, resp)
		return
	}

	trip := models.Trip{
		TripID:    "t" + utils.GenerateRandomString(13),
		UserID:    utils.GetUserIDFromRequest(r),
		Prompt:    prompt,
		CreatedAt: time.Now().UnixMilli(),
		Places:    places,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TripsCollection.InsertOne(ctx, trip); err != nil {
		// best effort: the generated plan is still returned
		log.Printf("Failed to save trip: %v", err)
	} else {
		resp["tripid"] = trip.TripID
		mq.Emit(trip.UserID, "created", "trip", trip.TripID)
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	if trips == nil {
		trips = []models.Trip{}
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	days := GroupByDay(trip.Places)
	resp := utils.M{"trip": trip, "days": days}
	if len(days) == 0 {
		resp["message"] = NoPlansMessage
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PUT /api/trips/:id/selection
// Opens the detail view on one stop. Last write wins.
func SelectPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	for _, p := range trip.Places {
		if p.ID == input.ID {
			st := stateFor(tripID)
			st.Select(p)
			utils.RespondWithJSON(w, http.StatusOK, st.Snapshot())
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Stop not found")
}

// DELETE /api/trips/:id/selection (the modal was closed)
func ClearSelection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	st := stateFor(ps.ByName("id"))
	st.ClearSelection()
	utils.RespondWithJSON(w, http.StatusOK, st.Snapshot())
}

// PUT /api/trips/:id/hover
// Highlights one map marker. Hover is high-frequency so no trip lookup.
func HoverPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	st := stateFor(ps.ByName("id"))
	st.Hover(input.ID)
	utils.RespondWithJSON(w, http.StatusOK, st.Snapshot())
}

// DELETE /api/trips/:id/hover
func ClearHover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	st := stateFor(ps.ByName("id"))
	st.ClearHover()
	utils.RespondWithJSON(w, http.StatusOK, st.Snapshot())
}

// GET /api/trips/:id/view
func GetViewState(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, stateFor(ps.ByName("id")).Snapshot())
}
