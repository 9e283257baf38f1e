package maps

import (
	"net/http"
	"os"

	"wandr/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/maps/config
// Hands the client map view its provider key and defaults. The key is
// public by nature (it ships to the browser either way) but keeping it
// here means one place to rotate it.
func GetMapConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"apiKey": os.Getenv("MAPS_API_KEY"),
		"defaultCenter": utils.M{
			"lat": 0.0,
			"lng": 0.0,
		},
		"defaultZoom": 12,
	})
}
