package recipes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wandr/upstream"
	"wandr/utils"

	"github.com/julienschmidt/httprouter"
)

var api = upstream.NewClient()

// POST /api/recipe
// Forwards the prompt to the upstream generator. Upstream failures relay
// the upstream status and body; a missing base address is a server
// misconfiguration, not an upstream error.
func SuggestRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || strings.TrimSpace(input.Prompt) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid prompt")
		return
	}

	data, err := api.GenerateRecipe(input.Prompt)
	if err != nil {
		if errors.Is(err, upstream.ErrNotConfigured) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Server misconfiguration")
			return
		}
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			utils.RespondWithJSON(w, statusErr.StatusCode, utils.M{
				"error":   "Upstream error",
				"details": statusErr.Body,
			})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, parsed)
}
