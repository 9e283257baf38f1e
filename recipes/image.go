package recipes

import (
	"bytes"
	"image/jpeg"
	"net/http"
	"net/url"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	_ "golang.org/x/image/webp"
)

const maxThumbWidth = 1024

// GET /api/recipe-image?src=<url>&w=<px>
// Fetches a recipe card image and serves a resized JPEG thumbnail.
// Upstream image hosts hand back arbitrarily large files; the cards only
// ever show a small preview.
func RecipeImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	src := r.URL.Query().Get("src")
	if src == "" {
		http.Error(w, "Missing src", http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(src); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		http.Error(w, "Invalid src", http.StatusBadRequest)
		return
	}

	width := 320
	if v, err := strconv.Atoi(r.URL.Query().Get("w")); err == nil && v > 0 && v <= maxThumbWidth {
		width = v
	}

	resp, err := http.Get(src)
	if err != nil {
		http.Error(w, "Failed to fetch image", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Error(w, "Failed to fetch image", http.StatusBadGateway)
		return
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		http.Error(w, "Unsupported image", http.StatusUnsupportedMediaType)
		return
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		http.Error(w, "Failed to encode image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(buf.Bytes())
}
