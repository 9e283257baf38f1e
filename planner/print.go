package planner

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"wandr/db"
	"wandr/middleware"
	"wandr/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/trips/:id/print
// Renders the trip as a printable PDF with a QR link back to it.
func PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		log.Printf("JWT validation error: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	if trip.UserID != "" && trip.UserID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	shareURL := fmt.Sprintf("https://%s/trips/%s", r.Host, tripID)
	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Travel Plan")
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(0, 6, trip.Prompt, "", "L", false)
	pdf.Ln(4)

	for _, day := range GroupByDay(trip.Places) {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d", day.Day))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		for _, p := range day.Places {
			pdf.Cell(0, 6, fmt.Sprintf("%s - %s  %s", p.StartTime, p.EndTime, p.Name))
			pdf.Ln(6)
			if p.Address != "" {
				pdf.SetFont("Arial", "I", 10)
				pdf.Cell(0, 5, "    "+p.Address)
				pdf.Ln(5)
				pdf.SetFont("Arial", "", 11)
			}
			if !math.IsNaN(p.Rating) {
				pdf.Cell(0, 5, fmt.Sprintf("    Rating: %.1f", p.Rating))
				pdf.Ln(5)
			}
			pdf.Ln(2)
		}
		pdf.Ln(3)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+tripID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
