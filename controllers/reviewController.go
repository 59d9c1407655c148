package controller

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
)

type ReviewController struct {
	Store *database.Store
}

func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cursor, err := rc.Store.Reviews.Find(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error occurred while listing reviews")
		return
	}

	allReviews := []bson.M{}
	if err = cursor.All(ctx, &allReviews); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding review data")
		return
	}

	writeJSON(w, http.StatusOK, allReviews)
}
