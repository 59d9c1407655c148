package controller

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
)

type StatsController struct {
	Store *database.Store
}

// OrderStat is one row of the per-category order breakdown.
type OrderStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AdminStats returns the dashboard headline numbers: collection counts plus
// total revenue summed over all payments. Revenue is 0 when no payments exist.
func (sc *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	users, err := sc.Store.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error counting users")
		return
	}
	menuItems, err := sc.Store.Menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error counting menu items")
		return
	}
	orders, err := sc.Store.Payments.CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error counting payments")
		return
	}

	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
	}}}

	cursor, err := sc.Store.Payments.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error computing revenue")
		return
	}

	var totals []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err = cursor.All(ctx, &totals); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding revenue data")
		return
	}

	revenue := 0.0
	if len(totals) > 0 {
		revenue = totals[0].TotalRevenue
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   revenue,
	})
}

// OrderStats unwinds every purchased menu item id, joins it back against the
// menu collection and groups by category. Categories nobody has ordered from
// produce no row.
func (sc *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	unwindStage := bson.D{{Key: "$unwind", Value: "$menuItemIds"}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "menu"},
		{Key: "localField", Value: "menuItemIds"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "menuItems"},
	}}}
	unwindMenuStage := bson.D{{Key: "$unwind", Value: "$menuItems"}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$menuItems.category"},
		{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "category", Value: "$_id"},
		{Key: "quantity", Value: 1},
		{Key: "revenue", Value: 1},
	}}}

	cursor, err := sc.Store.Payments.Aggregate(ctx, mongo.Pipeline{
		unwindStage, lookupStage, unwindMenuStage, groupStage, projectStage,
	})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error computing order stats")
		return
	}

	stats := []OrderStat{}
	if err = cursor.All(ctx, &stats); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding order stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
