package controller

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
	"github.com/mdminarba/bistro-finel-project-serve/gateway"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
	"github.com/mdminarba/bistro-finel-project-serve/models"
)

type PaymentController struct {
	Store   *database.Store
	Gateway gateway.PaymentGateway
}

// paymentRequest is the client payload for recording a payment. Ids arrive as
// hex strings and are converted to ObjectIDs before storage.
type paymentRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	Status        string   `json:"status"`
	MenuItemIDs   []string `json:"menuItemId"`
	CartIDs       []string `json:"cartId"`
}

func (pc *PaymentController) GetPaymentsByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	email := mux.Vars(r)["email"]
	if email != middleware.EmailFromContext(r) {
		writeMessage(w, http.StatusForbidden, "forbidden access")
		return
	}

	cursor, err := pc.Store.Payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error occurred while listing payments")
		return
	}

	payments := []bson.M{}
	if err = cursor.All(ctx, &payments); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding payment data")
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

// CreatePaymentIntent asks the gateway for an intent over the given price,
// converted to minor units. The client secret goes back to the frontend,
// which completes the card flow directly with the gateway.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount := int64(math.Round(body.Price * 100))
	clientSecret, err := pc.Gateway.CreatePaymentIntent(ctx, amount)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "payment intent creation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clientSecret": clientSecret})
}

// RecordPayment stores the payment document and clears the purchased cart
// items in a single transaction, so a failed cart cleanup aborts the insert
// instead of leaving a paid order with a stale cart.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != middleware.EmailFromContext(r) {
		writeMessage(w, http.StatusForbidden, "forbidden access")
		return
	}

	menuItemIDs, err := toObjectIDs(req.MenuItemIDs)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	cartIDs, err := toObjectIDs(req.CartIDs)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid cart id")
		return
	}

	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          time.Now(),
		Status:        req.Status,
		MenuItemIDs:   menuItemIDs,
		CartIDs:       cartIDs,
	}

	var insertResult *mongo.InsertOneResult
	var deleteResult *mongo.DeleteResult

	err = pc.Store.Transact(ctx, func(ctx context.Context) error {
		var txErr error
		insertResult, txErr = pc.Store.Payments.InsertOne(ctx, payment)
		if txErr != nil {
			return txErr
		}
		deleteResult, txErr = pc.Store.Carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
		return txErr
	})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "payment recording failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"paymentResult": map[string]interface{}{"insertedId": insertResult.InsertedID},
		"deletedResult": map[string]interface{}{"deletedCount": deleteResult.DeletedCount},
	})
}

func toObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
