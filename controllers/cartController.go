package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
	"github.com/mdminarba/bistro-finel-project-serve/models"
)

type CartController struct {
	Store *database.Store
}

// GetCarts lists the cart items for the email query parameter. The email must
// match the token identity; carts are readable by their owner only.
func (cc *CartController) GetCarts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email != middleware.EmailFromContext(r) {
		writeMessage(w, http.StatusForbidden, "forbidden access")
		return
	}

	cursor, err := cc.Store.Carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error occurred while listing cart items")
		return
	}

	items := []bson.M{}
	if err = cursor.All(ctx, &items); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding cart data")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (cc *CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	item.ID = primitive.NewObjectID()
	result, err := cc.Store.Carts.InsertOne(ctx, item)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "cart item was not created")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insertedId": result.InsertedID})
}

func (cc *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	result, err := cc.Store.Carts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "cart item deletion failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deletedCount": result.DeletedCount})
}
