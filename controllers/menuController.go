package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
	"github.com/mdminarba/bistro-finel-project-serve/models"
)

type MenuController struct {
	Store *database.Store
}

func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cursor, err := mc.Store.Menu.Find(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error occurred while listing the menu items")
		return
	}

	allItems := []bson.M{}
	if err = cursor.All(ctx, &allItems); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding menu data")
		return
	}

	writeJSON(w, http.StatusOK, allItems)
}

func (mc *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var item models.MenuItem
	err = mc.Store.Menu.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		writeMessage(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error retrieving menu item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	item.ID = primitive.NewObjectID()
	result, err := mc.Store.Menu.InsertOne(ctx, item)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "menu item was not created")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insertedId": result.InsertedID})
}

// UpdateMenuItem applies a full-field $set of the editable attributes, the
// same shape the admin dashboard submits.
func (mc *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "category", Value: item.Category},
		{Key: "recipe", Value: item.Recipe},
		{Key: "image", Value: item.Image},
		{Key: "price", Value: item.Price},
	}}}

	result, err := mc.Store.Menu.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "menu update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	result, err := mc.Store.Menu.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "menu deletion failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deletedCount": result.DeletedCount})
}
