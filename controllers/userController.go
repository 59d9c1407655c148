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
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
	"github.com/mdminarba/bistro-finel-project-serve/models"
)

type UserController struct {
	Store *database.Store
}

// GetUsers returns every user document. Admin-gated at the route level.
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cursor, err := uc.Store.Users.Find(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error occurred while listing users")
		return
	}

	allUsers := []bson.M{}
	if err = cursor.All(ctx, &allUsers); err != nil {
		writeMessage(w, http.StatusInternalServerError, "error decoding user data")
		return
	}

	writeJSON(w, http.StatusOK, allUsers)
}

// CheckAdminStatus answers {admin: bool} for the caller's own email. Any
// mismatch between the path email and the token email is a 403; a missing
// user or a non-admin role both answer admin: false.
func (uc *UserController) CheckAdminStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	email := mux.Vars(r)["email"]
	if email != middleware.EmailFromContext(r) {
		writeMessage(w, http.StatusForbidden, "forbidden access")
		return
	}

	admin := false
	var user models.User
	err := uc.Store.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		admin = user.IsAdmin()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"admin": admin})
}

// PromoteToAdmin sets role "admin" on the user with the given id. Applying it
// twice matches the same document and changes nothing, so it is idempotent.
func (uc *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: "admin"}}}}
	result, err := uc.Store.Users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "user update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := uc.Store.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "user deletion failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deletedCount": result.DeletedCount})
}

// CreateUser inserts a user unless the email is already taken. The friendly
// find-first check keeps the original response shape; the unique index on
// email closes the race, so a duplicate-key insert error gets the same
// insertedId: null answer.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var existing models.User
	err := uc.Store.Users.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		writeMessage(w, http.StatusInternalServerError, "error checking email")
		return
	}

	user.ID = primitive.NewObjectID()
	result, err := uc.Store.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"message":    "user already exists",
				"insertedId": nil,
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "user creation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "user created",
		"insertedId": result.InsertedID,
	})
}
