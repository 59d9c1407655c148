package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func authedRequest(method, target, body, email string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.EmailKey, email))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestGetUsersReturnsAll(t *testing.T) {
	store, fakes := newFakeStore()
	fakes["users"].docs = []interface{}{
		bson.D{{Key: "email", Value: "a@b.com"}},
		bson.D{{Key: "email", Value: "c@d.com"}},
	}
	uc := &UserController{Store: store}

	rr := httptest.NewRecorder()
	uc.GetUsers(rr, httptest.NewRequest(http.MethodGet, "/user", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var users []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("returned %d users, want 2", len(users))
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store, fakes := newFakeStore()
	fakes["users"].doc = bson.D{{Key: "email", Value: "a@b.com"}}
	uc := &UserController{Store: store}

	rr := httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"name":"A","email":"a@b.com"}`)))

	body := decodeBody(t, rr)
	if body["insertedId"] != nil {
		t.Errorf("insertedId = %v, want null", body["insertedId"])
	}
	if fakes["users"].lastInsert != nil {
		t.Error("no document should be inserted for a duplicate email")
	}
}

func TestCreateUserNewEmail(t *testing.T) {
	store, fakes := newFakeStore()
	id := primitive.NewObjectID()
	fakes["users"].insertedID = id
	uc := &UserController{Store: store}

	rr := httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"name":"A","email":"new@b.com"}`)))

	body := decodeBody(t, rr)
	if body["insertedId"] == nil {
		t.Error("expected a generated insertedId")
	}
	if fakes["users"].lastInsert == nil {
		t.Error("expected exactly one inserted document")
	}
}

func TestCreateUserDuplicateKeyErrorFromIndex(t *testing.T) {
	store, fakes := newFakeStore()
	fakes["users"].err = mongo.WriteException{WriteErrors: mongo.WriteErrors{
		mongo.WriteError{Code: 11000},
	}}
	uc := &UserController{Store: store}

	rr := httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"name":"A","email":"raced@b.com"}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["insertedId"] != nil {
		t.Errorf("insertedId = %v, want null on duplicate-key race", body["insertedId"])
	}
}

func TestCreateUserRejectsInvalidBody(t *testing.T) {
	store, _ := newFakeStore()
	uc := &UserController{Store: store}

	rr := httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"name":"A"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a missing email", rr.Code)
	}
}

func TestCheckAdminStatusSelfMismatch(t *testing.T) {
	store, fakes := newFakeStore()
	uc := &UserController{Store: store}

	req := authedRequest(http.MethodGet, "/user/admin/other@b.com", "", "me@b.com")
	req = mux.SetURLVars(req, map[string]string{"email": "other@b.com"})

	rr := httptest.NewRecorder()
	uc.CheckAdminStatus(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
	if fakes["users"].calls != 0 {
		t.Error("store must not be queried on an identity mismatch")
	}
}

func TestCheckAdminStatus(t *testing.T) {
	cases := []struct {
		name string
		doc  interface{}
		want bool
	}{
		{"admin user", bson.D{{Key: "email", Value: "me@b.com"}, {Key: "role", Value: "admin"}}, true},
		{"regular user", bson.D{{Key: "email", Value: "me@b.com"}, {Key: "role", Value: "user"}}, false},
		{"unknown user", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, fakes := newFakeStore()
			fakes["users"].doc = tc.doc
			uc := &UserController{Store: store}

			req := authedRequest(http.MethodGet, "/user/admin/me@b.com", "", "me@b.com")
			req = mux.SetURLVars(req, map[string]string{"email": "me@b.com"})

			rr := httptest.NewRecorder()
			uc.CheckAdminStatus(rr, req)

			body := decodeBody(t, rr)
			if body["admin"] != tc.want {
				t.Errorf("admin = %v, want %v", body["admin"], tc.want)
			}
		})
	}
}

func TestPromoteToAdmin(t *testing.T) {
	store, fakes := newFakeStore()
	fakes["users"].matched = 1
	fakes["users"].modified = 1
	uc := &UserController{Store: store}

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodPatch, "/user/admin/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	rr := httptest.NewRecorder()
	uc.PromoteToAdmin(rr, req)

	body := decodeBody(t, rr)
	if body["matchedCount"] != float64(1) {
		t.Errorf("matchedCount = %v, want 1", body["matchedCount"])
	}

	update, ok := fakes["users"].lastUpdate.(bson.D)
	if !ok || len(update) == 0 {
		t.Fatalf("update = %#v, want a $set document", fakes["users"].lastUpdate)
	}
	if update[0].Key != "$set" {
		t.Errorf("update operator = %q, want $set", update[0].Key)
	}
}

func TestPromoteToAdminSecondApplication(t *testing.T) {
	// Second application matches the document but modifies nothing.
	store, fakes := newFakeStore()
	fakes["users"].matched = 1
	fakes["users"].modified = 0
	uc := &UserController{Store: store}

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodPatch, "/user/admin/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	rr := httptest.NewRecorder()
	uc.PromoteToAdmin(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on a repeat promotion", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["modifiedCount"] != float64(0) {
		t.Errorf("modifiedCount = %v, want 0", body["modifiedCount"])
	}
}

func TestPromoteToAdminBadID(t *testing.T) {
	store, _ := newFakeStore()
	uc := &UserController{Store: store}

	req := httptest.NewRequest(http.MethodPatch, "/user/admin/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})

	rr := httptest.NewRecorder()
	uc.PromoteToAdmin(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	store, fakes := newFakeStore()
	fakes["users"].deleted = 1
	uc := &UserController{Store: store}

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodDelete, "/user/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	rr := httptest.NewRecorder()
	uc.DeleteUser(rr, req)

	body := decodeBody(t, rr)
	if body["deletedCount"] != float64(1) {
		t.Errorf("deletedCount = %v, want 1", body["deletedCount"])
	}
}
