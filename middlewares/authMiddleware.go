package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
	"github.com/mdminarba/bistro-finel-project-serve/helper"
	"github.com/mdminarba/bistro-finel-project-serve/models"
)

// AccessLevel is the capability a route declares. Routes are registered with
// exactly one level; Authorize is the single place the levels are evaluated.
type AccessLevel int

const (
	Public AccessLevel = iota
	Authenticated
	AdminOnly
)

type contextKey string

const EmailKey contextKey = "email"

// Policy evaluates route access levels. The admin check needs the user
// collection to resolve the stored role for the token's email.
type Policy struct {
	Users database.Collection
}

func NewPolicy(users database.Collection) *Policy {
	return &Policy{Users: users}
}

// Require wraps a handler with the access check for the given level. Token
// failures answer 401 before any store access; role failures answer 403.
func (p *Policy) Require(level AccessLevel, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if level == Public {
			next(w, r)
			return
		}

		email, ok := p.authorize(w, r, level)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, email)
		next(w, r.WithContext(ctx))
	}
}

func (p *Policy) authorize(w http.ResponseWriter, r *http.Request, level AccessLevel) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "unauthorized access"})
		return "", false
	}

	tokenParts := strings.Split(header, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "unauthorized access"})
		return "", false
	}

	claims, msg := helper.ValidateToken(tokenParts[1])
	if msg != "" {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "unauthorized access"})
		return "", false
	}
	email := helper.EmailFromClaims(claims)

	if level == AdminOnly {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := p.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil || !user.IsAdmin() {
			respondJSON(w, http.StatusForbidden, map[string]interface{}{"error": true, "message": "forbidden access"})
			return "", false
		}
	}

	return email, true
}

// EmailFromContext returns the authenticated caller's email, empty on public
// routes.
func EmailFromContext(r *http.Request) string {
	email, _ := r.Context().Value(EmailKey).(string)
	return email
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
