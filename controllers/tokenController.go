package controller

import (
	"encoding/json"
	"net/http"

	"github.com/mdminarba/bistro-finel-project-serve/helper"
)

// CreateToken signs whatever claims the caller sends. The token is the only
// credential the service checks later, so the claims are echoed into it
// verbatim with the standard 30-day expiry.
func CreateToken(w http.ResponseWriter, r *http.Request) {
	var claims map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := helper.GenerateToken(claims)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token})
}
