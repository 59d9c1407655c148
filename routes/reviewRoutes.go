package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func ReviewRoutes(router *mux.Router, policy *middleware.Policy, rc *controller.ReviewController) {
	router.HandleFunc("/reviews", policy.Require(middleware.Public, rc.GetReviews)).Methods(http.MethodGet)
}
