package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func CartRoutes(router *mux.Router, policy *middleware.Policy, cc *controller.CartController) {
	router.HandleFunc("/carts", policy.Require(middleware.Authenticated, cc.GetCarts)).Methods(http.MethodGet)
	router.HandleFunc("/carts", policy.Require(middleware.Public, cc.AddCartItem)).Methods(http.MethodPost)
	router.HandleFunc("/carts/{id}", policy.Require(middleware.Public, cc.DeleteCartItem)).Methods(http.MethodDelete)
}
