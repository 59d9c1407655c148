package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func MenuRoutes(router *mux.Router, policy *middleware.Policy, mc *controller.MenuController) {
	router.HandleFunc("/menu", policy.Require(middleware.Public, mc.GetMenu)).Methods(http.MethodGet)
	router.HandleFunc("/menu", policy.Require(middleware.AdminOnly, mc.CreateMenuItem)).Methods(http.MethodPost)

	router.HandleFunc("/menu/{id}", policy.Require(middleware.Public, mc.GetMenuItem)).Methods(http.MethodGet)
	router.HandleFunc("/menu/{id}", policy.Require(middleware.AdminOnly, mc.UpdateMenuItem)).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{id}", policy.Require(middleware.AdminOnly, mc.DeleteMenuItem)).Methods(http.MethodDelete)
}
