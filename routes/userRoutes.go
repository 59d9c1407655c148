package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func UserRoutes(router *mux.Router, policy *middleware.Policy, uc *controller.UserController) {
	router.HandleFunc("/jwt", policy.Require(middleware.Public, controller.CreateToken)).Methods(http.MethodPost)

	router.HandleFunc("/user", policy.Require(middleware.AdminOnly, uc.GetUsers)).Methods(http.MethodGet)
	router.HandleFunc("/user", policy.Require(middleware.Public, uc.CreateUser)).Methods(http.MethodPost)

	router.HandleFunc("/user/admin/{email}", policy.Require(middleware.Authenticated, uc.CheckAdminStatus)).Methods(http.MethodGet)
	router.HandleFunc("/user/admin/{id}", policy.Require(middleware.AdminOnly, uc.PromoteToAdmin)).Methods(http.MethodPatch)
	router.HandleFunc("/user/{id}", policy.Require(middleware.AdminOnly, uc.DeleteUser)).Methods(http.MethodDelete)
}
