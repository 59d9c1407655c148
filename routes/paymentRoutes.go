package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
)

func PaymentRoutes(router *mux.Router, policy *middleware.Policy, pc *controller.PaymentController, sc *controller.StatsController) {
	router.HandleFunc("/payments/{email}", policy.Require(middleware.Authenticated, pc.GetPaymentsByEmail)).Methods(http.MethodGet)
	router.HandleFunc("/payments", policy.Require(middleware.Authenticated, pc.RecordPayment)).Methods(http.MethodPost)
	router.HandleFunc("/create-payment-intent", policy.Require(middleware.Public, pc.CreatePaymentIntent)).Methods(http.MethodPost)

	router.HandleFunc("/admin-stats", policy.Require(middleware.AdminOnly, sc.AdminStats)).Methods(http.MethodGet)
	router.HandleFunc("/order-stats", policy.Require(middleware.AdminOnly, sc.OrderStats)).Methods(http.MethodGet)
}
