package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
	controller "github.com/mdminarba/bistro-finel-project-serve/controllers"
	"github.com/mdminarba/bistro-finel-project-serve/gateway"
	middleware "github.com/mdminarba/bistro-finel-project-serve/middlewares"
	"github.com/mdminarba/bistro-finel-project-serve/routes"
)

func main() {
	// Load environment variables
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5002"
	}

	client := database.DBinstance()
	store := database.NewStore(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, client); err != nil {
		log.Printf("could not ensure indexes: %v", err)
	}

	policy := middleware.NewPolicy(store.Users)
	stripeGateway := gateway.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bistro Boss is running"))
	}).Methods(http.MethodGet)

	routes.UserRoutes(router, policy, &controller.UserController{Store: store})
	routes.MenuRoutes(router, policy, &controller.MenuController{Store: store})
	routes.ReviewRoutes(router, policy, &controller.ReviewController{Store: store})
	routes.CartRoutes(router, policy, &controller.CartController{Store: store})
	routes.PaymentRoutes(router, policy,
		&controller.PaymentController{Store: store, Gateway: stripeGateway},
		&controller.StatsController{Store: store})

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Bistro Boss server is running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(router)))
}
