package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/harmonia-live/api-ensemble/internal/account"
	"github.com/harmonia-live/api-ensemble/internal/advance"
	"github.com/harmonia-live/api-ensemble/internal/auth"
	"github.com/harmonia-live/api-ensemble/internal/distribution"
	"github.com/harmonia-live/api-ensemble/internal/engagement"
	"github.com/harmonia-live/api-ensemble/internal/logging"
	"github.com/harmonia-live/api-ensemble/internal/movement"
	"github.com/harmonia-live/api-ensemble/internal/musician"
	"github.com/harmonia-live/api-ensemble/internal/pot"
	"github.com/harmonia-live/api-ensemble/internal/utils/db"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	log := logging.GetLogger()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}

	if err := database.AutoMigrate(
		&account.Account{},
		&musician.Musician{},
		&musician.Attendance{},
		&engagement.Engagement{},
		&movement.ManualMovement{},
		&advance.AdvancePayment{},
		&distribution.PlanItem{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// The one reconciliation config: cutoff date and base balance, injected
	// into every pot computation.
	potCfg, err := pot.ConfigFromEnv()
	if err != nil {
		log.Fatal("pot configuration: ", err)
	}

	engagementHandler := engagement.NewHandler(database)
	movementHandler := movement.NewHandler(database)
	advanceHandler := advance.NewHandler(database)
	musicianHandler := musician.NewHandler(database)
	distributionHandler := distribution.NewHandler(database)
	accountHandler := account.NewHandler(database)

	engine := pot.NewEngine(
		potCfg,
		engagement.NewRepository(database),
		movement.NewRepository(database),
		advance.NewRepository(database),
		distribution.NewRepository(database),
	)
	potHandler := pot.NewHandler(engine)

	r := mux.NewRouter()
	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.Middleware)

	// Engagement routes
	api.HandleFunc("/engagements", engagementHandler.Create).Methods("POST")
	api.HandleFunc("/engagements", engagementHandler.List).Methods("GET")
	api.HandleFunc("/engagements/{id}", engagementHandler.Get).Methods("GET")
	api.HandleFunc("/engagements/{id}", engagementHandler.Update).Methods("PUT")
	api.HandleFunc("/engagements/{id}", engagementHandler.Delete).Methods("DELETE")
	api.HandleFunc("/engagements/{id}/status", engagementHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/engagements/{id}/flags", engagementHandler.UpdateFlags).Methods("PATCH")

	// Manual movement routes
	api.HandleFunc("/movements", movementHandler.Create).Methods("POST")
	api.HandleFunc("/movements", movementHandler.List).Methods("GET")
	api.HandleFunc("/movements/{id}", movementHandler.Get).Methods("GET")
	api.HandleFunc("/movements/{id}", movementHandler.Update).Methods("PUT")
	api.HandleFunc("/movements/{id}", movementHandler.Delete).Methods("DELETE")

	// Advance payment routes
	api.HandleFunc("/advances", advanceHandler.Create).Methods("POST")
	api.HandleFunc("/advances", advanceHandler.List).Methods("GET")
	api.HandleFunc("/advances/{id}", advanceHandler.Get).Methods("GET")
	api.HandleFunc("/advances/{id}", advanceHandler.Update).Methods("PUT")
	api.HandleFunc("/advances/{id}", advanceHandler.Delete).Methods("DELETE")
	api.HandleFunc("/engagements/{id}/advances", advanceHandler.ListByEngagement).Methods("GET")

	// Musician roster and attendance routes
	api.HandleFunc("/musicians", musicianHandler.Create).Methods("POST")
	api.HandleFunc("/musicians", musicianHandler.List).Methods("GET")
	api.HandleFunc("/musicians/{id}", musicianHandler.Get).Methods("GET")
	api.HandleFunc("/musicians/{id}", musicianHandler.Update).Methods("PUT")
	api.HandleFunc("/musicians/{id}", musicianHandler.Delete).Methods("DELETE")
	api.HandleFunc("/engagements/{id}/attendance", musicianHandler.ListAttendance).Methods("GET")
	api.HandleFunc("/engagements/{id}/attendance", musicianHandler.AddAttendance).Methods("POST")
	api.HandleFunc("/attendance/{id}", musicianHandler.PatchAttendance).Methods("PATCH")
	api.HandleFunc("/attendance/{id}", musicianHandler.RemoveAttendance).Methods("DELETE")

	// Distribution plan routes
	api.HandleFunc("/distribution-items", distributionHandler.Create).Methods("POST")
	api.HandleFunc("/distribution-items", distributionHandler.List).Methods("GET")
	api.HandleFunc("/distribution-items/{id}", distributionHandler.Update).Methods("PUT")
	api.HandleFunc("/distribution-items/{id}", distributionHandler.Delete).Methods("DELETE")

	// Pot reconciliation routes (read-only)
	api.HandleFunc("/pot/balances", potHandler.Balances).Methods("GET")
	api.HandleFunc("/pot/ledger", potHandler.Ledger).Methods("GET")
	api.HandleFunc("/pot/report", potHandler.Report).Methods("GET")
	api.HandleFunc("/pot/distribution", potHandler.Distribution).Methods("GET")

	// Account administration
	api.Handle("/accounts", auth.RequireAdmin(http.HandlerFunc(accountHandler.Create))).Methods("POST")
	api.Handle("/accounts", auth.RequireAdmin(http.HandlerFunc(accountHandler.List))).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server listening on :" + port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), handler); err != nil {
		log.Fatal(err)
	}
}
