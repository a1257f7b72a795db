package main

import (
	"pennyledger/internal/config"
	"pennyledger/internal/logger"
	"pennyledger/internal/mongo"
	"pennyledger/internal/mysql"
	"pennyledger/internal/routing"
	"pennyledger/pkg/middleware"
	"pennyledger/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	r := mux.NewRouter()
	r.Use(middleware.Panic(logger))
	r.Use(middleware.CheckSession(session.NewMySQLSessionRepo(db), logger))

	routing.InitRoutes(r, db, mongoDB, logger)
	routing.StartServer(r, config.Addr())
}
