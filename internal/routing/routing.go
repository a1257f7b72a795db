package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"pennyledger/pkg/handlers"
	"pennyledger/pkg/hasher"
	"pennyledger/pkg/session"
	"pennyledger/pkg/transaction"
	"pennyledger/pkg/user"
)

func InitRoutes(r *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger) {

	sessionRepo := session.NewMySQLSessionRepo(db)

	userService := user.NewService(user.NewMySQLRepo(db), sessionRepo, hasher.NewBcrypt())
	userHandler := handlers.NewUserHandler(userService, logger)

	txService := transaction.NewService(transaction.NewMongoRepo(mongoDB))
	txHandler := handlers.NewTransactionHandler(txService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	/* auth routers */
	r.HandleFunc("/sign-up", userHandler.SignUp).Methods("POST").Name("sign-up")
	r.HandleFunc("/sign-in", userHandler.SignIn).Methods("POST").Name("sign-in")

	/* transaction routers */
	r.HandleFunc("/transactions", txHandler.CreateTransaction).Methods("POST")
	r.HandleFunc("/transactions", txHandler.GetTransactions).Methods("GET")
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
