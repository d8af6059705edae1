package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	web "rosterplan/internal/adapters/http"
	"rosterplan/internal/adapters/storage"
	rosterStore "rosterplan/internal/adapters/storage/roster"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// The roster lives for the planning session: an in-memory database by
	// default, a file when ROSTER_DB is set.
	dbPath := os.Getenv("ROSTER_DB")
	db, err := sql.Open("sqlite", storage.DSN(dbPath))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if dbPath == "" || dbPath == ":memory:" {
		// A pooled connection would otherwise get its own empty memory DB.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store := rosterStore.NewSQLiteStore(db)
	handler := web.NewMux(&web.Stores{
		RosterStore: store,
		CycleStore:  store,
	})

	addr := envOrDefault("ROSTER_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("roster planner %s listening on %s", version, addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// envOrDefault returns the environment value or a fallback.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
