package main

import (
	"log"

	"github.com/abelaguiar/api-hydro-time/config"
	"github.com/abelaguiar/api-hydro-time/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	log.Printf("listening on :%s (%s)", cfg.Port, cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
