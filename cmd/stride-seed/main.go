package main

import (
	"context"
	"log"
	"time"

	"stridewear/internal/config"
	"stridewear/internal/repos"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := repos.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	log.Println("[seed] starting")
	if err := repos.Seed(ctx, db); err != nil {
		log.Fatal(err)
	}
	log.Println("[seed] done")
}
