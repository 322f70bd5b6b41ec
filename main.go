// Command contactbook is an interactive address book assistant.
package main

import (
	"context"
	"log"
	"os"

	"contactbook/bot"
	"contactbook/config"
	"contactbook/db"
	"contactbook/store"
)

func main() {
	cfg := config.NewConfig()

	sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
	if err != nil {
		log.Fatalf("Failed to initialize SQLite store: %v", err)
	}
	defer sqliteStore.Close()

	ctx := context.Background()

	book, err := sqliteStore.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load address book: %v", err)
	}

	view := bot.NewConsoleView(os.Stdout)
	app := bot.NewApp(book, sqliteStore, view)

	if err := app.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("Assistant exited with error: %v", err)
	}
}
