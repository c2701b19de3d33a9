// Command adduser creates an admin account that can log in to the catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"shopadmin/internal/config"
	mydb "shopadmin/internal/db"
	"shopadmin/internal/store"
)

func main() {
	username := flag.String("username", "", "login name")
	password := flag.String("password", "", "plain password, stored as a bcrypt hash")
	flag.Parse()

	if err := run(*username, *password); err != nil {
		fmt.Fprintln(os.Stderr, "adduser:", err)
		os.Exit(1)
	}
}

func run(username, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := mydb.Open(cfg.DSN)
	if err != nil {
		return err
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	u, err := store.NewUsers(db).Create(context.Background(), username, password)
	if err != nil {
		return err
	}
	fmt.Printf("created user %q (id %d)\n", u.Username, u.ID)
	return nil
}
