// Command seed adds the categories named on the command line, skipping existing ones.
//
//	seed "Điện thoại" "Laptop" "Phụ kiện"
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
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: seed <category> [category...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	db, err := mydb.Open(cfg.DSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	n, err := store.NewCategories(db).Ensure(context.Background(), flag.Args()...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	fmt.Printf("added %d categories\n", n)
}
