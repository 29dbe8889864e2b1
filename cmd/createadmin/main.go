package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	ucAccount "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
)

func main() {
	var (
		username = flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
		email    = flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	)
	flag.Parse()

	if strings.TrimSpace(*username) == "" || *password == "" {
		fatal("username and password are required")
	}

	cfg := config.Load()
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		fatal(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uc := ucAccount.NewCreateAdmin(infraRepo.NewAccountGormRepository(db))
	u, err := uc.Execute(ctx, ucAccount.CreateAdminInput{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		fatal(err.Error())
	}

	fmt.Printf("admin %q created (id %d)\n", u.Username, u.ID)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "createadmin:", msg)
	os.Exit(1)
}
