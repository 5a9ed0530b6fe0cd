// Command mint-token issues an operator identity token for use against the
// API. Operators are provisioned out of band; there is no login endpoint.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/service"
)

func main() {
	var userID int64
	var name string
	flag.Int64Var(&userID, "user", 0, "Operator user id (required)")
	flag.StringVar(&name, "name", "", "Operator display name")
	flag.Parse()

	if userID <= 0 {
		log.Fatal("-user must be a positive id")
	}

	cfg := config.Load()
	tokens := service.NewTokenService(cfg)

	token, err := tokens.Generate(userID, name)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
}
