// Command issuetoken prints a bearer token for the marketplace API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MikeRez0/ypmarket/internal/adapter/auth"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
)

func main() {
	var key, user, role string
	flag.StringVar(&key, "k", os.Getenv("TOKEN_KEY"), "Token key (hex)")
	flag.StringVar(&user, "user", "", "User id")
	flag.StringVar(&role, "role", string(domain.RoleAdmin), "admin / fulfillment / vendor / buyer")
	flag.Parse()

	ts, err := auth.New(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := ts.CreateToken(user, domain.Role(role))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if key == "" {
		fmt.Printf("key: %s\n", ts.ExportKey())
	}
	fmt.Println(token)
}
