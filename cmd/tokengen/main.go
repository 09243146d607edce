// Command tokengen issues an access token for calling the API by hand.
// Identity normally arrives from the upstream identity provider; this is
// for local development and smoke tests only.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/config"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "dev-user", "user_id claim for the token")
	role := flag.String("role", "hr", "role claim for the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	token, expiresAt, err := jwtService.GenerateAccessToken(*userID, *role)
	if err != nil {
		fmt.Println("Error generating token:", err)
		return
	}

	fmt.Println(token)
	fmt.Println("expires:", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
