package main

import (
	"fmt"
	"net/http"

	"github.com/tagtrack/tagtrack-backend-go/internal/config"
	appHTTP "github.com/tagtrack/tagtrack-backend-go/internal/handler/http"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/database"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/jwt"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/oauth"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/password"
	"github.com/tagtrack/tagtrack-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/tagtrack/tagtrack-backend-go/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	managerRepo := postgresql.NewManagerRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hasher := password.NewHasher(cfg.Password.Cost)

	authService := serviceAuth.NewAuthService(managerRepo, employeeRepo, hasher, jwtService)
	authHandler := appHTTP.NewAuthHandler(authService, googleService, cfg.App.FrontendURL)

	router := appHTTP.NewRouter(jwtService, authHandler, cfg.App.FrontendURL)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
