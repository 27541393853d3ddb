package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/sosmedia/api-sosmed/internal/auth"
	"github.com/sosmedia/api-sosmed/internal/comment"
	"github.com/sosmedia/api-sosmed/internal/follow"
	"github.com/sosmedia/api-sosmed/internal/like"
	"github.com/sosmedia/api-sosmed/internal/media"
	"github.com/sosmedia/api-sosmed/internal/post"
	"github.com/sosmedia/api-sosmed/internal/profile"
	"github.com/sosmedia/api-sosmed/internal/user"
	"github.com/sosmedia/api-sosmed/internal/utils/db"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	database, err := db.Connect()
	if err != nil {
		log.Fatal("database connection failed: ", err)
	}

	if err := database.AutoMigrate(
		&user.User{},
		&profile.Profile{},
		&post.Post{},
		&comment.Comment{},
		&like.Like{},
		&follow.Follow{},
		&media.Media{},
	); err != nil {
		log.Fatal("auto migration failed: ", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	tokens, err := auth.NewTokenManager([]byte(secret), "api-sosmed")
	if err != nil {
		log.Fatal(err)
	}

	packager := auth.CookiePackager{Secure: os.Getenv("COOKIE_SECURE") != "false"}
	accounts := user.NewAccountSource(database)
	rotation := auth.NewRotationStore(database)
	authService := auth.NewService(accounts, rotation, tokens, packager, logger)

	// Handlers
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(database)
	profileHandler := profile.NewHandler(database)
	postHandler := post.NewHandler(database)
	commentHandler := comment.NewHandler(database)
	likeHandler := like.NewHandler(database)
	followHandler := follow.NewHandler(database)
	mediaHandler := media.NewHandler(database, postHandler.Repository)

	// Router
	r := mux.NewRouter()

	// Public auth routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	// Everything else requires a valid access token
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware(tokens))

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// User routes
	api.HandleFunc("/users", userHandler.Index).Methods("GET")
	api.HandleFunc("/users/me", userHandler.Me).Methods("GET")
	api.HandleFunc("/users/username/check", userHandler.CheckUsername).Methods("GET")
	api.HandleFunc("/users/username", userHandler.UpdateUsername).Methods("PUT")
	api.HandleFunc("/users/{id}", userHandler.Show).Methods("GET")
	api.HandleFunc("/users/{id}/profile", profileHandler.Show).Methods("GET")
	api.HandleFunc("/profile", profileHandler.Update).Methods("PUT")

	// Post routes
	api.HandleFunc("/posts", postHandler.Index).Methods("GET")
	api.HandleFunc("/posts", postHandler.Store).Methods("POST")
	api.HandleFunc("/posts/{id}", postHandler.Show).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.Update).Methods("PUT")
	api.HandleFunc("/posts/{id}", postHandler.Destroy).Methods("DELETE")

	// Comment routes
	api.HandleFunc("/posts/{id}/comments", commentHandler.Index).Methods("GET")
	api.HandleFunc("/posts/{id}/comments", commentHandler.Store).Methods("POST")
	api.HandleFunc("/posts/{id}/comments/{commentId}", commentHandler.Delete).Methods("DELETE")

	// Like routes
	api.HandleFunc("/posts/{id}/like", likeHandler.Like).Methods("POST")
	api.HandleFunc("/posts/{id}/like", likeHandler.Unlike).Methods("DELETE")

	// Media routes
	api.HandleFunc("/posts/{id}/media", mediaHandler.Attach).Methods("POST")
	api.HandleFunc("/posts/{id}/media", mediaHandler.Index).Methods("GET")

	// Follow routes
	api.HandleFunc("/follow/{id}", followHandler.Follow).Methods("POST")
	api.HandleFunc("/follow/{id}", followHandler.Unfollow).Methods("DELETE")
	api.HandleFunc("/users/{id}/followers", followHandler.Followers).Methods("GET")
	api.HandleFunc("/users/{id}/following", followHandler.Following).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server listening", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
