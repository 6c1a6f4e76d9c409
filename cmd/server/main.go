package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okoskela/bloglist-server/internal/auth"
	"github.com/okoskela/bloglist-server/internal/blogs"
	"github.com/okoskela/bloglist-server/internal/config"
	"github.com/okoskela/bloglist-server/internal/httpx"
	"github.com/okoskela/bloglist-server/internal/middleware"
	"github.com/okoskela/bloglist-server/internal/store"
	"github.com/okoskela/bloglist-server/internal/users"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.Secret == "" {
		log.Fatal("SECRET must be set")
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}
	userStore := store.NewUserStore(db)
	blogStore := store.NewBlogStore(db)

	// ── Token codec ──────────────────────────────────────────
	codec := auth.NewTokenCodec(cfg.Secret, cfg.TokenTTL)

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(userStore, codec)
	userHandler := users.NewHandler(userStore, blogStore)
	blogHandler := blogs.NewHandler(blogStore, userStore)

	requireUser := middleware.UserExtractor(codec, userStore, true)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.TokenExtractor)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/login", authHandler.Login)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", blogHandler.List)
		r.Get("/stats", blogHandler.Stats)
		r.With(requireUser).Post("/", blogHandler.Create)
		r.Put("/{id}", blogHandler.Update)
		r.With(requireUser).Delete("/{id}", blogHandler.Delete)
	})

	r.NotFound(httpx.UnknownEndpoint)

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
