// Command seed loads the built-in static catalog into the document store
// and optionally provisions an initial admin account. Intended for fresh
// environments and local development.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/azharul-dev/islamichub-api/internal/fallback"
	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/pkg/config"
	"github.com/azharul-dev/islamichub-api/pkg/database"
)

func main() {
	adminEmail := flag.String("admin-email", "", "create an ADMIN account with this email")
	adminPassword := flag.String("admin-password", "", "password for the admin account")
	adminName := flag.String("admin-name", "Administrator", "display name for the admin account")
	drop := flag.Bool("drop", false, "drop seeded collections before inserting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("document store unreachable: %v", err)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	seedCollection(ctx, db, "quran", *drop, asDocs(fallback.Surahs()))
	seedCollection(ctx, db, "hadiths", *drop, asDocs(fallback.Hadiths()))
	seedCollection(ctx, db, "news", *drop, asDocs(fallback.NewsArticles()))
	seedCollection(ctx, db, "products", *drop, asDocs(fallback.Products()))
	seedCollection(ctx, db, "videos", *drop, asDocs(fallback.Videos()))
	seedCollection(ctx, db, "navbar", *drop, asDocs(fallback.NavLinks()))

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("admin-password is required when admin-email is set")
		}
		seedAdmin(ctx, db, *adminName, *adminEmail, *adminPassword)
	}

	log.Println("seed complete")
}

func asDocs[T any](records []T) []interface{} {
	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}
	return docs
}

func seedCollection(ctx context.Context, db *mongo.Database, name string, drop bool, docs []interface{}) {
	coll := db.Collection(name)
	if drop {
		if err := coll.Drop(ctx); err != nil {
			log.Fatalf("drop %s: %v", name, err)
		}
	}
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("count %s: %v", name, err)
	}
	if count > 0 {
		log.Printf("skip %s: %d documents present", name, count)
		return
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("seed %s: %v", name, err)
	}
	log.Printf("seeded %s: %d documents", name, len(docs))
}

func seedAdmin(ctx context.Context, db *mongo.Database, name, email, password string) {
	users := db.Collection("users")
	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatalf("count users: %v", err)
	}
	if count > 0 {
		log.Printf("skip admin account: %s exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	now := time.Now().UTC()
	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := users.InsertOne(ctx, admin); err != nil {
		log.Fatalf("seed admin account: %v", err)
	}
	log.Printf("seeded admin account: %s", email)
}
