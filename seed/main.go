// Command seed loads demo hotels and bootstraps the first admin user.
package main

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"lustrio/config"
	"lustrio/database"
	hotelRepo "lustrio/database/repository/hotel"
	userRepo "lustrio/database/repository/user"
	"lustrio/models"
	"lustrio/services/hotel"
	"lustrio/utils"

	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	count := pflag.Int("hotels", 10, "number of demo hotels to insert")
	admin := pflag.String("admin", "", "email to store with the admin role")
	reset := pflag.Bool("reset", false, "delete all hotels before seeding")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("seed: failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("seed: failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("seed: failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Disconnect(client) //nolint:errcheck

	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("seed: failed to create indexes", zap.Error(err))
	}
	store := database.NewMongoStore(db)

	if *reset {
		res, err := db.Collection(database.CollectionHotels).DeleteMany(ctx, bson.M{})
		if err != nil {
			logger.Fatal("seed: failed to clear hotels", zap.Error(err))
		}
		logger.Info("cleared hotels", zap.Int64("deleted", res.DeletedCount))
	}

	hotels := hotel.NewHotelService(hotelRepo.NewStoreHotelRepo(store), nil, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 1; i <= *count; i++ {
		in, img, err := sampleHotel(rng, i)
		if err != nil {
			logger.Fatal("seed: failed to build hotel", zap.Error(err))
		}
		res, err := hotels.CreateHotel(ctx, in, img)
		if err != nil {
			logger.Fatal("seed: failed to insert hotel", zap.String("name", in.Name), zap.Error(err))
		}
		logger.Info("inserted hotel", zap.String("name", in.Name), zap.Any("id", res.InsertedID))
	}

	if *admin != "" {
		email := strings.ToLower(strings.TrimSpace(*admin))
		users := userRepo.NewStoreUserRepo(store)
		if _, err := users.SetRole(ctx, email, models.RoleAdmin); err != nil {
			logger.Fatal("seed: failed to bootstrap admin", zap.String("email", *admin), zap.Error(err))
		}
		logger.Info("admin bootstrapped", zap.String("email", email))
	}
}
