package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting. It is built once in main
// and passed by reference to the components that need it.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// MongoURI is the MongoDB connection string.
	MongoURI string

	// MongoDatabase is the database holding the blogs collection.
	MongoDatabase string

	// Cloudinary credentials for image uploads.
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// GoogleAPIKey authenticates calls to the Gemini API.
	GoogleAPIKey string

	// GoogleModel is the Gemini model used for summarization.
	GoogleModel string
}

// Load reads configuration from a .env file (if present) and the environment.
// Missing external-service credentials are logged as warnings rather than
// errors: the service still starts and the affected routes fail on first use.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:                os.Getenv("PORT"),
		MongoURI:            os.Getenv("MONGODB_URI"),
		MongoDatabase:       os.Getenv("MONGODB_DB"),
		CloudinaryName:      os.Getenv("CLOUDINARY_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		GoogleAPIKey:        os.Getenv("GOOGLE_API_KEY"),
		GoogleModel:         os.Getenv("GOOGLE_MODEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "aistackjournal"
	}
	if cfg.GoogleModel == "" {
		cfg.GoogleModel = "gemini-2.0-flash-lite"
	}

	if cfg.CloudinaryName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		log.Println("WARNING: Cloudinary env vars missing. Image upload will fail until these are set.")
	}
	if cfg.GoogleAPIKey == "" {
		log.Println("WARNING: No GOOGLE_API_KEY in env. AI summarization will fail until it is set.")
	}

	return cfg
}
