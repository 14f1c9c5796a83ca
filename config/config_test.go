package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGODB_URI", "MONGODB_DB",
		"CLOUDINARY_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
		"GOOGLE_API_KEY", "GOOGLE_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q, want the localhost default", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "aistackjournal" {
		t.Errorf("MongoDatabase = %q, want aistackjournal", cfg.MongoDatabase)
	}
	if cfg.GoogleModel != "gemini-2.0-flash-lite" {
		t.Errorf("GoogleModel = %q, want gemini-2.0-flash-lite", cfg.GoogleModel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DB", "journal")
	t.Setenv("GOOGLE_MODEL", "gemini-pro")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db.internal:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "journal" {
		t.Errorf("MongoDatabase = %q, want journal", cfg.MongoDatabase)
	}
	if cfg.GoogleModel != "gemini-pro" {
		t.Errorf("GoogleModel = %q, want gemini-pro", cfg.GoogleModel)
	}
}
