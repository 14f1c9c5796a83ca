package httpCors

import (
	"github.com/rs/cors"
)

func CorsSettings() *cors.Cors {
	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedOrigins: []string{"*"}, // tighten to the frontend origin once it is fixed
		AllowedHeaders: []string{"Content-Type"},
	})
	return c
}
