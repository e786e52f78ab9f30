package main

import (
	"log"

	"github.com/nuriddinovv/furniAsia/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunConsumer(); err != nil {
		log.Fatalf("consumer stopped with error: %v", err)
	}
}
