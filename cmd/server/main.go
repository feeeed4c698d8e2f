// Command server runs the quest HTTP API.
package main

import (
	"context"
	"log"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
