package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/blisterdriver/ai-chat-v1/internal/config"
	"github.com/blisterdriver/ai-chat-v1/internal/server"
)

func main() {
	cfg := config.Load()
	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	addr := ":" + cfg.Port
	fmt.Printf("chat-v1 server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
