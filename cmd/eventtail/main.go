// Command eventtail prints conversation events from the NATS stream.
//
//	go run ./cmd/eventtail [subject]
//
// The subject defaults to every chat event.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"devonn-assistant-be/internal/config"
	"devonn-assistant-be/pkg/events"
	pktNats "devonn-assistant-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	subject := pktNats.SubjectAll
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		color.Red("Failed to connect to NATS at %s: %v", cfg.App.NatsURL, err)
		os.Exit(1)
	}
	defer sub.Close()

	err = sub.Subscribe(ctx, subject, "", func(ctx context.Context, env events.Envelope) error {
		line, c := describe(env)
		c.Printf("%s %-22s ", env.OccurredAt.Format("15:04:05.000"), env.Type)
		fmt.Println(line)
		return nil
	})
	if err != nil {
		log.Fatalf("Subscribe failed: %v", err)
	}

	color.Cyan("Tailing %s on %s (ctrl-c to stop)", subject, cfg.App.NatsURL)
	<-ctx.Done()
}
