package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"medinote-be/internal/config"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"
	"medinote-be/pkg/database"
	"medinote-be/pkg/events"
	pktNats "medinote-be/pkg/nats"

	"github.com/google/uuid"
)

// The worker listens for completed recordings and flags their sessions for
// transcription. The transcription pipeline itself runs elsewhere and picks
// sessions up by transcript_status.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Unable to connect to NATS: %v", err)
	}
	defer sub.Close()

	subject := fmt.Sprintf("events.%s", events.TypeSessionAudioComplete)
	err = sub.Subscribe(subject, "transcript-worker", func(ctx context.Context, event events.Event) error {
		return markSessionProcessing(ctx, uowFactory, event)
	})
	if err != nil {
		log.Fatalf("Unable to subscribe: %v", err)
	}

	log.Println("✅ Transcript worker is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func markSessionProcessing(ctx context.Context, uowFactory unitofwork.RepositoryFactory, event events.Event) error {
	rawId, _ := event.Payload()["session_id"].(string)
	sessionId, err := uuid.Parse(rawId)
	if err != nil {
		// Malformed payloads are dropped, not retried.
		log.Printf("Skipping event with bad session_id %q", rawId)
		return nil
	}

	uow := uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		log.Printf("Skipping event for unknown session %s", sessionId)
		return nil
	}

	status := "processing"
	session.TranscriptStatus = &status
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	log.Printf("Session %s queued for transcription", sessionId)
	return nil
}
