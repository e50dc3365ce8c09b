// Package wire provides dependency injection for the waymark
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/example/waymark/internal/adapters/sqlite"
	"github.com/example/waymark/internal/app"
	"github.com/example/waymark/internal/config"
	"github.com/example/waymark/internal/db"
	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/registry"
)

var (
	roadmap           *config.Roadmap
	roadmapService    primary.RoadmapService
	auditService      primary.AuditService
	passphraseService primary.PassphraseService
	once              sync.Once
)

// Roadmap returns the loaded roadmap definition.
func Roadmap() *config.Roadmap {
	once.Do(initServices)
	return roadmap
}

// RoadmapService returns the singleton RoadmapService instance, loaded
// and reconciled with the store.
func RoadmapService() primary.RoadmapService {
	once.Do(initServices)
	return roadmapService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// PassphraseService returns the singleton PassphraseService instance.
func PassphraseService() primary.PassphraseService {
	once.Do(initServices)
	return passphraseService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	loaded, err := config.LoadRoadmap()
	if err != nil {
		log.Fatalf("failed to load roadmap definition: %v", err)
	}
	roadmap = loaded

	store := sqlite.NewKVStore(database)
	diag := os.Stderr

	reg := registry.New(store, diag)
	auditService = app.NewAuditService(store, diag)
	passphraseService = app.NewPassphraseService(store, diag)

	svc := app.NewRoadmapService(roadmap.Items(), reg, auditService, passphraseService, store, diag)
	if err := svc.Load(context.Background()); err != nil {
		log.Fatalf("failed to load roadmap state: %v", err)
	}
	roadmapService = svc
}
