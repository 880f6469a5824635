package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Postgres  *bool     `json:"postgres,omitempty"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every checked dependency answered.
func (h HealthStatus) Healthy() bool {
	if !h.Mongo || (h.Postgres != nil && !*h.Postgres) {
		return false
	}
	for _, ok := range h.Redis {
		if !ok {
			return false
		}
	}
	return true
}

// HealthTargets are the connections the monitor pings. Postgres may be nil.
type HealthTargets struct {
	Redis    []*redis.Client
	Mongo    *mongo.Client
	Postgres *pgxpool.Pool
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func checkHealth(ctx context.Context, targets HealthTargets) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	for _, client := range targets.Redis {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}
	if targets.Mongo != nil {
		status.Mongo = targets.Mongo.Ping(ctx, nil) == nil
	}
	if targets.Postgres != nil {
		ok := targets.Postgres.Ping(ctx) == nil
		status.Postgres = &ok
	}
	return status
}

// StartHealthMonitor checks once right away, then periodically, and keeps the
// latest snapshot in memory until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, targets HealthTargets) {
	store := func() {
		status := checkHealth(ctx, targets)
		mu.Lock()
		currentHealth = status
		mu.Unlock()
	}
	store()

	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				store()
			}
		}
	}()
}
