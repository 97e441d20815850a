package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest dependency snapshot: the appointment ledger
// plus each named Redis dependency (cache, session store, reminder queue
// share the same server, but each client pings its own DB).
type HealthStatus struct {
	Ledger    bool            `json:"ledger"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checked_at"`
}

// Healthy reports whether every monitored dependency answered its last ping.
func (h HealthStatus) Healthy() bool {
	if !h.Ledger {
		return false
	}
	for _, up := range h.Redis {
		if !up {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the ledger and each named Redis client once a
// minute and keeps the snapshot for the health endpoint. The first probe
// runs immediately so /health never reports a zero snapshot after startup.
func StartHealthMonitor(mongoClient *mongo.Client, redisClients map[string]*redis.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisHealth := make(map[string]bool, len(redisClients))
		for name, client := range redisClients {
			redisHealth[name] = client.Ping(ctx).Err() == nil
		}

		snapshot := HealthStatus{
			Ledger:    mongoClient.Ping(ctx, nil) == nil,
			Redis:     redisHealth,
			CheckedAt: time.Now(),
		}

		healthMu.Lock()
		currentHealth = snapshot
		healthMu.Unlock()
	}

	probe()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
