package orders

import (
	"context"
	"log"
	"time"
)

// StartTimelineWorker periodically materializes due status transitions for
// orders nobody is currently looking at, so persisted storage keeps up with
// wall-clock progress. Reads already derive on the fly; this just keeps the
// stored documents from going stale. Run it in its own goroutine.
func StartTimelineWorker(store *Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	for range ticker.C {
		pending, err := store.Repo.ListUndelivered(context.Background())
		if err != nil {
			log.Println("timeline worker list error:", err)
			continue
		}
		for i := range pending {
			store.refresh(context.Background(), &pending[i])
		}
	}
}
