package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalOrders    = 4800 // Total number of unique orders to generate
	eventsPerOrder = 3    // order_created, gk_ready, delivered
)

var (
	hours     = []string{"13", "14", "15", "16"}
	locations = []string{"loc-001", "loc-002", "loc-003", "loc-004"}
	brands    = []int{3, 7}
)

// ### End - fixed configs

type rawEvent struct {
	OrderID   string `json:"order_id"`
	EventType string `json:"event_type"`
	Timestamp string `json:"ts"`
	Location  string `json:"location,omitempty"`
	Sequence  int64  `json:"sequence,omitempty"`
	Body      any    `json:"body,omitempty"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
	isOriginal bool
}

// main runs the e2e scenario: 001_order_lifecycle_rollup
//
// This scenario tests the end-to-end flow of order event ingestion, order state
// reconstruction, and hourly aggregate rollup. It generates 4,800 orders (three
// lifecycle events each) spread across four locations and four hours, sends them
// in batches with configurable duplicates to test idempotency handling, then
// verifies the query surface.
//
// What it tests:
//   - Event batch ingestion via POST /events endpoint
//   - Idempotency key handling for duplicate batch detection
//   - Order state reconstruction via GET /orders/{orderID}
//   - Location time-range metrics via GET /locations/{location}/time-range
//   - Hourly bucket finalization once a trailing event advances the watermark
//
// Expected results:
//   - All batches are successfully ingested (original + duplicates)
//   - Duplicate batches return 409 Conflict status (idempotency working)
//   - Every sampled order reconstructs to status "completed" with prep=10m,
//     delivery=15m, total=25m
//   - After the watermark flush, GET /aggregates/location/hour over the four
//     hours returns 16 finalized buckets (4 locations x 4 hours), each with
//     4800/16 = 300 distinct orders (approximate, within estimator error)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the delivery analytics API server
	dateUTC := "2026-01-15"            // Date used for generating event timestamps (UTC)
	eventsPerBatch := 30               // Number of events per batch. Original batches = totalEvents / eventsPerBatch
	parallel := 2                      // Number of concurrent batch requests to send
	totalDuplicates := 200             // Total number of duplicate batches to send across all batches
	sampledOrders := 25                // Number of orders to verify via GET /orders/{orderID}

	totalEvents := totalOrders * eventsPerOrder
	if totalEvents%eventsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: total events (%d) must be divisible by EVENTS_PER_BATCH (%d)\n", totalEvents, eventsPerBatch)
		os.Exit(1)
	}
	batchCount := totalEvents / eventsPerBatch

	fmt.Println("Starting e2e scenario: 001_order_lifecycle_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("EVENTS_PER_BATCH: %d\n", eventsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Printf("TOTAL_ORDERS: %d\n", totalOrders)
	fmt.Printf("TOTAL_EVENTS: %d\n", totalEvents)
	fmt.Println()

	fmt.Printf("Generating all %d events...\n", totalEvents)
	events := generateAllEvents(dateUTC)
	fmt.Printf("Generated %d events\n", len(events))
	fmt.Println()

	fmt.Printf("Generating all batches (original + duplicates)...\n")
	batchesToSend := make([]batchToSend, 0, batchCount+totalDuplicates)

	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		jsonData, err := generateBatchJSON(batchIndex, eventsPerBatch, events, batchCount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}
		batchesToSend = append(batchesToSend, batchToSend{
			batchIndex: batchIndex,
			jsonData:   jsonData,
			isOriginal: true,
		})
	}

	// Distribute duplicates round-robin across original batches
	duplicatesAdded := 0
	batchIndex := 1
	for duplicatesAdded < totalDuplicates {
		jsonData := batchesToSend[batchIndex-1].jsonData
		batchesToSend = append(batchesToSend, batchToSend{
			batchIndex: batchIndex,
			jsonData:   jsonData,
			isOriginal: false,
		})
		duplicatesAdded++
		batchIndex++
		if batchIndex > batchCount {
			batchIndex = 1
		}
	}

	fmt.Printf("Generated %d batches to send (%d original + %d duplicates)\n",
		len(batchesToSend), batchCount, len(batchesToSend)-batchCount)
	fmt.Println()

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64   // 202 status code
	var conflictedRequest int64 // 409 status code

	for _, batch := range batchesToSend {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(b batchToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendBatchWithJSON(baseURL, b)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("batch %d: %w", b.batchIndex, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", b.batchIndex, err)
				return
			}
			switch statusCode {
			case http.StatusAccepted:
				atomic.AddInt64(&acceptedRequest, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflictedRequest, 1)
			}
		}(batch)
	}
	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d batch sends failed\n", len(errors))
		os.Exit(1)
	}

	fmt.Println("All batches completed")
	fmt.Println("=== Ingestion statistics ===")
	fmt.Printf("Accepted request: %d\n", atomic.LoadInt64(&acceptedRequest))
	fmt.Printf("Conflicted request: %d\n", atomic.LoadInt64(&conflictedRequest))
	fmt.Println()

	// Advance the watermark past every bucket so the hourly aggregates finalize.
	// The flush timestamp sits beyond max-seen + lateness tolerance for all four hours.
	flush := []rawEvent{{
		OrderID:   "ord-flush",
		EventType: "driver_ping",
		Timestamp: dateUTC + "T23:59:00Z",
		Location:  locations[0],
	}}
	flushJSON, _ := json.Marshal(flush)
	if statusCode, err := sendBatchWithJSON(baseURL, batchToSend{batchIndex: batchCount + 1, jsonData: flushJSON, isOriginal: true}); err != nil || statusCode != http.StatusAccepted {
		fmt.Fprintf(os.Stderr, "ERROR: watermark flush event failed (status %d): %v\n", statusCode, err)
		os.Exit(1)
	}
	fmt.Println("Watermark flush event accepted, waiting for consumer to drain...")
	time.Sleep(2 * time.Second)
	fmt.Println()

	fmt.Printf("Verifying %d sampled orders...\n", sampledOrders)
	for i := 0; i < sampledOrders; i++ {
		orderID := fmt.Sprintf("ord-%06d", (i*191)%totalOrders)
		if err := verifyOrder(baseURL, orderID); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: order %s: %v\n", orderID, err)
			os.Exit(1)
		}
	}
	fmt.Println("All sampled orders reconstruct to completed")
	fmt.Println()

	if err := verifyAggregates(baseURL, dateUTC); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: aggregate verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

// generateAllEvents builds the full lifecycle for every order. Orders are
// spread evenly across locations and hours; each order's events are emitted
// at created+0m, ready+10m, delivered+25m within its hour.
func generateAllEvents(dateUTC string) []rawEvent {
	events := make([]rawEvent, 0, totalOrders*eventsPerOrder)

	for i := 0; i < totalOrders; i++ {
		orderID := fmt.Sprintf("ord-%06d", i)
		location := locations[i%len(locations)]
		hour := hours[(i/len(locations))%len(hours)]
		brand := brands[i%len(brands)]

		createdMinute := i % 30 // keep delivered inside the same hour
		created := fmt.Sprintf("%sT%s:%02d:00Z", dateUTC, hour, createdMinute)
		ready := fmt.Sprintf("%sT%s:%02d:00Z", dateUTC, hour, createdMinute+10)
		delivered := fmt.Sprintf("%sT%s:%02d:00Z", dateUTC, hour, createdMinute+25)

		events = append(events,
			rawEvent{
				OrderID:   orderID,
				EventType: "order_created",
				Timestamp: created,
				Location:  location,
				Sequence:  int64(i*10 + 1),
				Body: map[string]any{
					"brand_id": brand,
					"items": []map[string]any{
						{"id": 11, "brand_id": brand, "name": "Burger", "price": 9.5, "qty": 2},
						{"id": 12, "brand_id": brand, "name": "Fries", "price": 3.0, "qty": 1},
					},
				},
			},
			rawEvent{
				OrderID:   orderID,
				EventType: "gk_ready",
				Timestamp: ready,
				Location:  location,
				Sequence:  int64(i*10 + 2),
			},
			rawEvent{
				OrderID:   orderID,
				EventType: "delivered",
				Timestamp: delivered,
				Location:  location,
				Sequence:  int64(i*10 + 3),
			},
		)
	}

	return events
}

func generateBatchJSON(batchIndex, batchSize int, events []rawEvent, batchCount int) ([]byte, error) {
	startIndex := (batchIndex - 1) * batchSize
	stride := batchCount + 1
	total := len(events)

	// Stride pattern mixes events across batches so arrival order differs
	// from event-time order, exercising out-of-order ingestion.
	batch := make([]rawEvent, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		batch = append(batch, events[(startIndex+i*stride)%total])
	}

	return json.Marshal(batch)
}

func sendBatchWithJSON(baseURL string, batch batchToSend) (int, error) {
	// Same key for all duplicates of this batch
	idempotencyKey := fmt.Sprintf("batch-%06d", batch.batchIndex)

	req, err := http.NewRequest("POST", baseURL+"/events", bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", idempotencyKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func verifyOrder(baseURL, orderID string) error {
	resp, err := http.Get(baseURL + "/orders/" + url.PathEscape(orderID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var state struct {
		Status      string  `json:"status"`
		CompletedAt *string `json:"completedAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return err
	}
	if state.Status != "completed" {
		return fmt.Errorf("status %q, want completed", state.Status)
	}
	if state.CompletedAt == nil {
		return fmt.Errorf("completedAt missing for completed order")
	}
	return nil
}

func verifyAggregates(baseURL, dateUTC string) error {
	target := fmt.Sprintf("%s/aggregates/location/hour?start=%sT13:00:00Z&end=%sT17:00:00Z",
		baseURL, dateUTC, dateUTC)
	resp, err := http.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var body struct {
		Buckets []struct {
			GroupKey    string  `json:"groupKey"`
			Orders      float64 `json:"orders"`
			IsFinalized bool    `json:"isFinalized"`
		} `json:"buckets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}

	wantBuckets := len(locations) * len(hours)
	if len(body.Buckets) != wantBuckets {
		return fmt.Errorf("got %d finalized buckets, want %d", len(body.Buckets), wantBuckets)
	}

	wantOrders := float64(totalOrders) / float64(wantBuckets)
	for _, b := range body.Buckets {
		if !b.IsFinalized {
			return fmt.Errorf("bucket %s not finalized", b.GroupKey)
		}
		// HLL estimate: allow 5% error
		if b.Orders < wantOrders*0.95 || b.Orders > wantOrders*1.05 {
			return fmt.Errorf("bucket %s order estimate %.1f outside 5%% of %.0f", b.GroupKey, b.Orders, wantOrders)
		}
	}

	fmt.Printf("All %d hourly location buckets finalized with ~%.0f distinct orders each\n", wantBuckets, wantOrders)
	return nil
}
