package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"boxgame/game"
)

type ServerCommunicator struct {
	summary *game.Summary
	batches chan game.Batch
	mutex   sync.RWMutex
}

// NewServerCommunicator initializes and returns a new ServerCommunicator.
func NewServerCommunicator() *ServerCommunicator {
	sc := &ServerCommunicator{
		summary: nil, // The game master sets it after the first game
		batches: make(chan game.Batch, 100),
	}
	return sc
}

// Start starts the HTTP server.
func (sc *ServerCommunicator) Start() {
	http.HandleFunc("/getSummary", sc.handleGetSummary)
	http.HandleFunc("/updateSummary", sc.handleUpdateSummary)
	http.HandleFunc("/sendBatch", sc.handleSendBatch)
	http.HandleFunc("/receiveBatch", sc.handleReceiveBatch)
	http.ListenAndServe(":8080", nil)
}

func (sc *ServerCommunicator) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()
	if sc.summary == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(sc.summary)
}

func (sc *ServerCommunicator) handleUpdateSummary(w http.ResponseWriter, r *http.Request) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	var summary game.Summary
	json.NewDecoder(r.Body).Decode(&summary)
	sc.summary = &summary
	w.WriteHeader(http.StatusOK)
}

func (sc *ServerCommunicator) handleSendBatch(w http.ResponseWriter, r *http.Request) {
	var batch game.Batch
	json.NewDecoder(r.Body).Decode(&batch)
	sc.batches <- batch
	w.WriteHeader(http.StatusOK)
}

func (sc *ServerCommunicator) handleReceiveBatch(w http.ResponseWriter, r *http.Request) {
	select {
	case batch := <-sc.batches:
		json.NewEncoder(w).Encode(batch)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (sc *ServerCommunicator) GetSummary() *game.Summary {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()
	if sc.summary == nil {
		return nil
	}
	summaryCopy := *sc.summary
	return &summaryCopy
}

func (sc *ServerCommunicator) UpdateSummary(summary game.Summary) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.summary = &summary
}

func (sc *ServerCommunicator) SendBatch(batch game.Batch) {
	sc.batches <- batch
}

func (sc *ServerCommunicator) ReceiveBatch() game.Batch {
	return <-sc.batches
}
