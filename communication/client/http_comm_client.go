package client

import (
	"bytes"
	"encoding/json"
	"net/http"

	"boxgame/game"
)

type ClientCommunicator struct {
	serverURL string
}

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL: serverURL,
	}
}

func (cc *ClientCommunicator) GetSummary() *game.Summary {
	resp, err := http.Get(cc.serverURL + "/getSummary")
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var summary game.Summary
	json.NewDecoder(resp.Body).Decode(&summary)
	return &summary
}

func (cc *ClientCommunicator) UpdateSummary(summary game.Summary) {
	data, _ := json.Marshal(summary)
	http.Post(cc.serverURL+"/updateSummary", "application/json", bytes.NewBuffer(data))
}

func (cc *ClientCommunicator) SendBatch(batch game.Batch) {
	data, _ := json.Marshal(batch)
	http.Post(cc.serverURL+"/sendBatch", "application/json", bytes.NewBuffer(data))
}

func (cc *ClientCommunicator) ReceiveBatch() game.Batch {
	resp, err := http.Get(cc.serverURL + "/receiveBatch")
	if err != nil || resp.StatusCode != http.StatusOK {
		return game.Batch{}
	}
	defer resp.Body.Close()
	var batch game.Batch
	json.NewDecoder(resp.Body).Decode(&batch)
	return batch
}
