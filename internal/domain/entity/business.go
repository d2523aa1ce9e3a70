package entity

import "time"

// Business is one workspace the signed-in user can operate in. The
// list is vended by the remote directory and cached locally; it is
// never persisted through the record store.
type Business struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxCode   string    `json:"taxCode"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
