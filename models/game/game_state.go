package game

import "time"

// Winner is one accepted bingo claim. A given client id appears at most
// once per room per game.
type Winner struct {
	ClientID    string      `json:"clientId"`
	PlayerName  string      `json:"playerName"`
	Card        interface{} `json:"card"`
	CardMatrix  interface{} `json:"cardMatrix"`
	VictoryType string      `json:"victoryType,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	RoomID      int         `json:"roomId"`
}

// Purchase is a single card purchase credited to a room's pool.
type Purchase struct {
	ClientID     string    `json:"clientId"`
	PlayerName   string    `json:"playerName"`
	CardQuantity int       `json:"cardQuantity"`
	TotalPrice   float64   `json:"totalPrice"`
	Timestamp    time.Time `json:"timestamp"`
}

// Pool accumulates purchases for one earning cycle of a room. It survives
// game resets and is only cleared when the room fully empties after a
// finished game.
type Pool struct {
	Total     float64    `json:"total"`
	Purchases []Purchase `json:"purchases"`
}

// PrizeInfo is the result of splitting a pool among the winners.
type PrizeInfo struct {
	TotalPrize     float64 `json:"totalPrize"`
	PrizePerWinner float64 `json:"prizePerWinner"`
	HouseCut       float64 `json:"houseCut"`
	TotalPool      float64 `json:"totalPool"`
}

// RoomStatus is the per-room aggregate broadcast to every client.
type RoomStatus struct {
	RoomID        int  `json:"roomId"`
	IsGameRunning bool `json:"isGameRunning"`
	GameEnded     bool `json:"gameEnded"`
	PlayerCount   int  `json:"playerCount"`
	HasActiveGame bool `json:"hasActiveGame"`
}

// PlayerInfo is the (clientId, playerName) pair used in membership
// broadcasts.
type PlayerInfo struct {
	ClientID   string `json:"clientId"`
	PlayerName string `json:"playerName"`
}

// PurchaseRequest is the inbound purchaseCards payload: buying cards is
// how a player joins a room.
type PurchaseRequest struct {
	RoomID       int
	RoomName     string
	PlayerName   string
	CardQuantity int
	TotalPrice   float64
}

// WinClaim is the inbound bingo/playerWon payload.
type WinClaim struct {
	RoomID      int
	PlayerName  string
	Card        interface{}
	CardMatrix  interface{}
	VictoryType string
}
