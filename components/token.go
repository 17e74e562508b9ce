package components

import "github.com/yohamta/donburi"

// TokenData identifies one movable token on a table.
// Owner is a player name; empty means anyone may control the token.
type TokenData struct {
	ID      string
	Name    string
	Owner   string
	SceneID string
}

var Token = donburi.NewComponentType[TokenData]()
