package assets

// BuiltinTables returns two in-memory demo tables so the client runs
// without any map files on disk. Two scenes make the scene-scoping
// behavior visible: switching tables cancels emote playback on the one
// left behind.
func BuiltinTables() []Table {
	return []Table{
		{
			ID:     "tavern",
			Name:   "The Prancing Placeholder",
			Width:  1280,
			Height: 720,
			Tokens: []TokenSpawn{
				{ID: "tavern:1", Name: "Aldric", X: 320, Y: 280, W: 48, H: 48},
				{ID: "tavern:2", Name: "Brynn", X: 480, Y: 280, W: 48, H: 48},
				{ID: "tavern:3", Name: "Innkeeper", Owner: "gm", X: 640, Y: 200, W: 56, H: 56},
				{ID: "tavern:4", Name: "Mysterious Stranger", Owner: "gm", X: 820, Y: 340, W: 48, H: 48},
			},
		},
		{
			ID:     "crypt",
			Name:   "Sunken Crypt",
			Width:  1280,
			Height: 720,
			Tokens: []TokenSpawn{
				{ID: "crypt:1", Name: "Aldric", X: 200, Y: 480, W: 48, H: 48},
				{ID: "crypt:2", Name: "Skeleton", Owner: "gm", X: 700, Y: 380, W: 48, H: 48},
			},
		},
	}
}
