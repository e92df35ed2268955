package kodi

import "context"

type activePlayer struct {
	PlayerID int    `json:"playerid"`
	Type     string `json:"type"`
}

// ActivePlayerID returns the id of the active player, or false when nothing
// is playing.
func (c *Client) ActivePlayerID(ctx context.Context) (int, bool, error) {
	var players []activePlayer
	if err := c.call(ctx, "Player.GetActivePlayers", nil, &players); err != nil {
		return 0, false, err
	}
	if len(players) == 0 {
		return 0, false, nil
	}
	return players[0].PlayerID, true, nil
}

// PlayingFile returns the file backing the given player's current item.
func (c *Client) PlayingFile(ctx context.Context, playerID int) (string, error) {
	params := map[string]any{
		"playerid":   playerID,
		"properties": []string{"file"},
	}
	var result struct {
		Item struct {
			File string `json:"file"`
		} `json:"item"`
	}
	if err := c.call(ctx, "Player.GetItem", params, &result); err != nil {
		return "", err
	}
	return result.Item.File, nil
}

// Open starts playback of the given file.
func (c *Client) Open(ctx context.Context, file string) error {
	params := map[string]any{
		"item": map[string]any{"file": file},
	}
	return c.call(ctx, "Player.Open", params, nil)
}

// Notify shows an on-screen notification.
func (c *Client) Notify(ctx context.Context, title, message string, displayMs int) error {
	params := map[string]any{
		"title":       title,
		"message":     message,
		"displaytime": displayMs,
	}
	return c.call(ctx, "GUI.ShowNotification", params, nil)
}
