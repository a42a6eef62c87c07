package soleus_remote

import "time"

// CapturedButton is one reverse-engineered remote button: a Pronto code that
// repeated often enough in the device's log stream to be considered a real
// button press. The JSON field names follow the capture log format so
// exports stay compatible with previously captured files.
type CapturedButton struct {
	ID         string    `json:"id"`
	CapturedAt time.Time `json:"timestamp"`
	ButtonName string    `json:"button_name"`
	ProntoData string    `json:"pronto_data"`
	Matches    int       `json:"matches_found"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
