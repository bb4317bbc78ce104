package models

// Error — стандартный конверт ошибки API: {"success": false, "message": "..."}.
type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
