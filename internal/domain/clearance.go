package domain

// ClearanceLevel — производный ранг пользователя от 1 до 10.
// Не хранится в базе, вычисляется заново на каждый запрос.
type ClearanceLevel struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}
