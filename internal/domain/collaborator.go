package domain

// CollaboratorData представляет другого пользователя, с которым были
// взаимодействия через PR или issue. Дедуплицируется по username в рамках
// одного прогона агрегации.
type CollaboratorData struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`

	// InteractionScore растёт по мере обнаружения взаимодействий:
	// авторство ревью весит 2, авторство PR и участие в issue — по 1.
	InteractionScore int `json:"interaction_score"`
}
