package res

type SyncUserResponse struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}
