package req

type MarkReadRequest struct {
	ChatID          uint   `json:"chat_id" validate:"required"`
	UserFirebaseUID string `json:"user_firebase_uid" validate:"required"`
}
