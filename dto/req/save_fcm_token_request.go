package req

type SaveFcmTokenRequest struct {
	FirebaseUID string `json:"firebase_uid" validate:"required"`
	FcmToken    string `json:"fcm_token" validate:"required"`
}
