package req

type CreateChatRequest struct {
	StudentFirebaseUID    string `json:"student_firebase_uid" validate:"required"`
	InstructorFirebaseUID string `json:"instructor_firebase_uid" validate:"required"`
}
