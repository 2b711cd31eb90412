package req

// SendMessageRequest is the payload of the send_message socket event.
// ClientSideID is echoed back untouched so the sender can reconcile its
// optimistic UI entry with the persisted message.
type SendMessageRequest struct {
	ChatID              uint   `json:"chat_id"`
	Text                string `json:"text"`
	SenderFirebaseUID   string `json:"sender_firebase_uid"`
	ReceiverFirebaseUID string `json:"receiver_firebase_uid"`
	AttachmentFileID    *uint  `json:"attachment_file_id,omitempty"`
	ClientSideID        string `json:"client_side_id,omitempty"`
}
