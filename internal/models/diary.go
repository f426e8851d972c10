package models

// DiaryEntry is the payload of a diary write. The backend owns persistence.
type DiaryEntry struct {
	Content string `json:"content" form:"content"`
}
