package handler

type noteRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"max=20000"`
}

type noteItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"userId"`
}

type listNotesResponse struct {
	Notes []noteItem `json:"notes"`
}
