package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/notably/notes-api/internal/api/metrics"
	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. The identity used
// for ownership scoping always comes from the verified token, never from
// the request body.
type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List handles GET /notes.
//
// @Summary      List the caller's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.List(c.Request().Context(), username)
	if err != nil {
		return err
	}

	items := make([]noteItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteItem{
			ID:      n.ID,
			Title:   n.Title,
			Content: n.Content,
			UserID:  n.OwnerID,
		})
	}

	metrics.NoteOperationsTotal.WithLabelValues("list").Inc()
	return c.JSON(http.StatusOK, listNotesResponse{Notes: items})
}

// Create handles POST /notes. An optional Idempotency-Key header makes the
// create replay-safe.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note contents"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err = h.noteService.Create(c.Request().Context(), ports.CreateNoteInput{
		Username:       username,
		Title:          req.Title,
		Content:        req.Content,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "note created successfully"})
}

// Update handles PUT /notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Note id"
// @Param        body  body      noteRequest  true  "New note contents"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.noteService.Update(c.Request().Context(), username, noteID, req.Title, req.Content); err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "note updated successfully"})
}

// Delete handles DELETE /notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Note id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), username, noteID); err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "note deleted successfully"})
}

// noteIDParam parses the :id path segment. A non-numeric id cannot match
// any stored note, so it maps to the same not-found answer.
func noteIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrNoteNotFound
	}
	return id, nil
}
