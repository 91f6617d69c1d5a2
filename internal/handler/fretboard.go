package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/theory"
	"github.com/rsoguitar/api/pkg/response"
)

// FretboardHandler answers tap queries against raw geometry. It needs no
// service: the lookup is a single table read.
type FretboardHandler struct{}

func NewFretboardHandler() *FretboardHandler {
	return &FretboardHandler{}
}

// Note handles GET /api/fretboard/note?string=N&fret=N
func (h *FretboardHandler) Note(c *fiber.Ctx) error {
	str := c.QueryInt("string", 0)
	fret := c.QueryInt("fret", -1)

	tuning := theory.StandardTuning()
	note, ok := tuning.NoteAt(str, fret)
	if !ok {
		return response.ValidationError(c, "Position is off the board", fiber.Map{
			"string": str,
			"fret":   fret,
		})
	}

	return response.OK(c, model.NoteQueryResponse{
		String: str,
		Fret:   fret,
		Note:   note,
	})
}
