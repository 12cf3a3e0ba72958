package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/primary"
)

type idResponse struct {
	ID int `json:"id"`
}

type rateRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type clearRequest struct {
	Name  string `json:"name"`
	Clear string `json:"clear"`
}

type setEditRequest struct {
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, apperr.Validation("malformed request body: %v", err))
		return false
	}
	return true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, apperr.Validation("invalid garment id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

func (s *Server) listGarments(c *gin.Context) {
	garments, err := s.query.ListGarments(c.Request.Context(), primary.GarmentFilters{
		Kind:  c.Query("kind"),
		Rate:  c.Query("rate"),
		Clear: c.Query("clear"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, garments)
}

func (s *Server) findGarmentByName(c *gin.Context) {
	name := c.Query("name")
	g, err := s.query.FindByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	if g == nil {
		respondError(c, apperr.NotFound("garment %q not found", name))
		return
	}
	c.JSON(http.StatusOK, g)
}

// listGarmentNames returns names, narrowed by ?kind= or ?rate= when given.
func (s *Server) listGarmentNames(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		names []string
		err   error
	)
	switch {
	case c.Query("kind") != "":
		names, err = s.query.ListByKind(ctx, c.Query("kind"))
	case c.Query("rate") != "":
		names, err = s.query.ListByRate(ctx, c.Query("rate"))
	default:
		names, err = s.query.ListAllNames(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

func (s *Server) listColors(c *gin.Context) {
	triples, err := s.query.ListNameColorTriples(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, triples)
}

func (s *Server) nextGarmentID(c *gin.Context) {
	id, err := s.mutation.NextGarmentID(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, idResponse{ID: id})
}

func (s *Server) getGarment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := s.query.GetGarment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if g == nil {
		respondError(c, apperr.NotFound("garment %d not found", id))
		return
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) createGarment(c *gin.Context) {
	var draft primary.GarmentDraft
	if !bindJSON(c, &draft) {
		return
	}
	id, err := s.mutation.InsertGarment(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (s *Server) rateGarment(c *gin.Context) {
	var req rateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.mutation.UpdateRateByName(c.Request.Context(), req.Name, req.Rate); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearGarment(c *gin.Context) {
	var req clearRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.mutation.UpdateClear(c.Request.Context(), req.Name, req.Clear); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) editGarment(c *gin.Context) {
	var edit primary.IdentityEdit
	if !bindJSON(c, &edit) {
		return
	}
	if err := s.mutation.UpdateIdentity(c.Request.Context(), edit); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteGarment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.mutation.DeleteGarment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listSets(c *gin.Context) {
	entries, err := s.query.ListHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) listSetDates(c *gin.Context) {
	dates, err := s.query.ListAllDates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

func (s *Server) nextSetID(c *gin.Context) {
	id, err := s.mutation.NextHistoryID(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, idResponse{ID: id})
}

func (s *Server) getSet(c *gin.Context) {
	date := c.Param("date")
	e, err := s.query.FindByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	if e == nil {
		respondError(c, apperr.NotFound("no set recorded for %s", date))
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) createSet(c *gin.Context) {
	var draft primary.HistoryDraft
	if !bindJSON(c, &draft) {
		return
	}
	id, err := s.mutation.InsertHistoryEntry(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (s *Server) rateSet(c *gin.Context) {
	var req rateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.mutation.UpdateRateByDate(c.Request.Context(), c.Param("date"), req.Rate); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) editSet(c *gin.Context) {
	var req setEditRequest
	if !bindJSON(c, &req) {
		return
	}
	err := s.mutation.UpdateDescriptionAndRateHistory(c.Request.Context(), primary.HistoryEdit{
		Date:        c.Param("date"),
		Description: req.Description,
		Rate:        req.Rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) summary(c *gin.Context) {
	summary, err := s.query.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) recentChanges(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, apperr.Validation("invalid limit %q", raw))
			return
		}
		limit = n
	}
	entries, err := s.query.RecentChanges(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) photoStatus(c *gin.Context) {
	statuses, err := s.photos.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}
