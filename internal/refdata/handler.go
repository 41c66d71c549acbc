package refdata

import (
	"github.com/gin-gonic/gin"

	"mentor-backend/internal/shared/server/respond"
)

// Handler serves the read-only reference data endpoints.
type Handler struct {
	Tables *Tables
}

// NewHandler constructs a Handler.
func NewHandler(tables *Tables) *Handler {
	return &Handler{Tables: tables}
}

// RegisterRoutes attaches reference data routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/domains", h.domains)
	rg.GET("/competencies", h.competencies)
	rg.GET("/aspects", h.aspects)
}

func (h *Handler) domains(c *gin.Context) {
	respond.OK(c, h.Tables.Domains())
}

func (h *Handler) competencies(c *gin.Context) {
	levels := h.Tables.CompetencyLevels()

	flat := make([]gin.H, 0, len(levels))
	for _, cl := range levels {
		flat = append(flat, gin.H{
			"name":               cl.Name,
			"description":        cl.Description,
			"sfiaLevel":          cl.SFIALevel,
			"competencyAreaName": cl.CompetencyAreaName,
		})
	}

	// Group by area, preserving first-appearance order.
	groupIdx := make(map[string]int)
	groups := make([]gin.H, 0)
	for _, cl := range levels {
		entry := gin.H{
			"name":        cl.Name,
			"description": cl.Description,
			"sfiaLevel":   cl.SFIALevel,
		}
		idx, ok := groupIdx[cl.CompetencyAreaName]
		if !ok {
			groupIdx[cl.CompetencyAreaName] = len(groups)
			groups = append(groups, gin.H{
				"areaName":     cl.CompetencyAreaName,
				"competencies": []gin.H{entry},
			})
			continue
		}
		groups[idx]["competencies"] = append(groups[idx]["competencies"].([]gin.H), entry)
	}
	for _, g := range groups {
		g["count"] = len(g["competencies"].([]gin.H))
	}

	respond.OK(c, gin.H{
		"total":         len(levels),
		"competencies":  flat,
		"groupedByArea": groups,
	})
}

func (h *Handler) aspects(c *gin.Context) {
	aspects := h.Tables.Aspects()

	flat := make([]gin.H, 0, len(aspects))
	for _, a := range aspects {
		flat = append(flat, gin.H{
			"name":                  a.Name,
			"represent":             a.Represent,
			"dimension":             a.Dimension,
			"description":           a.Description,
			"weightWithinDimension": a.WeightWithinDimension,
		})
	}

	groupIdx := make(map[string]int)
	groups := make([]gin.H, 0)
	for _, a := range aspects {
		entry := gin.H{
			"name":                  a.Name,
			"represent":             a.Represent,
			"description":           a.Description,
			"weightWithinDimension": a.WeightWithinDimension,
		}
		idx, ok := groupIdx[a.Dimension]
		if !ok {
			groupIdx[a.Dimension] = len(groups)
			groups = append(groups, gin.H{
				"dimension": a.Dimension,
				"aspects":   []gin.H{entry},
			})
			continue
		}
		groups[idx]["aspects"] = append(groups[idx]["aspects"].([]gin.H), entry)
	}
	for _, g := range groups {
		g["count"] = len(g["aspects"].([]gin.H))
	}

	respond.OK(c, gin.H{
		"total":              len(aspects),
		"aspects":            flat,
		"groupedByDimension": groups,
	})
}
