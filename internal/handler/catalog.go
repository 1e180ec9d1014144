package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"launchsim/internal/simulator"
)

// CatalogHandler serves the static decision catalog.
type CatalogHandler struct{}

func (h *CatalogHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/simulator")
	group.GET("/stages", h.listStages)
	group.GET("/stages/:stage/decisions", h.listStageDecisions)
	group.GET("/project-types", h.listProjectTypes)
}

type stageView struct {
	Stage         simulator.Stage `json:"stage"`
	Title         string          `json:"title"`
	Index         int             `json:"index"`
	DecisionCount int             `json:"decision_count"`
	Terminal      bool            `json:"terminal"`
}

// @Summary List stages in order
// @Tags catalog
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/stages [get]
func (h *CatalogHandler) listStages(c *gin.Context) {
	stages := simulator.Stages()
	out := make([]stageView, 0, len(stages))
	for _, s := range stages {
		out = append(out, stageView{
			Stage:         s,
			Title:         s.Title(),
			Index:         s.Index(),
			DecisionCount: len(simulator.DecisionsForStage(s)),
			Terminal:      s.IsTerminal(),
		})
	}
	Ok(c, out, nil)
}

// @Summary List decisions of a stage
// @Tags catalog
// @Param stage path string true "stage"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/v1/simulator/stages/{stage}/decisions [get]
func (h *CatalogHandler) listStageDecisions(c *gin.Context) {
	stage, ok := simulator.ParseStage(c.Param("stage"))
	if !ok {
		Error(c, http.StatusBadRequest, "unknown stage", nil)
		return
	}
	Ok(c, simulator.DecisionsForStage(stage), nil)
}

type projectTypeView struct {
	Type               simulator.ProjectType `json:"type"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	BaseValuation      decimal.Decimal       `json:"base_valuation"`
	BaseValuationLabel string                `json:"base_valuation_label"`
	EcosystemBonus     int                   `json:"ecosystem_bonus"`
	PreferredOptions   []string              `json:"preferred_options"`
	ComparableProjects []string              `json:"comparable_projects"`
}

// @Summary List project types
// @Tags catalog
// @Param preferred_for query string false "only types that prefer this option id"
// @Success 200 {object} apiResponse
// @Router /api/v1/simulator/project-types [get]
func (h *CatalogHandler) listProjectTypes(c *gin.Context) {
	optionID := strings.TrimSpace(c.Query("preferred_for"))
	types := simulator.ProjectTypes()
	out := make([]projectTypeView, 0, len(types))
	for _, t := range types {
		if optionID != "" && simulator.BonusForOption(t.Type, optionID) == 0 {
			continue
		}
		out = append(out, projectTypeView{
			Type:               t.Type,
			Name:               t.Name,
			Description:        t.Description,
			BaseValuation:      t.BaseValuation,
			BaseValuationLabel: simulator.FormatMarketCap(t.BaseValuation),
			EcosystemBonus:     t.EcosystemBonus,
			PreferredOptions:   t.PreferredOptions,
			ComparableProjects: t.ComparableProjects,
		})
	}
	Ok(c, out, map[string]any{"total": len(out)})
}
