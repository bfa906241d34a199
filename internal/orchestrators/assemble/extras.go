package assemble

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// markerPattern collapses the game's list markers and blank lines into
// bullet breaks.
var markerPattern = regexp.MustCompile(`\[\*\]|\n\s*\n`)

// extraDescription looks for a tooltip template named after the block's
// type. The tooltip inherits the main description's params by name and
// resolves whatever remains from the search scope. Returns nil when no
// template fits.
func (h *heroAssembly) extraDescription(categories []string, typeName string, scope game.Record, mainParams map[string]any, maxLevel int) *game.SkillItem {
	if typeName == "" || len(categories) == 0 {
		return nil
	}
	nameLower := strings.ToLower(typeName)

	templateID := ""
	for _, candidate := range candidatesContaining(h.extraCandidates, nameLower) {
		for _, category := range categories {
			if strings.Contains(candidate, category) {
				templateID = candidate
				break
			}
		}
		if templateID != "" {
			break
		}
	}
	if templateID == "" {
		return nil
	}
	if !h.extraTypes[nameLower] {
		slog.Debug("tooltip found for type outside the configured extra lists",
			"type", typeName,
			"template_id", templateID)
	}

	entry, _ := h.table.Get(templateID)
	params := map[string]any{}
	names := engine.PlaceholderNames(entry.EN)
	for _, placeholder := range names {
		if value, ok := mainParams[placeholder]; ok {
			params[placeholder] = value
		}
	}
	for _, placeholder := range names {
		if _, done := params[placeholder]; done {
			continue
		}
		value, _ := h.resolveValue(placeholder, scope, maxLevel, false, nil)
		if value != nil {
			params[placeholder] = value
		}
	}

	return &game.SkillItem{
		Kind:       game.KindTooltip,
		TemplateID: templateID,
		Params:     params,
		Text: game.BilingualText{
			EN: collapseMarkers(engine.RenderTemplate(entry.EN, params)),
			JA: collapseMarkers(engine.RenderTemplate(entry.JA, params)),
		},
	}
}

func collapseMarkers(s string) string {
	return strings.TrimSpace(markerPattern.ReplaceAllString(s, "\n・"))
}
