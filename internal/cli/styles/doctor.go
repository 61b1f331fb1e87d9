package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/wui/internal/application/usecase"
)

// DoctorRenderer renders runtime dependency checks.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a new DoctorRenderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render renders the check results and whether the native engine is built in.
func (r *DoctorRenderer) Render(out *usecase.CheckRuntimeDependenciesOutput, nativeBuilt bool) string {
	lines := []string{r.theme.Title.Render("WebKit engine runtime")}
	if out.Prefix != "" {
		lines = append(lines, r.theme.Subtle.Render("prefix "+out.Prefix))
	}
	lines = append(lines, "")

	for _, c := range out.Checks {
		switch {
		case !c.Installed:
			lines = append(lines, fmt.Sprintf("%s %s %s",
				r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(c.DisplayName), r.theme.Subtle.Render(c.Error)))
		case !c.MeetsRequirement:
			lines = append(lines, fmt.Sprintf("%s %s %s %s",
				r.theme.WarningStyle.Render(IconX), r.theme.Normal.Render(c.DisplayName),
				r.theme.WarningStyle.Render(c.Version), r.theme.Subtle.Render("needs >= "+c.RequiredVersion)))
		default:
			lines = append(lines, fmt.Sprintf("%s %s %s",
				r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render(c.DisplayName), r.theme.Highlight.Render(c.Version)))
		}
	}

	lines = append(lines, "")
	if nativeBuilt {
		lines = append(lines, r.theme.SuccessStyle.Render(IconCheck)+" "+r.theme.Normal.Render("native backend compiled in"))
	} else {
		lines = append(lines, r.theme.WarningStyle.Render(IconX)+" "+r.theme.Normal.Render("native backend not compiled in, rebuild with -tags webkit_cgo"))
	}
	return strings.Join(lines, "\n")
}
