package roadmap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/skillplan/internal/types"
)

// Resource types attached to a week's focus skill.
const (
	resourceDocumentation = "documentation"
	resourceCourse        = "course"
	resourcePractice      = "practice"
)

// resourcesFor returns the deterministic learning resources for a focus
// skill. Soft skills get reading and practice suggestions instead of
// technical documentation.
func resourcesFor(skill string, category types.Category) []types.Resource {
	query := url.QueryEscape(skill)
	topic := url.PathEscape(strings.ReplaceAll(skill, " ", "-"))

	if category == types.CategorySoftSkill {
		return []types.Resource{
			{
				Title: fmt.Sprintf("Curated reading on %s", skill),
				URL:   "https://www.goodreads.com/search?q=" + query,
				Type:  resourceCourse,
			},
			{
				Title: fmt.Sprintf("Practice %s in your current role", skill),
				URL:   "https://www.mindtools.com/search?searchText=" + query,
				Type:  resourcePractice,
			},
		}
	}

	return []types.Resource{
		{
			Title: fmt.Sprintf("%s documentation and guides", skill),
			URL:   "https://devdocs.io/" + topic,
			Type:  resourceDocumentation,
		},
		{
			Title: fmt.Sprintf("Structured %s courses", skill),
			URL:   "https://www.coursera.org/search?query=" + query,
			Type:  resourceCourse,
		},
		{
			Title: fmt.Sprintf("Open-source %s projects to study", skill),
			URL:   "https://github.com/topics/" + topic,
			Type:  resourcePractice,
		},
	}
}
