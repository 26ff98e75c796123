package types

// Task is one atomic chunk of study hours assigned to a week.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hours       int    `json:"hours"`
	Skill       string `json:"skill"`
}

// Resource is a learning resource suggested for a week's focus skill.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// RoadmapWeek is one scheduling unit of the learning plan. Week indices are
// 1-based and contiguous.
type RoadmapWeek struct {
	Week       int        `json:"week"`
	FocusSkill string     `json:"focus_skill"`
	Tasks      []Task     `json:"tasks"`
	Resources  []Resource `json:"resources,omitempty"`
	TotalHours int        `json:"total_hours"`
}
