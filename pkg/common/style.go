package common

// Rendering hints. The renderer is free to ignore them.
const (
	strokeLeadsTo = "#10b981"
	strokeDefault = "#8b5cf6"
)

var categoryColors = map[Category]string{
	CategoryStudy: "blue",
	CategoryJob:   "green",
	CategoryNote:  "purple",
	CategoryVideo: "red",
}

// CategoryColor returns the color family used for nodes of the category,
// or "neutral" for nodes without a known category.
func CategoryColor(c Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "neutral"
}

// EdgeStroke returns the stroke color hint of an explicit edge with the given relation.
func EdgeStroke(relation string) string {
	if relation == RelationLeadsTo {
		return strokeLeadsTo
	}
	return strokeDefault
}
