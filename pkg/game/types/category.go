package types

// Category is the code assigned to every word in a game's solution key.
type Category string

const (
	CategoryRed      Category = "R"
	CategoryBlue     Category = "B"
	CategoryGreen    Category = "G"
	CategoryNeutral  Category = "O"
	CategoryAssassin Category = "X"
)

// TeamCategories are the categories owned by a team. Green only appears in
// three-team games.
var TeamCategories = []Category{CategoryRed, CategoryBlue, CategoryGreen}

func (c Category) String() string {
	switch c {
	case CategoryRed:
		return "red"
	case CategoryBlue:
		return "blue"
	case CategoryGreen:
		return "green"
	case CategoryNeutral:
		return "neutral"
	case CategoryAssassin:
		return "assassin"
	case "":
		return "none"
	default:
		return "unknown(" + string(c) + ")"
	}
}

// IsTeam reports whether the category belongs to a team.
func (c Category) IsTeam() bool {
	return c == CategoryRed || c == CategoryBlue || c == CategoryGreen
}

// IsCounted reports whether words of this category contribute to tile counts.
// Neutral words never do.
func (c Category) IsCounted() bool {
	return c != CategoryNeutral
}
