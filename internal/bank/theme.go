package bank

// Theme is one of the fixed interview topic categories. Each theme owns a
// contiguous block of question identifiers in the bank.
type Theme int

const (
	ThemeBasics Theme = iota
	ThemeOOP
	ThemeCodeStyle
	ThemeStructures
	ThemeAlgorithms
	ThemeGit
	ThemeSQL
)

// NumThemes is the size of the fixed theme set.
const NumThemes = 7

// Themes returns all themes in bank order. Question identifier ranges are
// ascending along this order.
func Themes() []Theme {
	return []Theme{
		ThemeBasics,
		ThemeOOP,
		ThemeCodeStyle,
		ThemeStructures,
		ThemeAlgorithms,
		ThemeGit,
		ThemeSQL,
	}
}

func (t Theme) String() string {
	switch t {
	case ThemeBasics:
		return "Language basics"
	case ThemeOOP:
		return "OOP"
	case ThemeCodeStyle:
		return "Code style"
	case ThemeStructures:
		return "Data structures"
	case ThemeAlgorithms:
		return "Algorithms"
	case ThemeGit:
		return "Git"
	case ThemeSQL:
		return "SQL"
	}
	return "Unknown"
}

// Valid reports whether t is a member of the fixed theme set.
func (t Theme) Valid() bool {
	return t >= ThemeBasics && t < NumThemes
}
