package roster

// DefaultTypeColor is used for any type name missing from the table.
const DefaultTypeColor = "#AAA"

// typeOrder lists the known types in the order PokeAPI numbers them.
var typeOrder = []string{
	"normal", "fighting", "flying", "poison", "ground", "rock",
	"bug", "ghost", "steel", "fire", "water", "grass",
	"electric", "psychic", "ice", "dragon", "dark", "fairy",
}

var typeColors = map[string]string{
	"normal":   "#A8A878",
	"fire":     "#F08030",
	"water":    "#6890F0",
	"electric": "#F8D030",
	"grass":    "#78C850",
	"ice":      "#98D8D8",
	"fighting": "#C03028",
	"poison":   "#A040A0",
	"ground":   "#E0C068",
	"flying":   "#A890F0",
	"psychic":  "#F85888",
	"bug":      "#A8B820",
	"rock":     "#B8A038",
	"ghost":    "#705898",
	"dragon":   "#7038F8",
	"dark":     "#705848",
	"steel":    "#B8B8D0",
	"fairy":    "#EE99AC",
}

// TypeColor returns the badge color for a type label. Matching is exact:
// "Fire" and "shadow" both get DefaultTypeColor.
func TypeColor(typeName string) string {
	if c, ok := typeColors[typeName]; ok {
		return c
	}
	return DefaultTypeColor
}

// TypeNames returns every type with a dedicated color.
func TypeNames() []string {
	out := make([]string, len(typeOrder))
	copy(out, typeOrder)
	return out
}
