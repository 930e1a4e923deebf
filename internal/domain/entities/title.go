package entities

// Title representa uma obra avaliável
type Title struct {
	ID          uint
	Name        string
	Year        int
	Description string
	Category    *Category
	Genres      []Genre
	// Rating é a média das notas das reviews, nil quando não há reviews
	Rating *float64
}

// GenreSlugs retorna os slugs dos gêneros da obra
func (t *Title) GenreSlugs() []string {
	slugs := make([]string, len(t.Genres))
	for i, g := range t.Genres {
		slugs[i] = g.Slug
	}
	return slugs
}

// AverageScore calcula a média aritmética das notas, nil para lista vazia
func AverageScore(scores []int) *float64 {
	if len(scores) == 0 {
		return nil
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	return &avg
}
