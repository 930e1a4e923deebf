package valueobjects

// ScoreRange define os limites inclusivos da nota de uma review
type ScoreRange struct {
	Min int
	Max int
}

// DefaultScoreRange é a escala padrão de 1 a 10
var DefaultScoreRange = ScoreRange{Min: 1, Max: 10}

// Contains verifica se a nota está dentro do intervalo
func (r ScoreRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}
